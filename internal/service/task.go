package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/teco-Runi/task-manager-app/internal/models"
	"github.com/teco-Runi/task-manager-app/internal/repository"
)

// ListTasks returns every task owned by the given email, in insertion order.
// An unknown email yields an empty slice, not an error.
func (s *Service) ListTasks(ctx context.Context, email string) ([]models.Task, error) {
	tasks, err := s.store.TasksByEmail(ctx, email)
	if err != nil {
		return nil, &StorageError{Err: err}
	}
	return tasks, nil
}

// AddTask creates a task for the given owner, defaulting status to Pending
func (s *Service) AddTask(ctx context.Context, email, taskText, status string) (*models.Task, error) {
	if email == "" || taskText == "" {
		return nil, &ValidationError{Reason: "email and taskText required"}
	}
	if status == "" {
		status = models.StatusPending
	}

	task := &models.Task{
		Email:    email,
		TaskText: taskText,
		Status:   status,
	}
	if err := s.store.CreateTask(ctx, task); err != nil {
		return nil, &StorageError{Err: err}
	}

	s.log.Infof("Task created for %s", email)
	return task, nil
}

// UpdateTask applies the patch and returns the post-update record.
// An unknown id yields (nil, nil); the HTTP layer turns that into a null body.
func (s *Service) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &ValidationError{Reason: "invalid task id"}
	}

	task, err := s.store.UpdateTask(ctx, oid, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, &StorageError{Err: err}
	}
	return task, nil
}

// DeleteTask removes the task if present; deleting an already-deleted id succeeds
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &ValidationError{Reason: "invalid task id"}
	}

	if err := s.store.DeleteTask(ctx, oid); err != nil {
		return &StorageError{Err: err}
	}

	s.log.Infof("Task deleted: %s", id)
	return nil
}
