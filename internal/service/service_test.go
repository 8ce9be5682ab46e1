package service

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/teco-Runi/task-manager-app/internal/models"
	"github.com/teco-Runi/task-manager-app/internal/repository"
)

// memStore is an in-memory Store implementation for the service tests.
// Error fields, when set, are returned ahead of any lookup to exercise
// the storage-failure paths.
type memStore struct {
	users []models.User
	tasks map[primitive.ObjectID]*models.Task
	order []primitive.ObjectID

	createUserErr error
	findUserErr   error
	taskErr       error
}

func newMemStore() *memStore {
	return &memStore{tasks: make(map[primitive.ObjectID]*models.Task)}
}

func (m *memStore) CreateUser(_ context.Context, user *models.User) error {
	if m.createUserErr != nil {
		return m.createUserErr
	}
	for _, u := range m.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repository.ErrDuplicateKey
		}
	}
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, *user)
	return nil
}

func (m *memStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	if m.findUserErr != nil {
		return nil, m.findUserErr
	}
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) FindUserByEmailOrUsername(_ context.Context, email, username string) (*models.User, error) {
	if m.findUserErr != nil {
		return nil, m.findUserErr
	}
	for i := range m.users {
		if m.users[i].Email == email || m.users[i].Username == username {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) CreateTask(_ context.Context, task *models.Task) error {
	if m.taskErr != nil {
		return m.taskErr
	}
	task.ID = primitive.NewObjectID()
	t := *task
	m.tasks[task.ID] = &t
	m.order = append(m.order, task.ID)
	return nil
}

func (m *memStore) TasksByEmail(_ context.Context, email string) ([]models.Task, error) {
	if m.taskErr != nil {
		return nil, m.taskErr
	}
	tasks := []models.Task{}
	for _, id := range m.order {
		if t, ok := m.tasks[id]; ok && t.Email == email {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}

func (m *memStore) UpdateTask(_ context.Context, id primitive.ObjectID, patch models.TaskPatch) (*models.Task, error) {
	if m.taskErr != nil {
		return nil, m.taskErr
	}
	t, ok := m.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.TaskText != nil {
		t.TaskText = *patch.TaskText
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	out := *t
	return &out, nil
}

func (m *memStore) DeleteTask(_ context.Context, id primitive.ObjectID) error {
	if m.taskErr != nil {
		return m.taskErr
	}
	delete(m.tasks, id)
	return nil
}

// raceStore simulates two registrations racing past the existence pre-check:
// the lookup sees nothing, yet the insert hits the unique index.
type raceStore struct {
	*memStore
}

func (r *raceStore) FindUserByEmailOrUsername(context.Context, string, string) (*models.User, error) {
	return nil, repository.ErrNotFound
}

func newTestService(store Store) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(store, log)
}

func strptr(s string) *string { return &s }
