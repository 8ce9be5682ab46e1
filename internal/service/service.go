package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/teco-Runi/task-manager-app/internal/models"
)

// Store is the persistence surface the service depends on.
// *repository.Repository is the production implementation.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	CreateTask(ctx context.Context, task *models.Task) error
	TasksByEmail(ctx context.Context, email string) ([]models.Task, error)
	UpdateTask(ctx context.Context, id primitive.ObjectID, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id primitive.ObjectID) error
}

// Service handles business logic
type Service struct {
	store Store
	log   *logrus.Logger
}

// NewService initializes a new service
func NewService(store Store, log *logrus.Logger) *Service {
	return &Service{store: store, log: log}
}
