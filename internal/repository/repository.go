package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/teco-Runi/task-manager-app/internal/models"
)

const queryTimeout = 5 * time.Second

// Repository provides database operations
type Repository struct {
	users *mongo.Collection
	tasks *mongo.Collection
}

// NewRepository initializes a new repository over the given database
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		users: db.Collection("users"),
		tasks: db.Collection("tasks"),
	}
}

// EnsureIndexes creates the unique indexes on users.username and users.email.
// Must run before the server starts accepting requests; the indexes are the
// final arbiter for concurrent registrations that pass the existence pre-check.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

// CreateUser inserts a new user; a unique-index violation surfaces as ErrDuplicateKey
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", normalizeError(err))
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	user := &models.User{}
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", normalizeError(err))
	}
	return user, nil
}

// FindUserByEmailOrUsername retrieves a user matching either field,
// used as the registration conflict pre-check
func (r *Repository) FindUserByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	user := &models.User{}
	filter := bson.M{"$or": []bson.M{{"email": email}, {"username": username}}}
	err := r.users.FindOne(ctx, filter).Decode(user)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", normalizeError(err))
	}
	return user, nil
}

// CreateTask inserts a new task and fills in its assigned id
func (r *Repository) CreateTask(ctx context.Context, task *models.Task) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.tasks.InsertOne(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", normalizeError(err))
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		task.ID = oid
	}
	return nil
}

// TasksByEmail retrieves all tasks owned by the given email, in insertion order
func (r *Repository) TasksByEmail(ctx context.Context, email string) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.tasks.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies the patch and returns the post-update record;
// an unknown id surfaces as ErrNotFound
func (r *Repository) UpdateTask(ctx context.Context, id primitive.ObjectID, patch models.TaskPatch) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	task := &models.Task{}

	// An empty $set is rejected by the server, so an empty patch is a plain read.
	if patch.IsEmpty() {
		err := r.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(task)
		if err != nil {
			return nil, fmt.Errorf("failed to find task: %w", normalizeError(err))
		}
		return task, nil
	}

	set := bson.M{}
	if patch.TaskText != nil {
		set["taskText"] = *patch.TaskText
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.tasks.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(task)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", normalizeError(err))
	}
	return task, nil
}

// DeleteTask removes the task if present; deleting an unknown id is a no-op
func (r *Repository) DeleteTask(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.tasks.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
