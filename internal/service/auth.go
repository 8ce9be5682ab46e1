package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/teco-Runi/task-manager-app/internal/models"
	"github.com/teco-Runi/task-manager-app/internal/repository"
)

// Register creates a new user with a hashed password. A registration that
// collides with an existing username or email fails with ConflictError,
// whether caught by the pre-check or by the store's unique index.
func (s *Service) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return &ValidationError{Reason: "all fields required"}
	}

	_, err := s.store.FindUserByEmailOrUsername(ctx, email, username)
	if err == nil {
		return &ConflictError{Reason: "username or email exists"}
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return &StorageError{Err: err}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		// Two concurrent registrations can both pass the pre-check;
		// the unique index decides and the loser maps to the same conflict.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return &ConflictError{Reason: "username or email exists"}
		}
		return &StorageError{Err: err}
	}

	s.log.Infof("User registered: %s", user.Email)
	return nil
}

// Login verifies credentials and returns the user's identity fields.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*models.UserSummary, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Reason: "all fields required"}
	}

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &AuthError{}
		}
		return nil, &StorageError{Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, &AuthError{}
	}

	s.log.Infof("User logged in: %s", user.Email)
	return &models.UserSummary{Username: user.Username, Email: user.Email}, nil
}
