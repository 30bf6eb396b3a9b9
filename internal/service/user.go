// Package service contains the business logic layer: validation, user
// resolution, lenient input parsing, and response composition. Handlers parse
// HTTP and call in here; repositories persist what this layer hands them.
// Services accept primitives and return model types, so nothing in this
// package knows about HTTP.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vxern/fcc-exercise-tracker-service/internal/apperror"
	"github.com/vxern/fcc-exercise-tracker-service/internal/model"
	"github.com/vxern/fcc-exercise-tracker-service/internal/repository"
)

// UserService is the user directory: it creates and lists user identity
// records and resolves ids for the exercise log.
type UserService struct {
	repo   repository.UserRepository
	logger *slog.Logger
}

func NewUserService(repo repository.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and persists a new user, returning the stored record with
// its assigned id. The only validation is presence: a username is required,
// but nothing stops two users from registering the same name (the upstream
// service allowed it, and its public checker depends on it).
func (s *UserService) Create(ctx context.Context, username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperror.ValidationFailed("username", "username is required")
	}

	user := &model.User{Username: username}
	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user created",
		slog.String("id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// List returns all users in storage order. An empty store yields an empty
// slice, not nil, so the handler always serialises a JSON array.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return users, nil
}

// GetByID resolves a user id to its record.
// Returns apperror.ErrNotFound if no user has that id.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "user id is required")
	}

	return s.repo.GetByID(ctx, id)
}
