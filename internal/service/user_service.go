package service

import (
	"ahmadaybb/exercise-tracker/internal/domain"
	"ahmadaybb/exercise-tracker/internal/observability"
	"ahmadaybb/exercise-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetOrCreateUser(ctx context.Context, username string) (*domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ListUsers returns every user in storage order.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// GetOrCreateUser returns the user with this exact username, creating it when
// absent. The lookup and insert are not atomic: two concurrent calls for the
// same new username can race, and the loser gets the duplicate key error.
func (s *userService) GetOrCreateUser(ctx context.Context, username string) (*domain.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidationFailed)
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	user = &domain.User{Username: username}
	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.ID = userID

	observability.RecordUserCreated()
	log.Printf("INFO: Created user %s (%s)", user.ID.Hex(), user.Username)
	return user, nil
}
