// Package memory provides in-process repositories for local development and
// tests. Insertion order stands in for the document store's natural order.
package memory

import (
	"ahmadaybb/exercise-tracker/internal/domain"
	"ahmadaybb/exercise-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds users and exercises and hands out repositories over them.
type Store struct {
	mu        sync.RWMutex
	users     []domain.User
	exercises []domain.Exercise
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{}
}

// Users returns a repository.UserRepository backed by the store.
func (s *Store) Users() repository.UserRepository {
	return userRepository{store: s}
}

// Exercises returns a repository.ExerciseRepository backed by the store.
func (s *Store) Exercises() repository.ExerciseRepository {
	return exerciseRepository{store: s}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}

type userRepository struct {
	store *Store
}

// Create implements repository.UserRepository. Usernames are unique.
func (r userRepository) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if user.Username == "" {
		return primitive.NilObjectID, errors.New("username is required")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Username == user.Username {
			return primitive.NilObjectID, fmt.Errorf("username %q: %w", user.Username, repository.ErrDuplicateKey)
		}
	}
	user.ID = primitive.NewObjectID()
	r.store.users = append(r.store.users, *user)
	return user.ID, nil
}

// GetByID implements repository.UserRepository.
func (r userRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.ID == id })
}

// GetByUsername implements repository.UserRepository.
func (r userRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Username == username })
}

func (r userRepository) find(match func(domain.User) bool) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

// List implements repository.UserRepository.
func (r userRepository) List(context.Context) ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]domain.User{}, r.store.users...), nil
}

type exerciseRepository struct {
	store *Store
}

// Create implements repository.ExerciseRepository.
func (r exerciseRepository) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("exercise user ID is required")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	exercise.ID = primitive.NewObjectID()
	exercise.Date = domain.NormalizeDate(exercise.Date)
	r.store.exercises = append(r.store.exercises, *exercise)
	return exercise.ID, nil
}

// Find implements repository.ExerciseRepository.
func (r exerciseRepository) Find(_ context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []domain.Exercise{}
	for _, ex := range r.store.exercises {
		if ex.UserID != filter.UserID {
			continue
		}
		if filter.From != nil && ex.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && ex.Date.After(*filter.To) {
			continue
		}
		out = append(out, ex)
		if filter.Limit > 0 && int64(len(out)) >= filter.Limit {
			break
		}
	}
	return out, nil
}
