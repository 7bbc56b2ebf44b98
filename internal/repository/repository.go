package repository

import (
	"ahmadaybb/exercise-tracker/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
	ErrInvalidID    = RepositoryError("invalid id")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// ExerciseFilter selects a user's exercises. Nil bounds are open and both
// bounds are inclusive. Limit <= 0 returns every match.
type ExerciseFilter struct {
	UserID primitive.ObjectID
	From   *time.Time
	To     *time.Time
	Limit  int64
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	Find(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error)
}
