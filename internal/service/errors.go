package service

import (
	"ahmadaybb/exercise-tracker/internal/domain"
	"ahmadaybb/exercise-tracker/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound      = errors.New("no user exists for that id")
	ErrValidationFailed  = errors.New("validation failed")
	ErrExportUnavailable = errors.New("log export is not configured")
)

// findUser resolves a hex user id. Ids that cannot be an ObjectID can never
// match a stored user, so they are reported as ErrUserNotFound.
func findUser(ctx context.Context, users repository.UserRepository, userID string) (*domain.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user, err := users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
