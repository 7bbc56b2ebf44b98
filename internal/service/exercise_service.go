package service

import (
	"ahmadaybb/exercise-tracker/internal/domain"
	"ahmadaybb/exercise-tracker/internal/observability"
	"ahmadaybb/exercise-tracker/internal/repository"
	"context"
	"fmt"
	"strings"
	"time"
)

// RecordExerciseInput carries the client-supplied fields of a new exercise.
// An empty Date means "now".
type RecordExerciseInput struct {
	Description string
	Duration    float64
	Date        string
}

type ExerciseService interface {
	RecordExercise(ctx context.Context, userID string, in RecordExerciseInput) (*domain.Exercise, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	now          func() time.Time
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		now:          time.Now,
	}
}

// RecordExercise attaches a new exercise to an existing user.
func (s *exerciseService) RecordExercise(ctx context.Context, userID string, in RecordExerciseInput) (*domain.Exercise, error) {
	user, err := findUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}

	date := domain.NormalizeDate(s.now())
	if strings.TrimSpace(in.Date) != "" {
		date, err = domain.ParseDate(in.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q: %w", ErrValidationFailed, in.Date, err)
		}
	}

	exercise := &domain.Exercise{
		UserID:      user.ID,
		Username:    user.Username,
		Description: in.Description,
		Duration:    in.Duration,
		Date:        date,
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	exercise.ID = exerciseID

	observability.RecordExerciseRecorded()
	return exercise, nil
}
