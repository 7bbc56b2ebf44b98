package service

import (
	"ahmadaybb/exercise-tracker/internal/domain"
	"ahmadaybb/exercise-tracker/internal/observability"
	"ahmadaybb/exercise-tracker/internal/repository"
	"context"
	"fmt"
)

type LogService interface {
	GetLogs(ctx context.Context, userID string, q domain.LogQuery) (*domain.ExerciseLog, error)
}

// logService implements the LogService interface.
type logService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
}

// NewLogService creates a new instance of logService.
func NewLogService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) LogService {
	return &logService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
	}
}

// GetLogs returns a user's exercises within the query's date range, capped at
// q.Limit entries when positive. Entry order is whatever the store returns.
func (s *logService) GetLogs(ctx context.Context, userID string, q domain.LogQuery) (*domain.ExerciseLog, error) {
	user, err := findUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}

	exercises, err := s.exerciseRepo.Find(ctx, repository.ExerciseFilter{
		UserID: user.ID,
		From:   q.From,
		To:     q.To,
		Limit:  q.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}

	// The store applies the cap; enforce it here too so Count never exceeds it.
	if q.Limit > 0 && int64(len(exercises)) > q.Limit {
		exercises = exercises[:q.Limit]
	}

	entries := make([]domain.LogEntry, len(exercises))
	for i, ex := range exercises {
		entries[i] = domain.NewLogEntry(ex)
	}

	observability.ObserveLogEntries(len(entries))
	return &domain.ExerciseLog{
		Username: user.Username,
		Count:    len(entries),
		ID:       user.ID.Hex(),
		Log:      entries,
	}, nil
}
