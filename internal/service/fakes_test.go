package service

import (
	"ahmadaybb/exercise-tracker/internal/domain"
	"ahmadaybb/exercise-tracker/internal/repository"
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	users   []domain.User
	err     error
	creates int
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
	}
	r.creates++
	user.ID = primitive.NewObjectID()
	r.users = append(r.users, *user)
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]domain.User(nil), r.users...), nil
}

type fakeExerciseRepo struct {
	mu         sync.Mutex
	exercises  []domain.Exercise
	err        error
	lastFilter repository.ExerciseFilter
	ignoreCap  bool
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	exercise.ID = primitive.NewObjectID()
	exercise.Date = domain.NormalizeDate(exercise.Date)
	r.exercises = append(r.exercises, *exercise)
	return exercise.ID, nil
}

func (r *fakeExerciseRepo) Find(_ context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = filter
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.Exercise{}
	for _, ex := range r.exercises {
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
		if !r.ignoreCap && filter.Limit > 0 && int64(len(out)) == filter.Limit {
			break
		}
	}
	return out, nil
}

type fakeObjectStore struct {
	objects map[string][]byte
	putErr  error
}

func (s *fakeObjectStore) PutObject(_ context.Context, objectKey, _ string, body []byte) error {
	if s.putErr != nil {
		return s.putErr
	}
	if s.objects == nil {
		s.objects = map[string][]byte{}
	}
	s.objects[objectKey] = body
	return nil
}

func (s *fakeObjectStore) GeneratePresignedDownloadURL(_ context.Context, objectKey string, expires time.Duration) (string, error) {
	return "https://storage.test/" + objectKey + "?expires=" + expires.String(), nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
