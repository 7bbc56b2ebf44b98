package service

import (
	"ahmadaybb/exercise-tracker/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExportLogs(t *testing.T) {
	f := newLogFixture(t, "2024-01-01", "2024-01-02")
	store := &fakeObjectStore{}
	svc := NewExportService(f.logs, store, time.Hour).(*exportService)
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	export, err := svc.ExportLogs(context.Background(), f.alice.ID.Hex(), domain.LogQuery{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(export.Key, "exports/"+f.alice.ID.Hex()+"/"))
	assert.True(t, strings.HasSuffix(export.Key, ".json"))
	assert.Contains(t, export.URL, export.Key)
	assert.Equal(t, now.Add(time.Hour), export.ExpiresAt)

	var uploaded domain.ExerciseLog
	require.NoError(t, json.Unmarshal(store.objects[export.Key], &uploaded))
	assert.Equal(t, "alice", uploaded.Username)
	assert.Equal(t, 2, uploaded.Count)
}

func TestExportLogsUnknownUser(t *testing.T) {
	f := newLogFixture(t)
	store := &fakeObjectStore{}

	_, err := NewExportService(f.logs, store, 0).ExportLogs(context.Background(), primitive.NewObjectID().Hex(), domain.LogQuery{})

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, store.objects)
}

func TestExportLogsUploadFailure(t *testing.T) {
	f := newLogFixture(t, "2024-01-01")
	boom := errors.New("bucket missing")

	_, err := NewExportService(f.logs, &fakeObjectStore{putErr: boom}, 0).ExportLogs(context.Background(), f.alice.ID.Hex(), domain.LogQuery{})
	assert.ErrorIs(t, err, boom)
}

func TestExportLogsWithoutStore(t *testing.T) {
	f := newLogFixture(t)

	_, err := NewExportService(f.logs, nil, 0).ExportLogs(context.Background(), f.alice.ID.Hex(), domain.LogQuery{})
	assert.ErrorIs(t, err, ErrExportUnavailable)
}
