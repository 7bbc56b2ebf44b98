package service

import (
	"ahmadaybb/exercise-tracker/internal/domain"
	"ahmadaybb/exercise-tracker/internal/storage"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/google/uuid"
)

// LogExport describes an uploaded log snapshot.
type LogExport struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ExportService interface {
	ExportLogs(ctx context.Context, userID string, q domain.LogQuery) (*LogExport, error)
}

// exportService implements the ExportService interface.
type exportService struct {
	logService  LogService
	objectStore storage.ObjectStore
	expiry      time.Duration
	now         func() time.Time
}

// NewExportService creates a new instance of exportService.
func NewExportService(logService LogService, objectStore storage.ObjectStore, expiry time.Duration) ExportService {
	if expiry <= 0 {
		expiry = storage.DefaultPresignedURLExpiry
	}
	return &exportService{
		logService:  logService,
		objectStore: objectStore,
		expiry:      expiry,
		now:         time.Now,
	}
}

// ExportLogs uploads the result of GetLogs as JSON and returns a temporary
// download link for it.
func (s *exportService) ExportLogs(ctx context.Context, userID string, q domain.LogQuery) (*LogExport, error) {
	if s.objectStore == nil {
		return nil, ErrExportUnavailable
	}

	exerciseLog, err := s.logService.GetLogs(ctx, userID, q)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(exerciseLog)
	if err != nil {
		return nil, fmt.Errorf("encode log: %w", err)
	}

	objectKey := path.Join("exports", exerciseLog.ID, uuid.NewString()+".json")
	if err := s.objectStore.PutObject(ctx, objectKey, "application/json", body); err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	url, err := s.objectStore.GeneratePresignedDownloadURL(ctx, objectKey, s.expiry)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}

	log.Printf("INFO: Exported %d log entries for user %s to %s", exerciseLog.Count, exerciseLog.ID, objectKey)
	return &LogExport{
		Key:       objectKey,
		URL:       url,
		ExpiresAt: s.now().UTC().Add(s.expiry),
	}, nil
}
