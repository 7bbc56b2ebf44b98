package storage

import (
	"ahmadaybb/exercise-tracker/internal/config"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEndpoint(t *testing.T) {
	assert.Equal(t, "", normalizeEndpoint("", true))
	assert.Equal(t, "https://s3.example.com", normalizeEndpoint("s3.example.com", true))
	assert.Equal(t, "http://minio:9000", normalizeEndpoint("minio:9000", false))
	assert.Equal(t, "http://minio:9000", normalizeEndpoint("http://minio:9000", true))
}

func TestPresignedDownloadURL(t *testing.T) {
	store, err := NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        "localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		BucketName:      "exports",
	})
	require.NoError(t, err)

	url, err := store.GeneratePresignedDownloadURL(context.Background(), "exports/u1/log.json", time.Minute)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/exports/exports/u1/log.json?"), url)
	assert.Contains(t, url, "X-Amz-Expires=60")
}
