package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URL", "")
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Address)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "mongo", cfg.Database.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "exercise_tracker", cfg.Database.Name)
	assert.Equal(t, 15*time.Minute, cfg.S3.ExportExpiry)
	assert.False(t, cfg.S3.Enabled())
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("PORT", "")
	dir := t.TempDir()
	yaml := `
server:
  address: ":8081"
database:
  name: tracker
  timeout: 3s
s3:
  bucket_name: exports
  export_expiry: 1h
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Server.Address)
	assert.Equal(t, "tracker", cfg.Database.Name)
	assert.Equal(t, 3*time.Second, cfg.Database.Timeout)
	assert.True(t, cfg.S3.Enabled())
	assert.Equal(t, time.Hour, cfg.S3.ExportExpiry)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("DATABASE_NAME", "from_env")
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("PORT", "4000")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "from_env", cfg.Database.Name)
	assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
	assert.Equal(t, ":4000", cfg.Server.Address)
}

func TestLoadConfigServerAddressBeatsPort(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9000")
	t.Setenv("PORT", "4000")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Address)
}
