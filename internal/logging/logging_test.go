package logging

import (
	"ahmadaybb/exercise-tracker/internal/config"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	closer, err := Setup(config.LogConfig{Dir: dir, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Printf("INFO: hello from test")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestSetupStdoutOnly(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	closer, err := Setup(config.LogConfig{})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}
