package logging

import (
	"ahmadaybb/exercise-tracker/internal/config"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "exercise-tracker.log"

// Setup points the standard logger at stdout and, when cfg.Dir is set, at a
// rotating log file as well. The returned closer releases the file.
func Setup(cfg config.LogConfig) (io.Closer, error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if cfg.Dir == "" {
		log.SetOutput(os.Stdout)
		return io.NopCloser(nil), nil
	}

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		dir = cfg.Dir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, file))
	log.Printf("INFO: Logging to %s", file.Filename)
	return file, nil
}
