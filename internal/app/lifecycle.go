package app

import (
	"fmt"
	"io"
	"os"
	"sync"

	"spinslider/internal/config"
	"spinslider/internal/logger"
)

// Lifecycle owns resources that outlive any single component, currently the
// optional log file. It is registered first so it shuts down last.
type Lifecycle struct {
	mu      sync.Mutex
	logFile io.Closer
	stderr  io.Writer
}

func NewLifecycle() *Lifecycle {
	return &Lifecycle{stderr: os.Stderr}
}

// OpenLogger picks the logger implementation for cfg:
//   - log file set: JSON (slog) or zerolog lines appended to the file
//   - terminal front-end without a file: discard, the screen belongs to the UI
//   - otherwise: JSON (slog) or zerolog console output on stderr
func (l *Lifecycle) OpenLogger(cfg config.Config) (logger.Logger, error) {
	level := cfg.Level()

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}

		l.mu.Lock()
		l.logFile = f
		l.mu.Unlock()

		if cfg.JSONLogs {
			return logger.NewJSONLogger(level, f), nil
		}
		return logger.NewZerolog(f, level), nil
	}

	if cfg.IsTUI() {
		return logger.NoOpLogger{}, nil
	}

	if cfg.JSONLogs {
		return logger.NewJSONLogger(level, l.stderr), nil
	}
	return logger.NewConsoleLogger(level), nil
}

func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile != nil {
		_ = l.logFile.Close()
		l.logFile = nil
	}
}
