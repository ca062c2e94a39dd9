package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spinslider/internal/config"
	"spinslider/internal/logger"
)

func TestOpenLoggerTerminalWithoutFileDiscards(t *testing.T) {
	cfg := config.Default()
	cfg.Frontend = config.FrontendTUI

	log, err := NewLifecycle().OpenLogger(cfg)
	require.NoError(t, err)
	assert.IsType(t, logger.NoOpLogger{}, log)
}

func TestOpenLoggerConsole(t *testing.T) {
	log, err := NewLifecycle().OpenLogger(config.Default())
	require.NoError(t, err)
	assert.IsType(t, &logger.ZerologAdapter{}, log)
}

func TestOpenLoggerJSONFile(t *testing.T) {
	cfg := config.Default()
	cfg.JSONLogs = true
	cfg.LogFile = filepath.Join(t.TempDir(), "spinslider.log")

	lc := NewLifecycle()
	log, err := lc.OpenLogger(cfg)
	require.NoError(t, err)
	assert.IsType(t, &logger.StructuredLogger{}, log)

	log.Info("Test", "hello", nil)
	lc.Shutdown()
	lc.Shutdown()

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}

func TestOpenLoggerBadPath(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "missing", "x.log")

	_, err := NewLifecycle().OpenLogger(cfg)
	assert.Error(t, err)
}

func TestNewApplicationRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Frontend = "web"

	_, err := NewApplication(cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewApplicationShutdown(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "app.log")

	a, err := NewApplication(cfg)
	require.NoError(t, err)
	a.Shutdown()
	a.Shutdown()

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "starting application")
	assert.Contains(t, string(b), "shutdown sequence")
}
