package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spinslider/internal/logger"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.IsTUI())
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)

	assert.True(t, cfg.IsTUI())
	assert.Equal(t, logger.DebugLevel, cfg.Level())
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, "spinslider.log", cfg.LogFile)
	assert.Equal(t, 32, cfg.EventBuffer)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join("testdata", "nope.yaml")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "invalid.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvFrontend: "tui",
		EnvDebug:    "true",
		EnvJSONLogs: "1",
		EnvLogFile:  "/tmp/x.log",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsTUI())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, "/tmp/x.log", cfg.LogFile)
}

func TestApplyEnvRejectsBadBool(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{EnvDebug: "sometimes"}))
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Frontend = "web"
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalid))

	cfg = Default()
	cfg.LogLevel = "loud"
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalid))

	cfg = Default()
	cfg.EventBuffer = 0
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalid))

	cfg = Default()
	cfg.Frontend = "TUI"
	assert.NoError(t, cfg.Validate())
}
