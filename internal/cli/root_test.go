package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spinslider/internal/config"
)

func execute(t *testing.T, args ...string) (config.Config, string, error) {
	t.Helper()

	var got config.Config
	stderr, err := executeWith(t, func(cfg config.Config) error {
		got = cfg
		return nil
	}, args...)
	return got, stderr, err
}

func executeWith(t *testing.T, run func(config.Config) error, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(run)

	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetOut(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stderr.String(), err
}

func TestDefaultsRunGUI(t *testing.T) {
	t.Setenv(config.EnvFrontend, "")
	t.Setenv(config.EnvDebug, "")
	t.Setenv(config.EnvJSONLogs, "")
	t.Setenv(config.EnvLogFile, "")

	cfg, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv(config.EnvFrontend, "gui")

	cfg, _, err := execute(t, "--frontend", "tui", "--debug", "--json-logs")
	require.NoError(t, err)
	assert.True(t, cfg.IsTUI())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spinslider.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frontend: tui\nlog_level: warn\n"), 0o600))
	t.Setenv(config.EnvFrontend, "gui")

	cfg, _, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.False(t, cfg.IsTUI())
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestInvalidFrontendIsReported(t *testing.T) {
	_, stderr, err := execute(t, "--frontend", "web")
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, stderr, "unknown frontend")
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestRunErrorIsPrinted(t *testing.T) {
	stderr, err := executeWith(t, func(config.Config) error {
		return errors.New("open log file: permission denied")
	})
	require.Error(t, err)
	assert.Contains(t, stderr, "open log file: permission denied")
}

func TestUnknownFlagIsPrinted(t *testing.T) {
	_, stderr, err := execute(t, "--frontnd", "tui")
	require.Error(t, err)
	assert.Contains(t, stderr, "unknown flag: --frontnd")
}

func TestDebugFlagFalseOverridesEnvironment(t *testing.T) {
	t.Setenv(config.EnvDebug, "true")

	cfg, _, err := execute(t, "--debug=false")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestDebugFlagFalseKeepsFileLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spinslider.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o600))
	t.Setenv(config.EnvDebug, "true")

	cfg, _, err := execute(t, "--config", path, "--debug=false")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestDebugLevel(t *testing.T) {
	assert.Equal(t, "debug", debugLevel(true, "warn"))
	assert.Equal(t, "warn", debugLevel(false, "warn"))
	assert.Equal(t, "info", debugLevel(false, "debug"))
}
