package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"spinslider/internal/logger"
)

const (
	FrontendGUI = "gui"
	FrontendTUI = "tui"

	EnvFrontend = "SPINSLIDER_FRONTEND"
	EnvDebug    = "SPINSLIDER_DEBUG"
	EnvJSONLogs = "SPINSLIDER_JSON_LOGS"
	EnvLogFile  = "SPINSLIDER_LOG_FILE"
)

// ErrInvalid marks configuration that was read successfully but cannot be used.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Frontend    string `yaml:"frontend"`
	LogLevel    string `yaml:"log_level"`
	JSONLogs    bool   `yaml:"json_logs"`
	LogFile     string `yaml:"log_file"`
	EventBuffer int    `yaml:"event_buffer"`
}

func Default() Config {
	return Config{
		Frontend:    FrontendGUI,
		LogLevel:    "info",
		EventBuffer: 1000,
	}
}

// Load overlays the YAML file at path onto the defaults. An empty path
// returns the defaults without touching the filesystem.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from SPINSLIDER_* environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvFrontend); v != "" {
		c.Frontend = v
	}

	if v := getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvDebug, v)
		}
		if debug {
			c.LogLevel = "debug"
		}
	}

	if v := getenv(EnvJSONLogs); v != "" {
		jsonLogs, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvJSONLogs, v)
		}
		c.JSONLogs = jsonLogs
	}

	if v := getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}

	return nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Frontend) {
	case FrontendGUI, FrontendTUI:
	default:
		return fmt.Errorf("%w: unknown frontend %q (want %s or %s)", ErrInvalid, c.Frontend, FrontendGUI, FrontendTUI)
	}

	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
	}

	if c.EventBuffer <= 0 {
		return fmt.Errorf("%w: event_buffer must be positive, got %d", ErrInvalid, c.EventBuffer)
	}

	return nil
}

func (c Config) Level() logger.LogLevel {
	level, _ := logger.ParseLevel(c.LogLevel)
	return level
}

func (c Config) IsTUI() bool {
	return strings.EqualFold(c.Frontend, FrontendTUI)
}
