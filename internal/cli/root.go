package cli

import (
	"os"

	"github.com/spf13/cobra"

	"spinslider/internal/app"
	"spinslider/internal/config"
	"spinslider/internal/logger"
)

func Execute() {
	cmd := newRootCmd(runApplication)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	frontend   string
	debug      bool
	jsonLogs   bool
	logFile    string
}

func newRootCmd(run func(config.Config) error) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "spinslider",
		Short:        "A spin box and a slider kept in sync",
		Version:      app.AppVersion,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts, os.Getenv)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "optional YAML config file")
	flags.StringVar(&opts.frontend, "frontend", config.FrontendGUI, "front-end to run: gui or tui")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.jsonLogs, "json-logs", false, "emit logs as JSON lines")
	flags.StringVar(&opts.logFile, "log-file", "", "append logs to this file instead of stderr")

	return cmd
}

// resolveConfig layers defaults, the config file, the environment and then
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, opts options, getenv func(string) string) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	fileLevel := cfg.LogLevel
	if err := cfg.ApplyEnv(getenv); err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("frontend") {
		cfg.Frontend = opts.frontend
	}
	if flags.Changed("debug") {
		cfg.LogLevel = debugLevel(opts.debug, fileLevel)
	}
	if flags.Changed("json-logs") {
		cfg.JSONLogs = opts.jsonLogs
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// debugLevel resolves an explicit --debug flag. --debug=false undoes a debug
// level set by the environment and falls back to the file's level, or to the
// default when the file itself asked for debug.
func debugLevel(debug bool, fileLevel string) string {
	if debug {
		return "debug"
	}
	if level, ok := logger.ParseLevel(fileLevel); !ok || level == logger.DebugLevel {
		return config.Default().LogLevel
	}
	return fileLevel
}

func runApplication(cfg config.Config) error {
	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}
	return application.Run()
}
