package main

import (
	"os"

	"github.com/chisom-ui/chisom/internal/config"
	"github.com/chisom-ui/chisom/internal/logger"
)

// AppContext bundles the settings and logger shared by all commands.
type AppContext struct {
	Settings *config.Settings
	Logger   *logger.Logger
}

// newAppContext resolves settings and the logger for a command invocation.
// The --config flag wins over the CHISOM_CONFIG environment variable, and
// --verbose wins over CHISOM_LOG_LEVEL.
func newAppContext(flags *rootFlags) (*AppContext, error) {
	path := flags.configPath
	if path == "" {
		path = os.Getenv("CHISOM_CONFIG")
	}
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, newCommandError("startup", "determining config path", err, "Ensure your HOME directory is set correctly.")
		}
		path = defaultPath
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, newCommandError("startup", "loading configuration", err, "Fix the configuration errors shown above and try again.")
	}

	level := settings.LogLevel
	if env := os.Getenv("CHISOM_LOG_LEVEL"); env != "" {
		level = env
	}
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return nil, newCommandError("startup", "creating logger", err, "Check the log_level value in your config file.")
	}

	return &AppContext{Settings: settings, Logger: log}, nil
}
