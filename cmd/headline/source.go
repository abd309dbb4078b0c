package main

import (
	"strings"

	"github.com/alexisbeaulieu97/headliner/internal/settings"
)

// loadSettings returns the configuration a command operates on: the file at
// configPath when given, otherwise the live session.
func loadSettings(app *appContext, configPath, operation string) (settings.HeadlineSettings, error) {
	if strings.TrimSpace(configPath) == "" {
		return app.Session.Current(), nil
	}

	if err := validateConfigPath(configPath); err != nil {
		return settings.HeadlineSettings{}, newCommandError(operation, "locating headline configuration", err, "Check the --config path and try again.")
	}

	cfg, err := settings.LoadFile(configPath)
	if err != nil {
		return settings.HeadlineSettings{}, newCommandError(operation, "loading headline configuration", err, "Check the file path and fix any syntax errors at the reported line.")
	}
	if err := settings.Validate(cfg); err != nil {
		return settings.HeadlineSettings{}, newCommandError(operation, "validating headline configuration", err, "Run 'headline validate "+configPath+"' for details.")
	}

	app.Log.With("config", configPath).Debug("Loaded headline configuration")
	return cfg, nil
}
