package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scoopforge/bucketsync/config"
)

// loadSettings resolves the settings for a command invocation: an explicit
// --config path wins, then the standard search locations, then defaults.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return config.DefaultSettings(), nil
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	return config.Load(path)
}
