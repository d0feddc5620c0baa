package controllers

import (
	"errors"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/setversion/internal/domain/entities"
)

// loadSettings reads the --config file, or the first settings file found in the
// default locations. Running without any settings file is fine.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if errors.Is(err, entities.ErrConfigNotFound) {
			logger.Debug("No config file found, using command line flags only")
			return &entities.Settings{}, nil
		}
		if err != nil {
			return nil, err
		}
		configPath = found
	}

	logger.Infof("Using config file: %s", configPath)
	return entities.NewSettings(configPath)
}

// detectionFlags reads the flags shared by every command, falling back to settings.
func detectionFlags(cmd *cobra.Command, settings *entities.Settings) (string, string) {
	version, _ := cmd.Flags().GetString("version")
	basename, _ := cmd.Flags().GetString("basename")
	if basename == "" {
		basename = settings.Basename
	}
	return version, basename
}

func sourceDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
