package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/setversion/internal/domain/commands"
	"github.com/rios0rios0/setversion/internal/domain/entities"
)

// DetectController handles the "detect" subcommand.
type DetectController struct {
	command commands.Detect
}

// NewDetectController creates a new DetectController.
func NewDetectController(command commands.Detect) *DetectController {
	return &DetectController{command: command}
}

// GetBind returns the Cobra command metadata for the detect controller.
func (it *DetectController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "detect [dir]",
		Short: "Print the detected version without changing any file",
		Long: `Resolve the package version the same way "set" does and print it.
The first line is the RPM version, the second the upstream version kept
for %version_unconverted.`,
	}
}

// Execute prints the detected version pair.
func (it *DetectController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	version, basename := detectionFlags(cmd, settings)
	detected, err := it.command.Execute(commands.DetectOptions{
		Dir:      sourceDir(args),
		Version:  version,
		Basename: basename,
	})
	if err != nil {
		logger.Errorf("Detect failed: %v", err)
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "version: %s\n", detected.Converted)
	_, _ = fmt.Fprintf(out, "version_unconverted: %s\n", detected.Original)
	return nil
}
