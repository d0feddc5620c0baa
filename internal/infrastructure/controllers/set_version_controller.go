package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/setversion/internal/domain/commands"
	"github.com/rios0rios0/setversion/internal/domain/entities"
)

// SetVersionController handles the root command and the "set" subcommand.
type SetVersionController struct {
	command commands.SetVersion
}

// NewSetVersionController creates a new SetVersionController.
func NewSetVersionController(command commands.SetVersion) *SetVersionController {
	return &SetVersionController{command: command}
}

// GetBind returns the Cobra command metadata for the set controller.
func (it *SetVersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "set [dir]",
		Short: "Write the detected version into the spec files",
		Long: `Detect the package version and write it into the Version tag of
every .spec file in the directory (default: current directory).

The version comes from --version, a *.obsinfo file, or the layout of a
source archive, in that order. Python style versions are converted to RPM
tilde versions and the upstream string is kept in %version_unconverted.`,
	}
}

// Execute runs the set-version mode.
func (it *SetVersionController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	version, basename := detectionFlags(cmd, settings)
	files, _ := cmd.Flags().GetStringArray("file")
	outDir, _ := cmd.Flags().GetString("outdir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if len(files) == 0 {
		files = settings.Files
	}
	if outDir == "" {
		outDir = settings.OutDir
	}

	result, err := it.command.Execute(commands.SetVersionOptions{
		Dir:      sourceDir(args),
		Version:  version,
		Basename: basename,
		Files:    files,
		OutDir:   outDir,
		DryRun:   dryRun,
	})
	if err != nil {
		logger.Errorf("Set version failed: %v", err)
		return err
	}

	logger.Infof(
		"Version %s: %d updated, %d unchanged, %d skipped",
		result.Version.Converted, len(result.Updated), len(result.Unchanged), len(result.Skipped),
	)
	return nil
}

// AddFlags adds the set-specific flags to the given Cobra command.
func (it *SetVersionController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("file", nil, "Only update this spec file (repeatable)")
	cmd.Flags().String("outdir", "", "Write the updated spec files to this directory instead of in place")
}
