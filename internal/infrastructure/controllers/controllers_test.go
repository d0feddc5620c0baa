//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/setversion/internal/domain/commands"
	"github.com/rios0rios0/setversion/internal/domain/entities"
	"github.com/rios0rios0/setversion/internal/infrastructure/controllers"
	"github.com/rios0rios0/setversion/test/domain/commanddoubles"
)

// newCommand builds a cobra command with the flags the root command defines.
func newCommand(t *testing.T, settings string, args ...string) *cobra.Command {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), ".set_version.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(settings), 0o600))

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().String("version", "", "")
	cmd.Flags().String("basename", "", "")
	cmd.Flags().Bool("dry-run", false, "")
	controllers.NewSetVersionController(nil).AddFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(append([]string{"--config", configPath}, args...)))
	return cmd
}

func TestSetVersionControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass the flags to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSetVersionCommand{}
		controller := controllers.NewSetVersionController(stub)
		cmd := newCommand(t, "",
			"--version", "1.0", "--basename", "foo", "--file", "a.spec", "--file", "b.spec",
			"--outdir", "/out", "--dry-run",
		)

		// when
		err := controller.Execute(cmd, []string{"/src"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, commands.SetVersionOptions{
			Dir:      "/src",
			Version:  "1.0",
			Basename: "foo",
			Files:    []string{"a.spec", "b.spec"},
			OutDir:   "/out",
			DryRun:   true,
		}, stub.LastOpts)
	})

	t.Run("should fall back to the settings file and the current directory", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSetVersionCommand{}
		controller := controllers.NewSetVersionController(stub)
		cmd := newCommand(t, "basename: bar\nfiles:\n  - bar.spec\noutdir: /rpm\n")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, ".", stub.LastOpts.Dir)
		assert.Equal(t, "bar", stub.LastOpts.Basename)
		assert.Equal(t, []string{"bar.spec"}, stub.LastOpts.Files)
		assert.Equal(t, "/rpm", stub.LastOpts.OutDir)
	})

	t.Run("should return the command error", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSetVersionCommand{ExecuteErr: entities.ErrResolutionFailed}
		controller := controllers.NewSetVersionController(stub)
		cmd := newCommand(t, "")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, entities.ErrResolutionFailed)
	})

	t.Run("should fail on an unreadable settings file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSetVersionCommand{}
		controller := controllers.NewSetVersionController(stub)
		cmd := newCommand(t, "files: [unterminated\n")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Equal(t, 0, stub.ExecuteCallCount)
	})

	t.Run("should expose the set subcommand", func(t *testing.T) {
		t.Parallel()

		// when
		bind := controllers.NewSetVersionController(nil).GetBind()

		// then
		assert.Equal(t, "set [dir]", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})
}

func TestDetectControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should print the converted and the original version", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubDetectCommand{
			ExecuteVersion: entities.ConvertedVersion{Converted: "5.0.0.0~b2~dev188", Original: "5.0.0.0b2dev188"},
		}
		controller := controllers.NewDetectController(stub)
		cmd := newCommand(t, "basename: test\n")
		var out bytes.Buffer
		cmd.SetOut(&out)

		// when
		err := controller.Execute(cmd, []string{"/src"})

		// then
		require.NoError(t, err)
		assert.Equal(t, commands.DetectOptions{Dir: "/src", Basename: "test"}, stub.LastOpts)
		assert.Equal(t, "version: 5.0.0.0~b2~dev188\nversion_unconverted: 5.0.0.0b2dev188\n", out.String())
	})

	t.Run("should print nothing when detection fails", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubDetectCommand{ExecuteErr: errors.New("boom")}
		controller := controllers.NewDetectController(stub)
		cmd := newCommand(t, "")
		var out bytes.Buffer
		cmd.SetOut(&out)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Empty(t, out.String())
		assert.Equal(t, "detect [dir]", controller.GetBind().Use)
	})
}
