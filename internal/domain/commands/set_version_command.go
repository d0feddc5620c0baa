package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/setversion/internal/domain/entities"
	"github.com/rios0rios0/setversion/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/setversion/internal/infrastructure/repositories"
)

const specExtension = ".spec"

// SetVersion is the interface for the set command.
type SetVersion interface {
	Execute(opts SetVersionOptions) (*SetVersionResult, error)
}

// SetVersionOptions holds runtime options for a set-version run.
type SetVersionOptions struct {
	Dir      string
	Version  string
	Basename string
	Files    []string // restrict targets to these spec files; empty means every *.spec
	OutDir   string   // write patched files here instead of in place
	DryRun   bool
}

// SetVersionResult reports what a run did to each target spec file.
type SetVersionResult struct {
	Version   entities.ConvertedVersion
	Updated   []string // files whose content changed (or would, on a dry run)
	Unchanged []string // files already carrying the version
	Skipped   []string // files without a Version tag
}

// SetVersionCommand detects the package version and writes it into the spec files.
type SetVersionCommand struct {
	files   repositories.FileRepository
	sources *infraRepos.VersionSourceRegistry
}

// NewSetVersionCommand creates a new SetVersionCommand.
func NewSetVersionCommand(
	files repositories.FileRepository,
	sources *infraRepos.VersionSourceRegistry,
) *SetVersionCommand {
	return &SetVersionCommand{files: files, sources: sources}
}

// Execute resolves the version once, then patches every target spec file with it.
// No file is written when the version cannot be resolved.
func (it *SetVersionCommand) Execute(opts SetVersionOptions) (*SetVersionResult, error) {
	candidates, version, err := detectIn(it.files, it.sources, DetectOptions{
		Dir:      opts.Dir,
		Version:  opts.Version,
		Basename: opts.Basename,
	})
	if err != nil {
		return nil, err
	}

	result := &SetVersionResult{Version: version}

	targets := selectTargets(candidates, opts.Files)
	if len(targets) == 0 {
		logger.Warnf("No spec files to update in %s", opts.Dir)
		return result, nil
	}

	for _, target := range targets {
		changed, patchErr := it.patchFile(target, version, opts)
		switch {
		case errors.Is(patchErr, entities.ErrTagNotFound):
			logger.Infof("Skipping %s: no Version tag", target)
			result.Skipped = append(result.Skipped, target)
		case patchErr != nil:
			return result, patchErr
		case changed:
			result.Updated = append(result.Updated, target)
		default:
			result.Unchanged = append(result.Unchanged, target)
		}
	}

	return result, nil
}

// patchFile rewrites one spec file and reports whether its content changed.
func (it *SetVersionCommand) patchFile(
	path string,
	version entities.ConvertedVersion,
	opts SetVersionOptions,
) (bool, error) {
	data, err := it.files.ReadFile(path)
	if err != nil {
		return false, err
	}

	content := string(data)
	patched, err := entities.PatchSpecContent(content, version)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}

	destination := path
	if opts.OutDir != "" {
		destination = filepath.Join(opts.OutDir, filepath.Base(path))
	}

	changed := patched != content
	if !changed && destination == path {
		logger.Debugf("%s already has version %s", path, version.Converted)
		return false, nil
	}

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would write version %s to %s", version.Converted, destination)
		return changed, nil
	}

	if writeErr := it.files.WriteFile(destination, []byte(patched)); writeErr != nil {
		return false, writeErr
	}
	logger.Infof("Wrote version %s to %s", version.Converted, destination)
	return changed, nil
}

// selectTargets returns the spec files among candidates, restricted to the
// requested names (matched by base name) when any are given.
func selectTargets(candidates, requested []string) []string {
	wanted := make(map[string]bool, len(requested))
	for _, name := range requested {
		base := filepath.Base(name)
		if !strings.HasSuffix(base, specExtension) {
			logger.Warnf("Ignoring %s: only %s files can be updated", name, specExtension)
			continue
		}
		wanted[base] = true
	}

	var targets []string
	for _, candidate := range candidates {
		base := filepath.Base(candidate)
		if !strings.HasSuffix(base, specExtension) {
			continue
		}
		if len(requested) > 0 && !wanted[base] {
			continue
		}
		targets = append(targets, candidate)
	}
	return targets
}
