package commands

import (
	"fmt"

	"github.com/rios0rios0/setversion/internal/domain/entities"
	"github.com/rios0rios0/setversion/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/setversion/internal/infrastructure/repositories"
)

// Detect is the interface for the detect command.
type Detect interface {
	Execute(opts DetectOptions) (entities.ConvertedVersion, error)
}

// DetectOptions holds runtime options for version detection.
type DetectOptions struct {
	Dir      string
	Version  string
	Basename string
}

// DetectCommand resolves the version of the sources in a directory without touching any file.
type DetectCommand struct {
	files   repositories.FileRepository
	sources *infraRepos.VersionSourceRegistry
}

// NewDetectCommand creates a new DetectCommand.
func NewDetectCommand(
	files repositories.FileRepository,
	sources *infraRepos.VersionSourceRegistry,
) *DetectCommand {
	return &DetectCommand{files: files, sources: sources}
}

// Execute returns the converted/original version pair for opts.Dir.
func (it *DetectCommand) Execute(opts DetectOptions) (entities.ConvertedVersion, error) {
	_, version, err := detectIn(it.files, it.sources, opts)
	return version, err
}

// detectIn lists the candidate files of opts.Dir and runs the detector over them.
func detectIn(
	files repositories.FileRepository,
	sources *infraRepos.VersionSourceRegistry,
	opts DetectOptions,
) ([]string, entities.ConvertedVersion, error) {
	candidates, err := files.List(opts.Dir)
	if err != nil {
		return nil, entities.ConvertedVersion{}, fmt.Errorf("failed to list candidate files: %w", err)
	}

	detector := NewVersionDetector(sources.All(), entities.DetectionInput{
		Files:    candidates,
		Basename: opts.Basename,
		Version:  opts.Version,
	})
	version, err := detector.Detect()
	if err != nil {
		return candidates, entities.ConvertedVersion{}, err
	}
	return candidates, version, nil
}
