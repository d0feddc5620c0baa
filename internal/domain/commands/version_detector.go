package commands

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/setversion/internal/domain/entities"
	"github.com/rios0rios0/setversion/internal/domain/repositories"
)

// VersionDetector tries each version source in priority order and normalizes
// the first raw version found. It keeps no state between Detect calls.
type VersionDetector struct {
	sources []repositories.VersionSourceRepository
	input   entities.DetectionInput
}

// NewVersionDetector creates a detector for the given sources, highest priority first.
func NewVersionDetector(
	sources []repositories.VersionSourceRepository,
	input entities.DetectionInput,
) *VersionDetector {
	return &VersionDetector{sources: sources, input: input}
}

// Detect returns the normalized version, or an error wrapping
// entities.ErrResolutionFailed when no source has one.
func (it *VersionDetector) Detect() (entities.ConvertedVersion, error) {
	for _, source := range it.sources {
		raw, err := source.Resolve(it.input)
		if err != nil {
			if !errors.Is(err, entities.ErrVersionNotFound) {
				logger.Warnf("Version source %q failed: %v", source.Name(), err)
			} else {
				logger.Debugf("Version source %q: %v", source.Name(), err)
			}
			continue
		}
		if raw == "" {
			continue
		}

		version := entities.NormalizeVersion(raw)
		if version.IsConverted() {
			logger.Infof("Detected version %q via %s (converted to %q)", raw, source.Name(), version.Converted)
		} else {
			logger.Infof("Detected version %q via %s", raw, source.Name())
		}
		return version, nil
	}

	return entities.ConvertedVersion{}, fmt.Errorf(
		"%w: tried %d sources over %d files", entities.ErrResolutionFailed, len(it.sources), len(it.input.Files),
	)
}
