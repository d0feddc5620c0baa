package repositories

import (
	"github.com/rios0rios0/setversion/internal/domain/entities"
)

// VersionSourceRepository is one strategy for finding the raw upstream version
// (command line override, obsinfo metadata, archive contents).
type VersionSourceRepository interface {
	// Name returns the source identifier (e.g. "override", "obsinfo").
	Name() string

	// Resolve returns the raw version, or an error wrapping entities.ErrVersionNotFound
	// when this source has nothing to offer.
	Resolve(input entities.DetectionInput) (string, error)
}
