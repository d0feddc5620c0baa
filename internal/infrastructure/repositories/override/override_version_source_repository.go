package override

import (
	"strings"

	"github.com/rios0rios0/setversion/internal/domain/entities"
	"github.com/rios0rios0/setversion/internal/domain/repositories"
)

const sourceName = "override"

// OverrideVersionSourceRepository returns the version given on the command line, verbatim.
type OverrideVersionSourceRepository struct{}

// NewOverrideVersionSourceRepository creates the override version source.
func NewOverrideVersionSourceRepository() repositories.VersionSourceRepository {
	return &OverrideVersionSourceRepository{}
}

func (it *OverrideVersionSourceRepository) Name() string { return sourceName }

func (it *OverrideVersionSourceRepository) Resolve(input entities.DetectionInput) (string, error) {
	if strings.TrimSpace(input.Version) == "" {
		return "", entities.ErrVersionNotFound
	}
	return input.Version, nil
}
