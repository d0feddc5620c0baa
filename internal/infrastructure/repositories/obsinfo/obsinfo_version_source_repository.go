package obsinfo

import (
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/setversion/internal/domain/entities"
	"github.com/rios0rios0/setversion/internal/domain/repositories"
)

const sourceName = "obsinfo"

// ObsInfoVersionSourceRepository reads the version field of the first usable *.obsinfo file.
type ObsInfoVersionSourceRepository struct {
	files repositories.FileRepository
}

// NewObsInfoVersionSourceRepository creates the obsinfo version source.
func NewObsInfoVersionSourceRepository(files repositories.FileRepository) repositories.VersionSourceRepository {
	return &ObsInfoVersionSourceRepository{files: files}
}

func (it *ObsInfoVersionSourceRepository) Name() string { return sourceName }

func (it *ObsInfoVersionSourceRepository) Resolve(input entities.DetectionInput) (string, error) {
	for _, path := range input.Files {
		if !strings.HasSuffix(path, entities.ObsInfoExtension) {
			continue
		}

		data, err := it.files.ReadFile(path)
		if err != nil {
			logger.Warnf("[obsinfo] %v", err)
			continue
		}

		info, err := entities.ParseObsInfo(data)
		if err != nil {
			logger.Warnf("[obsinfo] Ignoring %s: %v", path, err)
			continue
		}

		return info.Version, nil
	}

	return "", fmt.Errorf("%w: no obsinfo file with a version", entities.ErrVersionNotFound)
}
