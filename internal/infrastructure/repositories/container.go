package repositories

import (
	"github.com/spf13/afero"
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/setversion/internal/domain/repositories"
	archiveRepo "github.com/rios0rios0/setversion/internal/infrastructure/repositories/archive"
	fsRepo "github.com/rios0rios0/setversion/internal/infrastructure/repositories/filesystem"
	obsinfoRepo "github.com/rios0rios0/setversion/internal/infrastructure/repositories/obsinfo"
	overrideRepo "github.com/rios0rios0/setversion/internal/infrastructure/repositories/override"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() afero.Fs {
		return afero.NewOsFs()
	}); err != nil {
		return err
	}
	if err := container.Provide(fsRepo.NewAferoFileRepository); err != nil {
		return err
	}
	if err := container.Provide(archiveRepo.NewArchiveReaderRepository); err != nil {
		return err
	}

	// Registration order is resolution priority: override, obsinfo, archive
	if err := container.Provide(func(
		files domainRepos.FileRepository,
		archives domainRepos.ArchiveRepository,
	) *VersionSourceRegistry {
		reg := NewVersionSourceRegistry()
		reg.Register(overrideRepo.NewOverrideVersionSourceRepository())
		reg.Register(obsinfoRepo.NewObsInfoVersionSourceRepository(files))
		reg.Register(archiveRepo.NewArchiveVersionSourceRepository(archives))
		return reg
	}); err != nil {
		return err
	}

	return nil
}
