//go:build unit

package commands_test

import (
	"github.com/spf13/afero"

	"github.com/rios0rios0/setversion/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/setversion/internal/infrastructure/repositories"
	"github.com/rios0rios0/setversion/internal/infrastructure/repositories/archive"
	"github.com/rios0rios0/setversion/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/setversion/internal/infrastructure/repositories/obsinfo"
	"github.com/rios0rios0/setversion/internal/infrastructure/repositories/override"
)

// newSourceStack wires the real repositories over an in-memory filesystem.
func newSourceStack(fs afero.Fs) (repositories.FileRepository, *infraRepos.VersionSourceRegistry) {
	files := filesystem.NewAferoFileRepository(fs)
	reg := infraRepos.NewVersionSourceRegistry()
	reg.Register(override.NewOverrideVersionSourceRepository())
	reg.Register(obsinfo.NewObsInfoVersionSourceRepository(files))
	reg.Register(archive.NewArchiveVersionSourceRepository(archive.NewArchiveReaderRepository(fs)))
	return files, reg
}
