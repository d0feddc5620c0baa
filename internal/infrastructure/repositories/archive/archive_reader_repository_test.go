//go:build unit

package archive_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/setversion/internal/infrastructure/repositories/archive"
	"github.com/rios0rios0/setversion/test/infrastructure/archivefixtures"
)

func TestArchiveReaderRepositoryListMembers(t *testing.T) {
	t.Parallel()

	members := []string{
		"testprog-1.2.3/",
		"testprog-1.2.3/README",
		"testprog-1.2.3/setup.py",
	}

	for _, name := range []string{
		"testprog-1.2.3.tar",
		"testprog-1.2.3.tar.gz",
		"testprog-1.2.3.tgz",
		"testprog-1.2.3.tar.xz",
		"testprog-1.2.3.tar.zst",
		"testprog-1.2.3.zip",
	} {
		t.Run("should list members of "+name, func(t *testing.T) {
			t.Parallel()

			// given
			fs := afero.NewMemMapFs()
			path := "/src/" + name
			require.NoError(t, archivefixtures.WriteArchive(fs, path, members))
			reader := archive.NewArchiveReaderRepository(fs)

			// when
			result, err := reader.ListMembers(path)

			// then
			require.NoError(t, err)
			assert.Equal(t, members, result)
		})
	}

	t.Run("should return ErrUnsupportedArchive for unknown extensions", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/src/test.spec", []byte("Version: 1\n"), 0o644))
		reader := archive.NewArchiveReaderRepository(fs)

		// when
		result, err := reader.ListMembers("/src/test.spec")

		// then
		require.ErrorIs(t, err, archive.ErrUnsupportedArchive)
		assert.Nil(t, result)
	})

	t.Run("should return an error for a missing archive", func(t *testing.T) {
		t.Parallel()

		// given
		reader := archive.NewArchiveReaderRepository(afero.NewMemMapFs())

		// when
		result, err := reader.ListMembers("/src/missing.tar")

		// then
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to open archive")
	})

	t.Run("should return an error for a corrupt compressed archive", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/src/broken.tar.gz", []byte("not gzip"), 0o644))
		reader := archive.NewArchiveReaderRepository(fs)

		// when
		result, err := reader.ListMembers("/src/broken.tar.gz")

		// then
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to decompress")
	})
}
