//go:build unit

package filesystem_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/setversion/internal/infrastructure/repositories/filesystem"
)

func TestAferoFileRepository(t *testing.T) {
	t.Parallel()

	t.Run("should list regular files sorted by name", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/src/b.spec", []byte("b"), 0o644))
		require.NoError(t, afero.WriteFile(fs, "/src/a.obsinfo", []byte("a"), 0o644))
		require.NoError(t, fs.MkdirAll("/src/subdir", 0o755))
		require.NoError(t, afero.WriteFile(fs, "/src/subdir/c.spec", []byte("c"), 0o644))
		repo := filesystem.NewAferoFileRepository(fs)

		// when
		files, err := repo.List("/src")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"/src/a.obsinfo", "/src/b.spec"}, files)
	})

	t.Run("should return an error for a missing directory", func(t *testing.T) {
		t.Parallel()

		// given
		repo := filesystem.NewAferoFileRepository(afero.NewMemMapFs())

		// when
		files, err := repo.List("/missing")

		// then
		require.Error(t, err)
		assert.Nil(t, files)
	})

	t.Run("should write into new directories and read the content back", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		repo := filesystem.NewAferoFileRepository(fs)

		// when
		err := repo.WriteFile("/out/rpm/test.spec", []byte("Version: 1.0\n"))

		// then
		require.NoError(t, err)
		data, readErr := repo.ReadFile("/out/rpm/test.spec")
		require.NoError(t, readErr)
		assert.Equal(t, "Version: 1.0\n", string(data))
	})

	t.Run("should keep the permissions of an existing file", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/src/test.spec", []byte("old"), 0o600))
		repo := filesystem.NewAferoFileRepository(fs)

		// when
		err := repo.WriteFile("/src/test.spec", []byte("new"))

		// then
		require.NoError(t, err)
		info, statErr := fs.Stat("/src/test.spec")
		require.NoError(t, statErr)
		assert.Equal(t, "-rw-------", info.Mode().Perm().String())
	})
}
