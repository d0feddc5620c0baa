package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/rios0rios0/setversion/internal/domain/repositories"
)

const (
	defaultFileMode os.FileMode = 0o644
	defaultDirMode  os.FileMode = 0o755
)

// AferoFileRepository implements repositories.FileRepository on top of an afero filesystem.
type AferoFileRepository struct {
	fs afero.Fs
}

// NewAferoFileRepository creates a file repository backed by fs.
func NewAferoFileRepository(fs afero.Fs) repositories.FileRepository {
	return &AferoFileRepository{fs: fs}
}

func (it *AferoFileRepository) List(dir string) ([]string, error) {
	infos, err := afero.ReadDir(it.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	files := make([]string, 0, len(infos))
	for _, info := range infos {
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(dir, info.Name()))
	}
	return files, nil
}

func (it *AferoFileRepository) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(it.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return data, nil
}

// WriteFile keeps the permissions of an existing file.
func (it *AferoFileRepository) WriteFile(path string, data []byte) error {
	mode := defaultFileMode
	if info, err := it.fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := it.fs.MkdirAll(filepath.Dir(path), defaultDirMode); err != nil {
		return fmt.Errorf("failed to create directory for %q: %w", path, err)
	}

	if err := afero.WriteFile(it.fs, path, data, mode); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
