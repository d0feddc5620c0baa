package repositories

// FileRepository abstracts the directory holding the package sources.
type FileRepository interface {
	// List returns the regular files directly under dir, sorted by name.
	List(dir string) ([]string, error)

	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the whole file, creating parent directories as needed.
	WriteFile(path string, data []byte) error
}
