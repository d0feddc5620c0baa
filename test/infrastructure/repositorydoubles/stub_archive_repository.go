//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/setversion/internal/domain/repositories"
)

// StubArchiveRepository serves member lists from memory.
type StubArchiveRepository struct {
	Members map[string][]string // archive path -> members
	ListErr error

	// spy: archives listed, in call order
	ListedPaths []string
}

var _ repositories.ArchiveRepository = (*StubArchiveRepository)(nil)

func (s *StubArchiveRepository) ListMembers(path string) ([]string, error) {
	s.ListedPaths = append(s.ListedPaths, path)
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	members, ok := s.Members[path]
	if !ok {
		return nil, fmt.Errorf("archive %q not found", path)
	}
	return members, nil
}
