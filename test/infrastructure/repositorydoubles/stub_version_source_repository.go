//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/setversion/internal/domain/entities"
	"github.com/rios0rios0/setversion/internal/domain/repositories"
)

// StubVersionSourceRepository is a configurable implementation of
// repositories.VersionSourceRepository that records its calls.
type StubVersionSourceRepository struct {
	SourceName string
	Version    string
	ResolveErr error

	// spy: inputs received
	ResolveCallCount int
	LastInput        entities.DetectionInput
}

var _ repositories.VersionSourceRepository = (*StubVersionSourceRepository)(nil)

func (s *StubVersionSourceRepository) Name() string { return s.SourceName }

func (s *StubVersionSourceRepository) Resolve(input entities.DetectionInput) (string, error) {
	s.ResolveCallCount++
	s.LastInput = input
	if s.ResolveErr != nil {
		return "", s.ResolveErr
	}
	return s.Version, nil
}
