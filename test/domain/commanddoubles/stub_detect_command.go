//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/setversion/internal/domain/commands"
	"github.com/rios0rios0/setversion/internal/domain/entities"
)

// StubDetectCommand is a stub implementation of commands.Detect.
type StubDetectCommand struct {
	ExecuteCallCount int
	ExecuteVersion   entities.ConvertedVersion
	ExecuteErr       error
	LastOpts         commands.DetectOptions
}

var _ commands.Detect = (*StubDetectCommand)(nil)

func (s *StubDetectCommand) Execute(opts commands.DetectOptions) (entities.ConvertedVersion, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteVersion, s.ExecuteErr
}
