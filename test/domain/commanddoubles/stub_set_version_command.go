//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/setversion/internal/domain/commands"
)

// StubSetVersionCommand is a stub implementation of commands.SetVersion.
type StubSetVersionCommand struct {
	ExecuteCallCount int
	ExecuteResult    *commands.SetVersionResult
	ExecuteErr       error
	LastOpts         commands.SetVersionOptions
}

var _ commands.SetVersion = (*StubSetVersionCommand)(nil)

func (s *StubSetVersionCommand) Execute(opts commands.SetVersionOptions) (*commands.SetVersionResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteResult == nil && s.ExecuteErr == nil {
		return &commands.SetVersionResult{}, nil
	}
	return s.ExecuteResult, s.ExecuteErr
}
