//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/bzloverride/internal/domain/commands"
)

// StubFindCommand is a stub implementation of commands.Find.
type StubFindCommand struct {
	ExecuteCallCount int
	Results          []commands.FindResult
	ExecuteErr       error
	LastOpts         commands.FindOptions
}

var _ commands.Find = (*StubFindCommand)(nil)

func (s *StubFindCommand) Execute(
	_ context.Context,
	opts commands.FindOptions,
) ([]commands.FindResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Results, s.ExecuteErr
}
