//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/bzloverride/internal/domain/commands"
)

// StubOverrideCommand is a stub implementation of commands.Override.
type StubOverrideCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.OverrideOptions
}

var _ commands.Override = (*StubOverrideCommand)(nil)

func (s *StubOverrideCommand) Execute(
	_ context.Context,
	opts commands.OverrideOptions,
) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
