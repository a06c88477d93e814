package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewOverrideCommand); err != nil {
		return err
	}
	if err := container.Provide(NewFindCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *OverrideCommand) Override {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *FindCommand) Find {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
