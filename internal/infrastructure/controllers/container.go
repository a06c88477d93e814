package controllers

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Every argument of the root command is a dependency name, so nothing is
	// mounted as a subcommand.
	if err := container.Provide(NewOverrideController); err != nil {
		return err
	}

	return nil
}
