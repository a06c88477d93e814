package internal

import (
	"github.com/rios0rios0/bzloverride/internal/infrastructure/controllers"
)

// AppInternal holds the wired controllers of the application.
type AppInternal struct {
	root *controllers.OverrideController
}

// NewAppInternal creates the application from its controllers.
func NewAppInternal(root *controllers.OverrideController) *AppInternal {
	return &AppInternal{root: root}
}

// GetRootController returns the controller bound to the root command.
func (it *AppInternal) GetRootController() *controllers.OverrideController {
	return it.root
}
