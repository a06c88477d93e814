package repositories

import "github.com/rios0rios0/bzloverride/internal/domain/entities"

// CheckoutRepository inspects a dependency directory as a version-controlled
// checkout.
type CheckoutRepository interface {
	// Describe returns the checkout state of dir, or nil when dir is not the
	// root of a repository.
	Describe(dir string) (*entities.Checkout, error)
}
