//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/bzloverride/internal/domain/entities"
	"github.com/rios0rios0/bzloverride/internal/domain/repositories"
)

// StubCheckoutRepository returns a fixed checkout for every directory.
type StubCheckoutRepository struct {
	Checkout    *entities.Checkout
	DescribeErr error

	// spy: directories described
	DescribedDirs []string
}

var _ repositories.CheckoutRepository = (*StubCheckoutRepository)(nil)

func (s *StubCheckoutRepository) Describe(dir string) (*entities.Checkout, error) {
	s.DescribedDirs = append(s.DescribedDirs, dir)
	return s.Checkout, s.DescribeErr
}
