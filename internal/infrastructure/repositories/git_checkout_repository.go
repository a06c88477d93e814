package repositories

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/rios0rios0/bzloverride/internal/domain/entities"
	"github.com/rios0rios0/bzloverride/internal/domain/repositories"
)

const shortHashLength = 7

// GitCheckoutRepository reads checkout state with go-git.
type GitCheckoutRepository struct{}

var _ repositories.CheckoutRepository = (*GitCheckoutRepository)(nil)

// NewGitCheckoutRepository creates a new GitCheckoutRepository.
func NewGitCheckoutRepository() *GitCheckoutRepository {
	return &GitCheckoutRepository{}
}

// Describe opens dir as a repository root; parent repositories are ignored.
func (it *GitCheckoutRepository) Describe(dir string) (*entities.Checkout, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, nil //nolint:nilnil // not a checkout is not an error
		}
		return nil, fmt.Errorf("failed to open repository %s: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return &entities.Checkout{}, nil
		}
		return nil, fmt.Errorf("failed to read HEAD of %s: %w", dir, err)
	}

	checkout := &entities.Checkout{Commit: head.Hash().String()[:shortHashLength]}
	if head.Name().IsBranch() {
		checkout.Branch = head.Name().Short()
	}
	return checkout, nil
}
