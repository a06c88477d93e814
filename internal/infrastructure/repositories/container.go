package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/bzloverride/internal/domain/repositories"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() domainRepos.ManifestRepository {
		return NewFileManifestRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.DirectoryRepository {
		return NewFilesystemDirectoryRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.CheckoutRepository {
		return NewGitCheckoutRepository()
	}); err != nil {
		return err
	}

	return nil
}
