package commands

import (
	"context"

	"github.com/rios0rios0/bzloverride/internal/domain/entities"
	"github.com/rios0rios0/bzloverride/internal/domain/repositories"
)

// Find is the interface for the find command.
type Find interface {
	Execute(ctx context.Context, opts FindOptions) ([]FindResult, error)
}

// FindOptions holds runtime options for a lookup without writing.
type FindOptions struct {
	Names        []string
	WorkDir      string
	ManifestName string
	Strict       bool
}

// FindResult is one resolved dependency.
type FindResult struct {
	ShortName     string
	CanonicalName string
	Directory     string
}

// FindCommand resolves dependencies to their checkouts and leaves the
// manifest untouched.
type FindCommand struct {
	resolver
	manifests repositories.ManifestRepository
}

// NewFindCommand creates a new FindCommand.
func NewFindCommand(
	manifests repositories.ManifestRepository,
	directories repositories.DirectoryRepository,
	checkouts repositories.CheckoutRepository,
) *FindCommand {
	return &FindCommand{
		resolver:  resolver{directories: directories, checkouts: checkouts},
		manifests: manifests,
	}
}

// Execute resolves every name in order and returns on the first failure.
func (it *FindCommand) Execute(ctx context.Context, opts FindOptions) ([]FindResult, error) {
	workDir, err := absoluteWorkDir(opts.WorkDir)
	if err != nil {
		return nil, err
	}

	manifestName := opts.ManifestName
	if manifestName == "" {
		manifestName = entities.DefaultManifestName
	}

	results := make([]FindResult, 0, len(opts.Names))
	for _, name := range opts.Names {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return results, ctxErr
		}

		res, findErr := it.findOne(workDir, manifestName, name, opts.Strict)
		if findErr != nil {
			return results, findErr
		}
		results = append(results, FindResult{
			ShortName:     name,
			CanonicalName: res.Reference.CanonicalName,
			Directory:     res.Directory,
		})
	}
	return results, nil
}

func (it *FindCommand) findOne(workDir, manifestName, name string, strict bool) (res *resolution, err error) {
	handle, err := it.manifests.Open(workDir, manifestName)
	if err != nil {
		return nil, err
	}
	defer closeManifest(handle, &err)

	return it.resolve(handle, workDir, name, strict)
}
