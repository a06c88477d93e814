package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bzloverride/internal/domain/entities"
	"github.com/rios0rios0/bzloverride/internal/domain/repositories"
)

// Override is the interface for the override command.
type Override interface {
	Execute(ctx context.Context, opts OverrideOptions) error
}

// OverrideOptions holds runtime options for a single invocation.
type OverrideOptions struct {
	Names        []string // Short names, processed in order
	WorkDir      string   // Directory holding the manifest and where the search starts
	ManifestName string
	Indent       string
	Strict       bool
	DryRun       bool
}

// OverrideCommand appends a local_path_override for each requested
// dependency, stopping at the first name that cannot be resolved.
type OverrideCommand struct {
	resolver
	manifests repositories.ManifestRepository
}

// NewOverrideCommand creates a new OverrideCommand.
func NewOverrideCommand(
	manifests repositories.ManifestRepository,
	directories repositories.DirectoryRepository,
	checkouts repositories.CheckoutRepository,
) *OverrideCommand {
	return &OverrideCommand{
		resolver:  resolver{directories: directories, checkouts: checkouts},
		manifests: manifests,
	}
}

// Execute processes every name sequentially. The manifest is reopened for each
// name, so earlier appends are visible to later lookups.
func (it *OverrideCommand) Execute(ctx context.Context, opts OverrideOptions) error {
	workDir, err := absoluteWorkDir(opts.WorkDir)
	if err != nil {
		return err
	}

	for _, name := range opts.Names {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if overrideErr := it.overrideOne(workDir, name, opts); overrideErr != nil {
			return overrideErr
		}
	}
	return nil
}

func (it *OverrideCommand) overrideOne(workDir, name string, opts OverrideOptions) (err error) {
	manifestName := opts.ManifestName
	if manifestName == "" {
		manifestName = entities.DefaultManifestName
	}

	handle, err := it.manifests.Open(workDir, manifestName)
	if err != nil {
		return err
	}
	defer closeManifest(handle, &err)

	ending, err := entities.DetectLineEnding(handle)
	if err != nil {
		return err
	}
	logger.Debugf("Manifest %s uses %s line endings", handle.Path(), ending.Name())

	res, err := it.resolve(handle, workDir, name, opts.Strict)
	if err != nil {
		return err
	}

	block, err := buildOverrideBlock(
		handle.Path(), res.Directory, res.Reference.CanonicalName, ending, opts.Indent,
	)
	if err != nil {
		return err
	}

	if opts.DryRun {
		logger.Infof("[dry-run] Would append to %s:%s", handle.Path(), block.Render())
		return nil
	}

	if err = appendOverride(handle, block); err != nil {
		return err
	}
	logger.Infof("Added local_path_override for %q with path %q", block.ModuleName, block.Path)
	return nil
}
