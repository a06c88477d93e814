package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/bzloverride/internal/domain/commands"
	"github.com/rios0rios0/bzloverride/internal/domain/entities"
)

// OverrideController handles the root command: one override per argument.
// With --find-only it prints the resolved checkouts instead of writing.
type OverrideController struct {
	command commands.Override
	find    commands.Find
}

var _ entities.Controller = (*OverrideController)(nil)

// NewOverrideController creates a new OverrideController.
func NewOverrideController(command commands.Override, find commands.Find) *OverrideController {
	return &OverrideController{command: command, find: find}
}

// GetBind returns the Cobra command metadata for the override controller.
func (it *OverrideController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "bzloverride [name...]",
		Short: "Point bazel_dep dependencies at local checkouts",
		Long: `Append a local_path_override to MODULE.bazel for each named dependency.

Each name is matched against the bazel_dep lines of the manifest, the full
module name is taken from the matching line, and a directory with that name
is searched for next to the working directory and in every parent, one or two
levels deep. The override path is written relative to the manifest.

Every argument is a dependency name, including words such as "find" or "help".
Use --find-only to print "<module name><TAB><directory>" per name without
modifying MODULE.bazel.

When run through "bazel run", the manifest is read from $BUILD_WORKING_DIRECTORY.`,
	}
}

// Execute appends overrides for every argument, stopping at the first failure.
func (it *OverrideController) Execute(cmd *cobra.Command, args []string) error {
	rt, err := resolveInvocation(cmd)
	if err != nil {
		return err
	}

	if findOnly, _ := cmd.Flags().GetBool("find-only"); findOnly {
		return it.printCheckouts(cmd, rt, args)
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	return it.command.Execute(context.Background(), commands.OverrideOptions{
		Names:        args,
		WorkDir:      rt.WorkDir,
		ManifestName: rt.Settings.ManifestName,
		Indent:       rt.Settings.Indent,
		Strict:       rt.Strict,
		DryRun:       dryRun,
	})
}

// printCheckouts writes one resolved dependency per line, including the ones
// resolved before a failure.
func (it *OverrideController) printCheckouts(cmd *cobra.Command, rt *invocation, args []string) error {
	results, err := it.find.Execute(context.Background(), commands.FindOptions{
		Names:        args,
		WorkDir:      rt.WorkDir,
		ManifestName: rt.Settings.ManifestName,
		Strict:       rt.Strict,
	})
	for _, result := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", result.CanonicalName, result.Directory)
	}
	return err
}

// AddFlags adds the override-specific flags to the given Cobra command.
func (it *OverrideController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Show the overrides without writing them")
	cmd.Flags().Bool("find-only", false, "Print the local checkout of each dependency without writing")
}
