package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bzloverride/internal/infrastructure/controllers"
)

func buildRootCommand(rootController *controllers.OverrideController) *cobra.Command {
	bind := rootController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   bind.Use,
		Short: bind.Short,
		Long:  bind.Long,
		Args:  cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			return rootController.Execute(command, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// no subcommands are mounted, so "help" and "completion" stay dependency names
	cmd.CompletionOptions.DisableDefaultCmd = true

	controllers.AddPersistentFlags(cmd)
	rootController.AddFlags(cmd)
	return cmd
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetRootController())

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'bzloverride': %s", err)
	}
}
