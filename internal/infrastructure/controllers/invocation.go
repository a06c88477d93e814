package controllers

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bzloverride/internal/domain/entities"
)

// invocation is the configuration shared by every controller, resolved from
// flags, the environment and the optional settings file.
type invocation struct {
	Settings *entities.Settings
	WorkDir  string
	Strict   bool
}

// resolveInvocation reads the persistent flags. The working directory is taken
// from --workdir, then from the environment variable named in the settings,
// then from the process.
func resolveInvocation(cmd *cobra.Command) (*invocation, error) {
	configPath, _ := cmd.Flags().GetString("config")
	workDirFlag, _ := cmd.Flags().GetString("workdir")
	strict, _ := cmd.Flags().GetBool("strict")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	processDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to read current directory: %w", err)
	}

	// settings are looked up next to the manifest, which under `bazel run` is
	// not the process directory
	configBase := workDirFlag
	if configBase == "" {
		configBase = os.Getenv(entities.DefaultWorkingDirectoryEnv)
	}
	if configBase == "" {
		configBase = processDir
	}

	settings, err := loadSettings(configPath, configBase)
	if err != nil {
		return nil, err
	}

	workDir := workDirFlag
	if workDir == "" {
		workDir = os.Getenv(settings.WorkingDirectoryEnv)
		if workDir != "" {
			logger.Debugf("Using working directory from %s: %s", settings.WorkingDirectoryEnv, workDir)
		}
	}
	if workDir == "" {
		workDir = processDir
	}

	return &invocation{
		Settings: settings,
		WorkDir:  workDir,
		Strict:   strict || settings.StrictMatch,
	}, nil
}

// loadSettings reads an explicit settings file, or the first one found in
// the default locations, or falls back to defaults.
func loadSettings(configPath, baseDir string) (*entities.Settings, error) {
	if configPath == "" {
		found, err := entities.FindConfigFile(baseDir)
		if err != nil {
			logger.Debug("No config file found, using defaults")
			return entities.NewDefaultSettings(), nil
		}
		configPath = found
	}

	logger.Debugf("Using config file: %s", configPath)
	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

// AddPersistentFlags adds the flags every controller reads to the root command.
func AddPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("workdir", "C", "",
		"Directory holding the manifest (default: $BUILD_WORKING_DIRECTORY or the current directory)")
	cmd.PersistentFlags().Bool("strict", false,
		"Match the dependency name as a whole token instead of any substring")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
}
