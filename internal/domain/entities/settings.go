package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultManifestName is the file patched when no setting overrides it.
	DefaultManifestName = "MODULE.bazel"
	// DefaultWorkingDirectoryEnv is set by `bazel run` to the invoking directory.
	DefaultWorkingDirectoryEnv = "BUILD_WORKING_DIRECTORY"
)

// Settings is the optional configuration file for bzloverride.
type Settings struct {
	ManifestName        string `yaml:"manifest_name"`
	WorkingDirectoryEnv string `yaml:"working_directory_env"`
	StrictMatch         bool   `yaml:"strict_match"`
	Indent              string `yaml:"indent"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no file is found.
func NewDefaultSettings() *Settings {
	return &Settings{
		ManifestName:        DefaultManifestName,
		WorkingDirectoryEnv: DefaultWorkingDirectoryEnv,
		Indent:              DefaultIndent,
	}
}

// NewSettings reads and parses a settings file, expanding environment
// variables and filling unset keys with defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.ManifestName = expandEnv(settings.ManifestName)
	settings.WorkingDirectoryEnv = expandEnv(settings.WorkingDirectoryEnv)

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// FindConfigFile searches for a settings file in standard locations, relative
// to baseDir first and then the user's home directory.
func FindConfigFile(baseDir string) (string, error) {
	locations := []string{
		baseDir,
		filepath.Join(baseDir, ".config"),
	}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".bzloverride.yaml",
		".bzloverride.yml",
		"bzloverride.yaml",
		"bzloverride.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv replaces ${VAR} references with their values.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func (s *Settings) validate() error {
	if strings.TrimSpace(s.ManifestName) == "" {
		return errors.New("manifest_name must not be empty")
	}
	if strings.ContainsAny(s.ManifestName, `/\`) {
		return fmt.Errorf("manifest_name %q must be a file name, not a path", s.ManifestName)
	}
	if strings.Trim(s.Indent, " \t") != "" {
		return fmt.Errorf("indent %q must contain only spaces or tabs", s.Indent)
	}
	return nil
}
