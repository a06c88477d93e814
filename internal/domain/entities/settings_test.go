//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bzloverride/internal/domain/entities"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should fill defaults for keys the file omits", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, t.TempDir(), "bzloverride.yaml", "strict_match: true\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.True(t, settings.StrictMatch)
		assert.Equal(t, entities.DefaultManifestName, settings.ManifestName)
		assert.Equal(t, entities.DefaultWorkingDirectoryEnv, settings.WorkingDirectoryEnv)
		assert.Equal(t, entities.DefaultIndent, settings.Indent)
	})

	t.Run("should read every key", func(t *testing.T) {
		t.Parallel()

		// given
		content := "manifest_name: MODULE.test.bazel\n" +
			"working_directory_env: MY_WORKDIR\n" +
			"strict_match: false\n" +
			"indent: \"\\t\"\n"
		path := writeConfig(t, t.TempDir(), "bzloverride.yaml", content)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "MODULE.test.bazel", settings.ManifestName)
		assert.Equal(t, "MY_WORKDIR", settings.WorkingDirectoryEnv)
		assert.False(t, settings.StrictMatch)
		assert.Equal(t, "\t", settings.Indent)
	})

	t.Run("should expand environment variable references", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_BZLOVERRIDE_ENV_NAME", "CUSTOM_DIR")
		path := writeConfig(t, t.TempDir(), "bzloverride.yaml",
			"working_directory_env: ${TEST_BZLOVERRIDE_ENV_NAME}\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "CUSTOM_DIR", settings.WorkingDirectoryEnv)
	})

	t.Run("should reject a manifest name that is a path", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, t.TempDir(), "bzloverride.yaml", "manifest_name: sub/MODULE.bazel\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "must be a file name")
	})

	t.Run("should reject an indent with visible characters", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, t.TempDir(), "bzloverride.yaml", "indent: \"--\"\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "indent")
	})

	t.Run("should return error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, t.TempDir(), "bzloverride.yaml", "manifest_name: [unclosed\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should return error for a missing file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("should prefer the hidden file in the base directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		hidden := writeConfig(t, dir, ".bzloverride.yaml", "strict_match: true\n")
		writeConfig(t, dir, "bzloverride.yaml", "strict_match: false\n")

		// when
		found, err := entities.FindConfigFile(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, hidden, found)
	})

	t.Run("should look inside the .config directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".config"), 0o755))
		expected := writeConfig(t, filepath.Join(dir, ".config"), "bzloverride.yml", "")

		// when
		found, err := entities.FindConfigFile(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, found)
	})
}

func TestNewDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should target MODULE.bazel and BUILD_WORKING_DIRECTORY", func(t *testing.T) {
		t.Parallel()

		// given / when
		settings := entities.NewDefaultSettings()

		// then
		assert.Equal(t, "MODULE.bazel", settings.ManifestName)
		assert.Equal(t, "BUILD_WORKING_DIRECTORY", settings.WorkingDirectoryEnv)
		assert.False(t, settings.StrictMatch)
	})
}
