//go:build unit

package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bzloverride/internal/domain/commands"
	"github.com/rios0rios0/bzloverride/internal/domain/entities"
	doubles "github.com/rios0rios0/bzloverride/test/infrastructure/repositorydoubles"
)

func TestFindRepositoryDirectory(t *testing.T) {
	t.Parallel()

	t.Run("should return an immediate child of the start directory", func(t *testing.T) {
		t.Parallel()

		// given
		dirs := doubles.NewInMemoryDirectoryRepository("/ws/app/acme_widgets")

		// when
		found, err := commands.FindRepositoryDirectory(dirs, "/ws/app", "acme_widgets")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/ws/app/acme_widgets", found)
	})

	t.Run("should descend one level into each child", func(t *testing.T) {
		t.Parallel()

		// given
		dirs := doubles.NewInMemoryDirectoryRepository("/ws/app/third_party/acme_widgets")

		// when
		found, err := commands.FindRepositoryDirectory(dirs, "/ws/app", "acme_widgets")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/ws/app/third_party/acme_widgets", found)
	})

	t.Run("should not descend two levels below a directory", func(t *testing.T) {
		t.Parallel()

		// given
		dirs := doubles.NewInMemoryDirectoryRepository("/ws/app/a/b/acme_widgets")

		// when
		_, err := commands.FindRepositoryDirectory(dirs, "/ws/app", "acme_widgets")

		// then
		require.ErrorIs(t, err, entities.ErrDirectoryNotFound)
	})

	t.Run("should walk up to a sibling tree of the start directory", func(t *testing.T) {
		t.Parallel()

		// given
		dirs := doubles.NewInMemoryDirectoryRepository(
			"/ws/app/src",
			"/ws/deps/acme_widgets",
		)

		// when
		found, err := commands.FindRepositoryDirectory(dirs, "/ws/app", "acme_widgets")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/ws/deps/acme_widgets", found)
	})

	t.Run("should keep walking up until the filesystem root", func(t *testing.T) {
		t.Parallel()

		// given
		dirs := doubles.NewInMemoryDirectoryRepository(
			"/home/dev/projects/app/module",
			"/acme_widgets",
		)

		// when
		found, err := commands.FindRepositoryDirectory(dirs, "/home/dev/projects/app/module", "acme_widgets")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/acme_widgets", found)
	})

	t.Run("should prefer the closest level over a farther one", func(t *testing.T) {
		t.Parallel()

		// given
		dirs := doubles.NewInMemoryDirectoryRepository(
			"/ws/app/vendor/acme_widgets",
			"/ws/acme_widgets",
		)

		// when
		found, err := commands.FindRepositoryDirectory(dirs, "/ws/app", "acme_widgets")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/ws/app/vendor/acme_widgets", found)
	})

	t.Run("should ignore files with the target name", func(t *testing.T) {
		t.Parallel()

		// given
		dirs := doubles.NewInMemoryDirectoryRepository("/ws/app", "/ws/deps/acme_widgets")
		dirs.AddFile("/ws/app/acme_widgets")
		dirs.AddFile("/ws/app/docs/acme_widgets")

		// when
		found, err := commands.FindRepositoryDirectory(dirs, "/ws/app", "acme_widgets")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/ws/deps/acme_widgets", found)
	})

	t.Run("should skip unreadable directories and continue", func(t *testing.T) {
		t.Parallel()

		// given
		dirs := doubles.NewInMemoryDirectoryRepository("/ws/app/locked/acme_widgets", "/ws/deps/acme_widgets")
		dirs.ReadDirErrs["/ws/app/locked"] = errors.New("permission denied")

		// when
		found, err := commands.FindRepositoryDirectory(dirs, "/ws/app", "acme_widgets")

		// then
		require.NoError(t, err)
		assert.Equal(t, "/ws/deps/acme_widgets", found)
	})

	t.Run("should report not found after checking the root", func(t *testing.T) {
		t.Parallel()

		// given
		dirs := doubles.NewInMemoryDirectoryRepository("/ws/app/src")

		// when
		found, err := commands.FindRepositoryDirectory(dirs, "/ws/app", "acme_widgets")

		// then
		require.ErrorIs(t, err, entities.ErrDirectoryNotFound)
		assert.Empty(t, found)
		assert.Contains(t, dirs.ReadDirCalls, "/")
	})

	t.Run("should return the same directory on repeated searches", func(t *testing.T) {
		t.Parallel()

		// given
		dirs := doubles.NewInMemoryDirectoryRepository(
			"/ws/a/acme_widgets",
			"/ws/b/acme_widgets",
			"/ws/app",
		)

		// when
		first, firstErr := commands.FindRepositoryDirectory(dirs, "/ws/app", "acme_widgets")
		second, secondErr := commands.FindRepositoryDirectory(dirs, "/ws/app", "acme_widgets")

		// then
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.Equal(t, first, second)
		assert.Equal(t, "/ws/a/acme_widgets", first)
	})
}
