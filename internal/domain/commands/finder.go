package commands

import (
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bzloverride/internal/domain/entities"
	"github.com/rios0rios0/bzloverride/internal/domain/repositories"
)

// findRepositoryDirectory searches for a directory called name. Each level
// checks the children of the current directory and their children, then the
// search moves to the parent until the filesystem root has been checked.
// start must be absolute.
func findRepositoryDirectory(
	dirs repositories.DirectoryRepository,
	start, name string,
) (string, error) {
	current := filepath.Clean(start)
	for {
		if found, ok := searchLevel(dirs, current, name); ok {
			return found, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w: %s", entities.ErrDirectoryNotFound, name)
		}
		current = parent
	}
}

// searchLevel checks the immediate child directories of root and, for each
// one that does not match, its own immediate children. The first match wins.
func searchLevel(dirs repositories.DirectoryRepository, root, name string) (string, bool) {
	logger.Debugf("Searching for %q under %s", name, root)

	children, err := dirs.ReadDir(root)
	if err != nil {
		logger.Debugf("Skipping unreadable directory %s: %v", root, err)
		return "", false
	}

	for _, child := range children {
		if !child.IsDir || child.Name == "" {
			continue
		}

		childPath := filepath.Join(root, child.Name)
		if child.Name == name {
			return childPath, true
		}

		nested, nestedErr := dirs.ReadDir(childPath)
		if nestedErr != nil {
			logger.Debugf("Skipping unreadable directory %s: %v", childPath, nestedErr)
			continue
		}

		for _, grandchild := range nested {
			if grandchild.IsDir && grandchild.Name == name {
				return filepath.Join(childPath, grandchild.Name), true
			}
		}
	}

	return "", false
}
