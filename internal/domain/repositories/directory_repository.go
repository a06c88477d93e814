package repositories

import "github.com/rios0rios0/bzloverride/internal/domain/entities"

// DirectoryRepository lists directory contents. It is the only filesystem
// capability the repository search depends on.
type DirectoryRepository interface {
	// ReadDir returns the immediate children of path in a stable order.
	ReadDir(path string) ([]entities.DirectoryEntry, error)
}
