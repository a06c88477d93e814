package repositories

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rios0rios0/bzloverride/internal/domain/entities"
	"github.com/rios0rios0/bzloverride/internal/domain/repositories"
)

// FilesystemDirectoryRepository lists directories with os.ReadDir. Entries
// come back sorted by name, so repeated searches over an unchanged tree agree.
type FilesystemDirectoryRepository struct{}

var _ repositories.DirectoryRepository = (*FilesystemDirectoryRepository)(nil)

// NewFilesystemDirectoryRepository creates a new FilesystemDirectoryRepository.
func NewFilesystemDirectoryRepository() *FilesystemDirectoryRepository {
	return &FilesystemDirectoryRepository{}
}

// ReadDir returns the children of path. Symbolic links count as directories
// when their target is one.
func (it *FilesystemDirectoryRepository) ReadDir(path string) ([]entities.DirectoryEntry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]entities.DirectoryEntry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			if info, statErr := os.Stat(filepath.Join(path, entry.Name())); statErr == nil {
				isDir = info.IsDir()
			}
		}
		entries = append(entries, entities.DirectoryEntry{Name: entry.Name(), IsDir: isDir})
	}
	return entries, nil
}
