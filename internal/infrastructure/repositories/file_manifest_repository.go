package repositories

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rios0rios0/bzloverride/internal/domain/entities"
	"github.com/rios0rios0/bzloverride/internal/domain/repositories"
)

// FileManifestRepository opens manifests on the local filesystem.
type FileManifestRepository struct{}

var _ repositories.ManifestRepository = (*FileManifestRepository)(nil)

// NewFileManifestRepository creates a new FileManifestRepository.
func NewFileManifestRepository() *FileManifestRepository {
	return &FileManifestRepository{}
}

// Open looks for name directly inside dir, without descending, and opens it
// read/write. The file is never created.
func (it *FileManifestRepository) Open(dir, name string) (repositories.ManifestHandle, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest directory %q: %w", dir, err)
	}
	path := filepath.Join(absDir, name)

	info, statErr := os.Stat(path)
	if statErr != nil {
		if errors.Is(statErr, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w (looked in %s)", entities.ErrManifestNotFound, absDir)
		}
		return nil, fmt.Errorf("%w: %w", entities.ErrManifestOpen, statErr)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w (%s is not a regular file)", entities.ErrManifestNotFound, path)
	}

	file, openErr := os.OpenFile(path, os.O_RDWR, 0)
	if openErr != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrManifestOpen, openErr)
	}

	return &fileManifestHandle{File: file, path: path}, nil
}

// fileManifestHandle is an *os.File that remembers its absolute path.
type fileManifestHandle struct {
	*os.File
	path string
}

func (h *fileManifestHandle) Path() string { return h.path }

// Close syncs appended content to disk before closing.
func (h *fileManifestHandle) Close() error {
	syncErr := h.File.Sync()
	closeErr := h.File.Close()
	if closeErr != nil {
		return closeErr
	}
	return syncErr
}
