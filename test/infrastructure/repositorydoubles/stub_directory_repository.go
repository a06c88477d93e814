//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/rios0rios0/bzloverride/internal/domain/entities"
	"github.com/rios0rios0/bzloverride/internal/domain/repositories"
)

// InMemoryDirectoryRepository is a directory tree held in memory.
type InMemoryDirectoryRepository struct {
	children map[string]map[string]bool // parent -> child name -> is directory

	// ReadDirErrs fails ReadDir for the given paths.
	ReadDirErrs map[string]error

	// spy: paths listed, in order
	ReadDirCalls []string
}

var _ repositories.DirectoryRepository = (*InMemoryDirectoryRepository)(nil)

// NewInMemoryDirectoryRepository creates a tree containing every given
// directory and all of its ancestors. Paths must be absolute.
func NewInMemoryDirectoryRepository(dirs ...string) *InMemoryDirectoryRepository {
	repo := &InMemoryDirectoryRepository{
		children:    make(map[string]map[string]bool),
		ReadDirErrs: make(map[string]error),
	}
	for _, dir := range dirs {
		repo.add(filepath.Clean(dir), true)
	}
	return repo
}

// AddFile adds a regular file and its ancestor directories.
func (r *InMemoryDirectoryRepository) AddFile(path string) {
	r.add(filepath.Clean(path), false)
}

func (r *InMemoryDirectoryRepository) add(path string, isDir bool) {
	parent := filepath.Dir(path)
	if parent == path {
		return
	}
	if r.children[parent] == nil {
		r.children[parent] = make(map[string]bool)
	}
	if existing, ok := r.children[parent][filepath.Base(path)]; !ok || !existing {
		r.children[parent][filepath.Base(path)] = isDir
	}
	r.add(parent, true)
}

func (r *InMemoryDirectoryRepository) ReadDir(path string) ([]entities.DirectoryEntry, error) {
	r.ReadDirCalls = append(r.ReadDirCalls, path)
	if err, ok := r.ReadDirErrs[path]; ok {
		return nil, err
	}

	names, ok := r.children[path]
	if !ok {
		if r.isFile(path) {
			return nil, fs.ErrInvalid
		}
		if !r.exists(path) {
			return nil, fs.ErrNotExist
		}
	}

	entries := make([]entities.DirectoryEntry, 0, len(names))
	for name, isDir := range names {
		entries = append(entries, entities.DirectoryEntry{Name: name, IsDir: isDir})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (r *InMemoryDirectoryRepository) exists(path string) bool {
	parent := filepath.Dir(path)
	if parent == path {
		return true
	}
	_, ok := r.children[parent][filepath.Base(path)]
	return ok
}

func (r *InMemoryDirectoryRepository) isFile(path string) bool {
	isDir, ok := r.children[filepath.Dir(path)][filepath.Base(path)]
	return ok && !isDir
}
