package repositories

import "io"

// ManifestHandle is an open manifest positioned for sequential reads and
// trailing appends. Close flushes pending writes.
type ManifestHandle interface {
	io.ReadWriteSeeker
	io.Closer

	// Path returns the absolute path of the manifest file.
	Path() string
}

// ManifestRepository locates and opens the module manifest of a directory.
type ManifestRepository interface {
	// Open finds the manifest named name directly inside dir and opens it for
	// reading and writing. It fails with entities.ErrManifestNotFound when the
	// file is absent and entities.ErrManifestOpen when it cannot be opened.
	Open(dir, name string) (ManifestHandle, error)
}
