package entities

// DependencyReference is a dependency requested by its short name and, once a
// declaration line is found, its canonical name.
type DependencyReference struct {
	ShortName     string // Search string supplied on the command line
	CanonicalName string // Quoted name taken from the bazel_dep line
	Version       string // Quoted version taken from the same line, if any
	Line          int    // 1-based line number of the declaration
}

// IsResolved reports whether the canonical name has been located.
func (d DependencyReference) IsResolved() bool {
	return d.CanonicalName != ""
}

// DirectoryEntry is a single child of a directory listing.
type DirectoryEntry struct {
	Name  string
	IsDir bool // True for directories and links that resolve to one
}

// Checkout describes the git state of a resolved dependency directory.
type Checkout struct {
	Branch string // Short branch name, empty when HEAD is detached or unborn
	Commit string // Abbreviated commit hash, empty when HEAD is unborn
}
