package entities

import "errors"

var (
	// ErrManifestNotFound is returned when no manifest exists in the working directory.
	ErrManifestNotFound = errors.New("couldn't find MODULE.bazel file to write to")

	// ErrManifestOpen is returned when the manifest exists but cannot be opened read/write.
	ErrManifestOpen = errors.New("stream attempted on invalid file")

	// ErrMalformedDeclaration is returned when a matching bazel_dep line has no quoted name.
	ErrMalformedDeclaration = errors.New(
		`found bazel_dep but search failed, bzloverride looks for name = "dep_name" syntax`,
	)

	// ErrDependencyNotFound is returned when no bazel_dep line references the short name.
	ErrDependencyNotFound = errors.New("failed to find dependency for local_path_override")

	// ErrDirectoryNotFound is returned when the dependency has no checkout on disk.
	ErrDirectoryNotFound = errors.New("couldn't find given repo directory")

	// ErrPathRelativization is returned when the checkout cannot be expressed
	// relative to the manifest.
	ErrPathRelativization = errors.New("failed to compute path relative to manifest")
)
