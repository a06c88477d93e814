package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/bzloverride/internal/domain/entities"
	"github.com/rios0rios0/bzloverride/internal/domain/repositories"
)

// resolution is a located declaration together with its checkout on disk.
type resolution struct {
	Reference entities.DependencyReference
	Directory string
}

// resolver runs the declaration lookup and the directory search shared by
// every command.
type resolver struct {
	directories repositories.DirectoryRepository
	checkouts   repositories.CheckoutRepository
}

// resolve locates shortName in the manifest and finds its directory,
// searching outward from workDir.
func (it *resolver) resolve(
	handle repositories.ManifestHandle,
	workDir, shortName string,
	strict bool,
) (*resolution, error) {
	if strings.TrimSpace(shortName) == "" {
		return nil, errors.New("dependency name must not be empty")
	}

	ref, err := locateDeclaration(handle, shortName, strict)
	if err != nil {
		return nil, err
	}
	logger.Infof("Found bazel_dep %q for %q on line %d", ref.CanonicalName, shortName, ref.Line)
	logDeclaredVersion(ref)

	logger.Infof("Searching for %q starting at %s", ref.CanonicalName, workDir)
	dir, err := findRepositoryDirectory(it.directories, workDir, ref.CanonicalName)
	if err != nil {
		return nil, err
	}
	logger.Infof("Resolved %q to %s", ref.CanonicalName, dir)
	it.logCheckout(dir)

	return &resolution{Reference: ref, Directory: dir}, nil
}

func (it *resolver) logCheckout(dir string) {
	if it.checkouts == nil {
		return
	}

	checkout, err := it.checkouts.Describe(dir)
	switch {
	case err != nil:
		logger.Warnf("Failed to inspect %s: %v", dir, err)
	case checkout == nil:
		logger.Debugf("%s is not a git checkout", dir)
	case checkout.Commit == "":
		logger.Infof("Checkout %s has no commits yet", dir)
	case checkout.Branch == "":
		logger.Infof("Checkout %s is detached at %s", dir, checkout.Commit)
	default:
		logger.Infof("Checkout %s is on %s at %s", dir, checkout.Branch, checkout.Commit)
	}
}

// logDeclaredVersion reports the version pinned by the declaration. Registry
// versions are expected to be semantic versions.
func logDeclaredVersion(ref entities.DependencyReference) {
	if ref.Version == "" {
		logger.Debugf("bazel_dep %q declares no version", ref.CanonicalName)
		return
	}
	if !semver.IsValid(normalizeVersion(ref.Version)) {
		logger.Warnf("bazel_dep %q declares non-semantic version %q", ref.CanonicalName, ref.Version)
		return
	}
	logger.Debugf("bazel_dep %q declares version %s", ref.CanonicalName, ref.Version)
}

// normalizeVersion ensures version has a 'v' prefix for semver compatibility.
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// absoluteWorkDir resolves the directory every lookup starts from.
func absoluteWorkDir(workDir string) (string, error) {
	if workDir == "" {
		workDir = "."
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("invalid working directory %q: %w", workDir, err)
	}
	return abs, nil
}

// closeManifest closes handle, keeping the first error seen.
func closeManifest(handle repositories.ManifestHandle, errp *error) {
	if closeErr := handle.Close(); closeErr != nil && *errp == nil {
		*errp = fmt.Errorf("failed to close manifest: %w", closeErr)
	}
}
