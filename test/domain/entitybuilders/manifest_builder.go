//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/bzloverride/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ManifestBuilder assembles MODULE.bazel content line by line.
type ManifestBuilder struct {
	*testkit.BaseBuilder
	lines      []string
	lineEnding entities.LineEnding
}

// NewManifestBuilder creates a builder with a module() header and LF endings.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		lines:       []string{`module(name = "app", version = "0.1.0")`, ""},
		lineEnding:  entities.LF,
	}
}

// WithDep adds a bazel_dep line with a name and version.
func (b *ManifestBuilder) WithDep(name, version string) *ManifestBuilder {
	b.lines = append(b.lines, fmt.Sprintf(`bazel_dep(name = "%s", version = "%s")`, name, version))
	return b
}

// WithLine adds a raw line.
func (b *ManifestBuilder) WithLine(line string) *ManifestBuilder {
	b.lines = append(b.lines, line)
	return b
}

// WithLineEnding sets the line ending used between lines.
func (b *ManifestBuilder) WithLineEnding(ending entities.LineEnding) *ManifestBuilder {
	b.lineEnding = ending
	return b
}

// Build creates the content (satisfies testkit.Builder interface).
func (b *ManifestBuilder) Build() interface{} {
	return b.BuildContent()
}

// BuildContent joins the lines, terminating each one.
func (b *ManifestBuilder) BuildContent() string {
	eol := b.lineEnding.String()
	return strings.Join(b.lines, eol) + eol
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManifestBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.lines = []string{`module(name = "app", version = "0.1.0")`, ""}
	b.lineEnding = entities.LF
	return b
}

// Clone creates a deep copy of the ManifestBuilder.
func (b *ManifestBuilder) Clone() testkit.Builder {
	return &ManifestBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		lines:       append([]string(nil), b.lines...),
		lineEnding:  b.lineEnding,
	}
}
