//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/bzloverride/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// OverrideBlockBuilder helps create test override blocks with a fluent interface.
type OverrideBlockBuilder struct {
	*testkit.BaseBuilder
	moduleName string
	path       string
	indent     string
	lineEnding entities.LineEnding
}

// NewOverrideBlockBuilder creates a new override block builder with sensible defaults.
func NewOverrideBlockBuilder() *OverrideBlockBuilder {
	return &OverrideBlockBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		moduleName:  "acme_widgets",
		path:        "../deps/acme_widgets",
		indent:      entities.DefaultIndent,
		lineEnding:  entities.LF,
	}
}

// WithModuleName sets the module name.
func (b *OverrideBlockBuilder) WithModuleName(name string) *OverrideBlockBuilder {
	b.moduleName = name
	return b
}

// WithPath sets the relative path.
func (b *OverrideBlockBuilder) WithPath(path string) *OverrideBlockBuilder {
	b.path = path
	return b
}

// WithIndent sets the indentation.
func (b *OverrideBlockBuilder) WithIndent(indent string) *OverrideBlockBuilder {
	b.indent = indent
	return b
}

// WithLineEnding sets the line ending.
func (b *OverrideBlockBuilder) WithLineEnding(ending entities.LineEnding) *OverrideBlockBuilder {
	b.lineEnding = ending
	return b
}

// Build creates the override block (satisfies testkit.Builder interface).
func (b *OverrideBlockBuilder) Build() interface{} {
	return b.BuildOverrideBlock()
}

// BuildOverrideBlock creates the override block with a concrete return type.
func (b *OverrideBlockBuilder) BuildOverrideBlock() entities.OverrideBlock {
	return entities.OverrideBlock{
		ModuleName: b.moduleName,
		Path:       b.path,
		Indent:     b.indent,
		LineEnding: b.lineEnding,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *OverrideBlockBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.moduleName = "acme_widgets"
	b.path = "../deps/acme_widgets"
	b.indent = entities.DefaultIndent
	b.lineEnding = entities.LF
	return b
}

// Clone creates a deep copy of the OverrideBlockBuilder.
func (b *OverrideBlockBuilder) Clone() testkit.Builder {
	return &OverrideBlockBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		moduleName:  b.moduleName,
		path:        b.path,
		indent:      b.indent,
		lineEnding:  b.lineEnding,
	}
}
