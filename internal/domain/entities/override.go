package entities

import (
	"fmt"
	"strings"
)

// DefaultIndent is the indentation used inside an override block.
const DefaultIndent = "    "

// OverrideBlock is a local_path_override statement to append to a manifest.
type OverrideBlock struct {
	ModuleName string
	Path       string // Slash-separated, relative to the manifest directory
	Indent     string
	LineEnding LineEnding
}

// Render formats the block. It starts with a line ending so the previous last
// line is terminated, and every line it adds ends with the same convention.
func (o OverrideBlock) Render() string {
	indent := o.Indent
	if indent == "" {
		indent = DefaultIndent
	}
	eol := o.LineEnding.String()

	var sb strings.Builder
	sb.WriteString(eol)
	sb.WriteString("local_path_override(" + eol)
	sb.WriteString(fmt.Sprintf("%smodule_name = %q,%s", indent, o.ModuleName, eol))
	sb.WriteString(fmt.Sprintf("%spath = %q,%s", indent, o.Path, eol))
	sb.WriteString(")" + eol)
	return sb.String()
}
