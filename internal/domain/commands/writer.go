package commands

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rios0rios0/bzloverride/internal/domain/entities"
)

// buildOverrideBlock expresses dir relative to the directory holding the
// manifest and returns the block to append.
func buildOverrideBlock(
	manifestPath, dir, moduleName string,
	ending entities.LineEnding,
	indent string,
) (entities.OverrideBlock, error) {
	relPath, err := filepath.Rel(filepath.Dir(manifestPath), dir)
	if err != nil {
		return entities.OverrideBlock{}, fmt.Errorf("%w: %w", entities.ErrPathRelativization, err)
	}

	return entities.OverrideBlock{
		ModuleName: moduleName,
		Path:       filepath.ToSlash(relPath),
		Indent:     indent,
		LineEnding: ending,
	}, nil
}

// appendOverride moves to the end of the manifest and writes the block.
// Existing content is never read back or modified.
func appendOverride(stream io.WriteSeeker, block entities.OverrideBlock) error {
	if _, err := stream.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end of manifest: %w", err)
	}

	writer := bufio.NewWriter(stream)
	if _, err := writer.WriteString(block.Render()); err != nil {
		return fmt.Errorf("failed to append override: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush override: %w", err)
	}
	return nil
}
