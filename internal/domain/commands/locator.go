package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/bzloverride/internal/domain/entities"
)

const (
	declarationKeyword = "bazel_dep"
	nameField          = "name ="
	versionField       = "version ="

	maxLineLength = 1024 * 1024
)

// locateDeclaration scans the manifest line by line for the first bazel_dep
// line mentioning shortName and extracts the quoted canonical name from it.
// With strict set, shortName must appear as a whole token rather than as any
// substring of the line.
func locateDeclaration(
	stream io.Reader,
	shortName string,
	strict bool,
) (entities.DependencyReference, error) {
	ref := entities.DependencyReference{ShortName: shortName}

	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		if !strings.HasPrefix(line, declarationKeyword) {
			continue
		}
		if !mentions(line, shortName, strict) {
			continue
		}

		name, ok := quotedValue(line, nameField)
		if !ok {
			return ref, fmt.Errorf("%w (line %d: %s)", entities.ErrMalformedDeclaration, lineNumber, line)
		}

		ref.CanonicalName = name
		ref.Version, _ = quotedValue(line, versionField)
		ref.Line = lineNumber
		return ref, nil
	}

	if err := scanner.Err(); err != nil {
		return ref, fmt.Errorf("failed to read manifest: %w", err)
	}

	return ref, fmt.Errorf("%w: %s", entities.ErrDependencyNotFound, shortName)
}

// quotedValue returns the text between the first two double quotes that
// follow field on the line.
func quotedValue(line, field string) (string, bool) {
	fieldIdx := strings.Index(line, field)
	if fieldIdx < 0 {
		return "", false
	}

	rest := line[fieldIdx+len(field):]
	firstQuote := strings.IndexByte(rest, '"')
	if firstQuote < 0 {
		return "", false
	}

	rest = rest[firstQuote+1:]
	secondQuote := strings.IndexByte(rest, '"')
	if secondQuote < 0 {
		return "", false
	}

	return rest[:secondQuote], true
}

// mentions reports whether line contains shortName, as a bare substring or,
// when strict, delimited on both sides by non-identifier characters.
func mentions(line, shortName string, strict bool) bool {
	if !strict {
		return strings.Contains(line, shortName)
	}
	if shortName == "" {
		return false
	}

	offset := 0
	for {
		idx := strings.Index(line[offset:], shortName)
		if idx < 0 {
			return false
		}

		start := offset + idx
		end := start + len(shortName)
		before := start == 0 || !isIdentifierByte(line[start-1])
		after := end == len(line) || !isIdentifierByte(line[end])
		if before && after {
			return true
		}
		offset = start + 1
	}
}

func isIdentifierByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '_', b == '-', b == '.':
		return true
	default:
		return false
	}
}
