package entities

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineEnding is the newline convention of a manifest.
type LineEnding int

const (
	// LF terminates lines with "\n".
	LF LineEnding = iota
	// CRLF terminates lines with "\r\n".
	CRLF
)

// String returns the terminator itself.
func (l LineEnding) String() string {
	if l == CRLF {
		return "\r\n"
	}
	return "\n"
}

// Name returns a printable label for logs.
func (l LineEnding) Name() string {
	if l == CRLF {
		return "CRLF"
	}
	return "LF"
}

// DetectLineEnding classifies the stream by its first line and rewinds it to
// the start. An empty stream is LF.
func DetectLineEnding(stream io.ReadSeeker) (LineEnding, error) {
	if _, err := stream.Seek(0, io.SeekStart); err != nil {
		return LF, fmt.Errorf("failed to rewind manifest: %w", err)
	}

	first, err := bufio.NewReader(stream).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return LF, fmt.Errorf("failed to read first line: %w", err)
	}

	if _, seekErr := stream.Seek(0, io.SeekStart); seekErr != nil {
		return LF, fmt.Errorf("failed to rewind manifest: %w", seekErr)
	}

	if strings.HasSuffix(first, "\r\n") {
		return CRLF, nil
	}
	return LF, nil
}
