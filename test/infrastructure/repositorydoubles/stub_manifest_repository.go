//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/rios0rios0/bzloverride/internal/domain/repositories"
)

// StubManifestRepository serves a manifest held in memory. Content written
// through a handle is stored back when the handle is closed, so a later Open
// sees it.
type StubManifestRepository struct {
	Content  string
	OpenErr  error
	CloseErr error // returned by every handle's Close

	// spy: every Open call and the handles it returned
	OpenCalls []OpenCall
	Handles   []*InMemoryManifestHandle
}

// OpenCall records a single invocation of Open.
type OpenCall struct {
	Dir  string
	Name string
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (s *StubManifestRepository) Open(dir, name string) (repositories.ManifestHandle, error) {
	s.OpenCalls = append(s.OpenCalls, OpenCall{Dir: dir, Name: name})
	if s.OpenErr != nil {
		return nil, s.OpenErr
	}

	handle := &InMemoryManifestHandle{
		data:     []byte(s.Content),
		path:     filepath.Join(dir, name),
		CloseErr: s.CloseErr,
		onClose: func(data []byte) {
			s.Content = string(data)
		},
	}
	s.Handles = append(s.Handles, handle)
	return handle, nil
}

// InMemoryManifestHandle is a repositories.ManifestHandle over a byte slice.
type InMemoryManifestHandle struct {
	data    []byte
	offset  int64
	path    string
	onClose func([]byte)

	Closed   bool
	CloseErr error
}

var _ repositories.ManifestHandle = (*InMemoryManifestHandle)(nil)

func (h *InMemoryManifestHandle) Path() string { return h.path }

func (h *InMemoryManifestHandle) Read(p []byte) (int, error) {
	if h.offset >= int64(len(h.data)) {
		return 0, io.EOF
	}
	n := copy(p, h.data[h.offset:])
	h.offset += int64(n)
	return n, nil
}

func (h *InMemoryManifestHandle) Write(p []byte) (int, error) {
	end := h.offset + int64(len(p))
	if end > int64(len(h.data)) {
		grown := make([]byte, end)
		copy(grown, h.data)
		h.data = grown
	}
	copy(h.data[h.offset:], p)
	h.offset = end
	return len(p), nil
}

func (h *InMemoryManifestHandle) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = h.offset + offset
	case io.SeekEnd:
		next = int64(len(h.data)) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if next < 0 {
		return 0, errors.New("negative position")
	}
	h.offset = next
	return next, nil
}

func (h *InMemoryManifestHandle) Close() error {
	h.Closed = true
	if h.onClose != nil {
		h.onClose(h.data)
	}
	return h.CloseErr
}
