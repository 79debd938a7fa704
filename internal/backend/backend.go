// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package backend wraps interchangeable third-party PDF text-extraction
// libraries behind a common capability interface and resolves a backend
// preference against the set compiled into the binary.
// See docs/ARCHITECTURE § Backends.
package backend

import (
	"errors"
	"fmt"

	"github.com/pdiddy/pdfextract/pkg/types"
)

var (
	// ErrNoBackend indicates that no extraction backend is available
	// in this build.
	ErrNoBackend = errors.New("no PDF extraction backend available")

	// ErrUnknownBackend indicates a backend identifier outside the
	// supported set reached resolution. The CLI validates identifiers
	// first, so hitting this is a programming error.
	ErrUnknownBackend = errors.New("unknown PDF extraction backend")
)

// Document is an open PDF exposing per-page plain text. Exactly one
// Document is open at a time; callers must Close it before opening
// another.
type Document interface {
	// NumPages returns the document's total page count.
	NumPages() int

	// PageText returns the plain text of the 0-indexed page i.
	// Textless pages yield "" rather than an error.
	PageText(i int) (string, error)

	// Close releases the underlying document handle.
	Close() error
}

// Backend is one interchangeable extraction capability.
type Backend interface {
	// ID returns the backend's identifier.
	ID() types.BackendID

	// Open opens the PDF at path for reading.
	Open(path string) (Document, error)
}

// autoOrder is the preference order for BackendAuto resolution: the
// MuPDF engine first, the pure-Go reader as fallback.
var autoOrder = []types.BackendID{types.BackendFitz, types.BackendLedongthuc}

// Registry holds the backends compiled into the binary.
type Registry struct {
	backends map[types.BackendID]Backend
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[types.BackendID]Backend)}
}

// Register adds b to the registry, replacing any backend with the same ID.
func (r *Registry) Register(b Backend) {
	r.backends[b.ID()] = b
}

// Resolve maps a backend preference to a concrete backend. BackendAuto
// picks the first available backend in preference order. A supported
// identifier whose backend is not compiled in resolves to ErrNoBackend;
// an unsupported identifier resolves to ErrUnknownBackend.
func (r *Registry) Resolve(pref types.BackendID) (Backend, error) {
	if pref == types.BackendAuto {
		for _, id := range autoOrder {
			if b, ok := r.backends[id]; ok {
				return b, nil
			}
		}
		return nil, ErrNoBackend
	}

	if b, ok := r.backends[pref]; ok {
		return b, nil
	}
	for _, id := range autoOrder {
		if id == pref {
			return nil, fmt.Errorf("backend %s not compiled into this build: %w", pref, ErrNoBackend)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, pref)
}

// defaultRegistry collects the backends registered by build-tagged init
// functions in this package.
var defaultRegistry = NewRegistry()

// Register adds a backend to the default registry.
func Register(b Backend) {
	defaultRegistry.Register(b)
}

// Resolve resolves pref against the default registry.
func Resolve(pref types.BackendID) (Backend, error) {
	return defaultRegistry.Resolve(pref)
}
