package store

import (
	"errors"

	"github.com/JunCEEE/SimEx-Lite/pattern"
)

// ErrNotFound is returned when a requested pattern record does not exist in
// the underlying container.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`.
var ErrNotFound = errors.New("pattern record not found")

// ErrMissingMetadata is returned when the container lacks the entries needed
// to answer a metadata query (corrupt or incompatible file).
var ErrMissingMetadata = errors.New("dataset metadata missing")

// PatternStore is read-only, random-access storage of an ordered collection
// of diffraction patterns.
//
// Stores are not safe for concurrent use through one handle; callers must
// serialize access themselves.
type PatternStore interface {
	// Count returns the number of stored patterns without reading pixel data.
	Count() (int, error)

	// Shape returns the common (height, width) of every pattern, inspected
	// from a single representative record. Shape uniformity across the whole
	// collection is assumed, not verified.
	Shape() (height, width int, err error)

	// Pattern fetches the pixel array at 0-based ordinal index i. The
	// returned pattern is freshly allocated and owned by the caller.
	Pattern(i int) (*pattern.Pattern, error)

	// Close releases the underlying container.
	Close() error
}
