package store

import (
	"fmt"

	"github.com/JunCEEE/SimEx-Lite/pattern"
)

// Memory is an in-memory PatternStore. It is used for synthetic datasets and
// tests; the stored patterns are copied on the way in and on the way out, so
// callers never alias internal buffers.
type Memory struct {
	patterns []*pattern.Pattern
}

var _ PatternStore = (*Memory)(nil)

// NewMemory creates a memory store holding deep copies of the given patterns.
func NewMemory(patterns []*pattern.Pattern) *Memory {
	copies := make([]*pattern.Pattern, len(patterns))
	for i, p := range patterns {
		copies[i] = p.Clone()
	}
	return &Memory{patterns: copies}
}

// Count returns the number of stored patterns.
func (m *Memory) Count() (int, error) {
	return len(m.patterns), nil
}

// Shape returns the shape of the first stored pattern.
func (m *Memory) Shape() (int, int, error) {
	if len(m.patterns) == 0 {
		return 0, 0, fmt.Errorf("%w: store holds no patterns", ErrMissingMetadata)
	}
	first := m.patterns[0]
	return first.Height, first.Width, nil
}

// Pattern returns a fresh copy of the pattern at index i.
func (m *Memory) Pattern(i int) (*pattern.Pattern, error) {
	if i < 0 || i >= len(m.patterns) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNotFound, i, len(m.patterns))
	}
	return m.patterns[i].Clone(), nil
}

// Close is a no-op for memory stores.
func (m *Memory) Close() error {
	return nil
}
