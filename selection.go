package simex

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Selection is a canonical, bounds-checked set of physical pattern indices:
// ascending, unique, each within [0, PatternTotal) of the dataset it was
// resolved against. It is the only selection form the retrieval paths accept.
type Selection struct {
	rb *roaring.Bitmap
}

func newRangeSelection(start, end int) *Selection {
	rb := roaring.New()
	if start < end {
		rb.AddRange(uint64(start), uint64(end))
	}
	return &Selection{rb: rb}
}

// Len returns the number of selected indices.
func (s *Selection) Len() int {
	return int(s.rb.GetCardinality())
}

// Indices returns the selected physical indices in ascending order.
func (s *Selection) Indices() []uint32 {
	return s.rb.ToArray()
}

// Iterator yields the selected indices in ascending order.
func (s *Selection) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
