package simex

import (
	"strconv"
	"strings"
)

type specKind int

const (
	specAll specKind = iota
	specSingle
	specRange
)

// IndexSpec is the canonical tagged form of a user-supplied index
// specification. All downstream retrieval logic consumes this variant, never
// the raw heterogeneous input.
type IndexSpec struct {
	kind  specKind
	start int
	end   int
}

// All selects every stored pattern.
func All() IndexSpec {
	return IndexSpec{kind: specAll}
}

// Single selects exactly one pattern by its 0-based physical index.
func Single(i int) IndexSpec {
	return IndexSpec{kind: specSingle, start: i}
}

// Range selects the half-open index range [start, end).
func Range(start, end int) IndexSpec {
	return IndexSpec{kind: specRange, start: start, end: end}
}

func (s IndexSpec) String() string {
	switch s.kind {
	case specSingle:
		return strconv.Itoa(s.start)
	case specRange:
		return strconv.Itoa(s.start) + ":" + strconv.Itoa(s.end)
	default:
		return "all"
	}
}

// ParseIndexSpec converts a heterogeneous index specification into its
// canonical tagged form. Accepted inputs:
//
//   - nil                      → all patterns
//   - int (any signed kind)    → that single index
//   - "7"                      → that single index
//   - [2]int, []int of len 2   → the half-open range [start, end)
//   - "start:end"              → the half-open range [start, end)
//   - IndexSpec                → returned unchanged
//
// Anything else fails with ErrInvalidSpec. Bounds are not checked here; see
// IndexSpec.Resolve.
func ParseIndexSpec(spec any) (IndexSpec, error) {
	switch v := spec.(type) {
	case nil:
		return All(), nil
	case IndexSpec:
		return v, nil
	case int:
		return Single(v), nil
	case int8:
		return Single(int(v)), nil
	case int16:
		return Single(int(v)), nil
	case int32:
		return Single(int(v)), nil
	case int64:
		return Single(int(v)), nil
	case [2]int:
		return Range(v[0], v[1]), nil
	case []int:
		if len(v) != 2 {
			return IndexSpec{}, &InvalidSpecError{Spec: spec, Reason: "index pair must have exactly two elements"}
		}
		return Range(v[0], v[1]), nil
	case string:
		return parseStringSpec(v)
	default:
		return IndexSpec{}, &InvalidSpecError{Spec: spec, Reason: "unsupported specification type"}
	}
}

func parseStringSpec(s string) (IndexSpec, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return IndexSpec{}, &InvalidSpecError{Spec: s, Reason: "empty string"}
	}

	if before, after, found := strings.Cut(trimmed, ":"); found {
		start, err := strconv.Atoi(strings.TrimSpace(before))
		if err != nil {
			return IndexSpec{}, &InvalidSpecError{Spec: s, Reason: "range start is not an integer"}
		}
		end, err := strconv.Atoi(strings.TrimSpace(after))
		if err != nil {
			return IndexSpec{}, &InvalidSpecError{Spec: s, Reason: "range end is not an integer"}
		}
		return Range(start, end), nil
	}

	i, err := strconv.Atoi(trimmed)
	if err != nil {
		return IndexSpec{}, &InvalidSpecError{Spec: s, Reason: "not an integer"}
	}
	return Single(i), nil
}

// Resolve bounds-checks the specification against the dataset's pattern
// total and produces the canonical selection. Violations fail with
// ErrOutOfRange; nothing is clamped or silently emptied.
func (s IndexSpec) Resolve(total int) (*Selection, error) {
	switch s.kind {
	case specSingle:
		if s.start < 0 || s.start >= total {
			return nil, &OutOfRangeError{Start: s.start, End: s.start + 1, Total: total}
		}
		return newRangeSelection(s.start, s.start+1), nil
	case specRange:
		if s.start < 0 || s.end > total || s.start >= s.end {
			return nil, &OutOfRangeError{Start: s.start, End: s.end, Total: total}
		}
		return newRangeSelection(s.start, s.end), nil
	default:
		return newRangeSelection(0, total), nil
	}
}
