package simex

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index specification resolves to one
	// or more physical indices outside [0, PatternTotal), or to an empty or
	// inverted range. Out-of-range indices are never clamped.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidSpec is returned when an index specification is not one of
	// the recognized forms.
	ErrInvalidSpec = errors.New("invalid index specification")

	// ErrDatasetAccess is returned when the underlying container is missing
	// expected metadata or pixel entries, or an in-bounds record cannot be
	// fetched.
	ErrDatasetAccess = errors.New("dataset access failed")
)

// OutOfRangeError reports the offending half-open selection and the pattern
// total it was checked against. For single-index specifications End is
// Start+1.
//
// It satisfies `errors.Is(err, ErrOutOfRange)`.
type OutOfRangeError struct {
	Start int
	End   int
	Total int
}

func (e *OutOfRangeError) Error() string {
	if e.End == e.Start+1 {
		return fmt.Sprintf("index %d out of range for %d patterns", e.Start, e.Total)
	}
	return fmt.Sprintf("range [%d, %d) out of range for %d patterns", e.Start, e.End, e.Total)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// InvalidSpecError reports an index specification that could not be parsed.
//
// It satisfies `errors.Is(err, ErrInvalidSpec)`.
type InvalidSpecError struct {
	Spec   any
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid index specification %v (%T): %s", e.Spec, e.Spec, e.Reason)
}

func (e *InvalidSpecError) Unwrap() error { return ErrInvalidSpec }

// AccessError reports a failed interaction with the underlying container.
//
// It satisfies `errors.Is(err, ErrDatasetAccess)`; the original store error
// remains reachable through errors.Is/As.
type AccessError struct {
	Op  string
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AccessError) Unwrap() []error { return []error{ErrDatasetAccess, e.Err} }

func accessErr(op string, err error) error {
	return &AccessError{Op: op, Err: err}
}
