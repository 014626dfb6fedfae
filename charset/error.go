package charset

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by charset operations. Callers should compare
// against these with errors.Is; wrapper types below carry extra context but
// preserve the sentinel via Unwrap.
var (
	// ErrInvalidCodePoint indicates a code point outside
	// [MinCodePoint, MaxCodePoint].
	ErrInvalidCodePoint = errors.New("invalid code point")

	// ErrInvalidRange indicates a range whose start exceeds its end.
	ErrInvalidRange = errors.New("invalid range, start > end")

	// ErrBadBound indicates a lo/hi bound passed to Search is out of the
	// bounds of the range list being searched.
	ErrBadBound = errors.New("search bound out of range")

	// ErrEmpty indicates Pop was called on an empty set.
	ErrEmpty = errors.New("set is empty")

	// ErrMissing indicates Remove was called for an item not in the set.
	ErrMissing = errors.New("item not in set")
)

// RangeError reports a failure tied to a specific [Start, End] range, such
// as constructing a CSet from an inverted range.
type RangeError struct {
	Start CodePoint
	End   CodePoint
	Err   error
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d]: %v", e.Start, e.End, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *RangeError) Unwrap() error {
	return e.Err
}
