package matcher

import "errors"

// ErrBadRepeat indicates a repeat specification that is not a
// non-negative integer, one of the symbolic forms ("*", "+", "?"), or a
// valid (min, max) pair with max >= min.
//
// n == 0 with an open upper bound is also rejected: an unbounded repeat
// needs at least one copy of the machine for its looping epsilon to
// attach to, and the source this module is grounded on is ambiguous
// about what to do in that case. This module fails rather than silently
// clamping to one copy.
var ErrBadRepeat = errors.New("invalid repeat specification")
