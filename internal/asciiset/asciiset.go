// Package asciiset implements a precomputed membership table over the
// ASCII byte range [0, 127], used as a fast path by callers that would
// otherwise repeat a more expensive membership test (e.g. a range-list
// binary search) once per byte of input.
package asciiset

// Set wraps an arbitrary byte-membership predicate with a 128-entry
// lookup table. It takes no dependency on what the predicate tests —
// callers own that — so this package has no import of its own to keep
// one-way.
type Set struct {
	table []bool
	built bool
	test  func(byte) bool
}

// New constructs a Set backed by test, which must behave consistently
// across calls (its result for a given byte is cached once the table is
// built). On CPUs with wide SIMD, bulk-filling a small table is cheap
// enough to do up front; elsewhere the table builds lazily on first
// Contains call, so a Set queried only a handful of times never pays for
// building a table it barely uses.
func New(test func(byte) bool) *Set {
	s := &Set{test: test}
	if hasAVX2 {
		s.build()
	}
	return s
}

func (s *Set) build() {
	s.table = make([]bool, 128)
	for b := 0; b < 128; b++ {
		s.table[b] = s.test(byte(b))
	}
	s.built = true
}

// Contains reports whether b is a member of the wrapped set. b must be an
// ASCII byte (< 128); Set does not handle the non-ASCII range.
func (s *Set) Contains(b byte) bool {
	if !s.built {
		s.build()
	}
	return s.table[b]
}
