package charset

import "iter"

// Runes returns an iterator over every code point in s, in ascending
// order. Iterating a very large set (e.g. "everything but one
// character") this way is impractical; callers in that position should
// work with Ranges() instead.
func (s *CSet) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s.ranges {
			for c := r.Start; c <= r.End; c++ {
				if !yield(rune(c)) {
					return
				}
				if c == MaxCodePoint {
					break
				}
			}
		}
	}
}
