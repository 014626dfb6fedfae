package charset

import "github.com/coregx/lexfsm/internal/prioq"

// Piece is one member of a disjoint decomposition: a code-point range that
// belongs wholly to every set listed in Owners, and to no other set passed
// to Disjoint.
type Piece struct {
	Set    *CSet
	Owners []*CSet
}

// Disjoint computes a pairwise-disjoint refinement of sets: a collection
// of non-overlapping pieces, each a single contiguous range, such that
// every input set is exactly the union of the pieces it owns. Segments
// that are not contiguous form separate pieces even when their owners
// are the same.
//
// This is the operation that makes deterministic automaton construction
// tractable. Subset construction needs to case-split an input alphabet on
// every transition's character set at once; doing that one CSet at a time
// would let the same code point route through a different transition
// depending on which set happened to be examined first. Disjoint produces
// a single consistent partition up front, so every state's transitions
// can be evaluated against the same alphabet of pieces.
//
// Boundary points (every range start and one-past-every-range-end, across
// all input sets) are collected and drained off a priority queue in
// ascending order; between consecutive boundaries no input set's
// membership can change, so each such segment is evaluated once against
// every input set and merged with its neighbor when the owner set is
// identical.
func Disjoint(sets []*CSet) []Piece {
	if len(sets) == 0 {
		return nil
	}

	q := prioq.New(func(p CodePoint) CodePoint { return p })
	seen := map[CodePoint]bool{}
	for _, s := range sets {
		for _, r := range s.ranges {
			if !seen[r.Start] {
				seen[r.Start] = true
				q.Push(r.Start)
			}
			if r.End < MaxCodePoint {
				if !seen[r.End+1] {
					seen[r.End+1] = true
					q.Push(r.End + 1)
				}
			}
		}
	}

	points := make([]CodePoint, 0, q.Len())
	for q.Len() > 0 {
		points = append(points, q.Pop())
	}
	if len(points) == 0 {
		return nil
	}

	var pieces []Piece
	var curRanges []Range
	var curOwners []*CSet

	flush := func() {
		if len(curRanges) == 0 {
			return
		}
		pieces = append(pieces, Piece{Set: fromRanges(curRanges), Owners: curOwners})
		curRanges = nil
		curOwners = nil
	}

	sameOwners := func(a, b []*CSet) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}

	for i, p := range points {
		end := MaxCodePoint
		if i+1 < len(points) {
			end = points[i+1] - 1
		}

		var owners []*CSet
		for _, s := range sets {
			if s.Contains(p) {
				owners = append(owners, s)
			}
		}
		if len(owners) == 0 {
			flush()
			continue
		}

		if len(curRanges) > 0 && sameOwners(curOwners, owners) && curRanges[len(curRanges)-1].End+1 == p {
			curRanges[len(curRanges)-1].End = end
			continue
		}
		flush()
		curRanges = []Range{{Start: p, End: end}}
		curOwners = owners
	}
	flush()

	return pieces
}
