package state

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coregx/lexfsm/transition"
)

// Set is a set of states, keyed by pointer identity.
type Set map[*State]struct{}

// EpsClosure computes the set of states reachable from seeds by zero or
// more Epsilon transitions (seeds themselves included). The result is the
// frozen identity used to key DFA states during subset construction.
func EpsClosure(seeds ...*State) Set {
	result := make(Set, len(seeds))
	var queue []*State
	for _, s := range seeds {
		if _, ok := result[s]; !ok {
			result[s] = struct{}{}
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for t := range cur.IterOut(transition.PriorityEpsilon) {
			next := t.StateIn()
			if _, ok := result[next]; !ok {
				result[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
	return result
}

// Key returns a value that uniquely and stably identifies a Set's
// membership, suitable for use as a map key (Set itself, being a map, is
// not comparable and cannot be used as one directly).
func (s Set) Key() string {
	ptrs := make([]string, 0, len(s))
	for st := range s {
		ptrs = append(ptrs, fmt.Sprintf("%p", st))
	}
	sort.Strings(ptrs)
	return strings.Join(ptrs, ",")
}

// ContainsAccepting reports whether any state in the set is accepting.
func (s Set) ContainsAccepting() bool {
	for st := range s {
		if st.Accepting {
			return true
		}
	}
	return false
}

// Slice returns the set's members in an unspecified but stable-for-this-
// call order, for callers that need to range over them more than once.
func (s Set) Slice() []*State {
	out := make([]*State, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	return out
}
