// Package state implements automaton nodes: identity-compared States
// carrying priority-bucketed incoming and outgoing transition tables,
// with cached "all transitions here are epsilons" predicates.
package state

import (
	"iter"
	"sort"

	"github.com/coregx/lexfsm/charset"
	"github.com/coregx/lexfsm/transition"
)

// Transition is the concrete transition type linking States: transitions
// are instantiated over *State directly so that a state's outgoing and
// incoming tables can hold Epsilon, MatchChar, and Action transitions
// uniformly.
type Transition = transition.Transition[*State]

// State is an automaton node. The zero value is not usable; construct
// with New. States are compared by pointer identity, matching the
// source's use of object identity for state sets.
type State struct {
	Accepting bool

	// Code is the start-code tag of a Lexer start state. HasCode
	// distinguishes an explicit empty string ("" names the default
	// start) from "no code at all" on an ordinary interior state.
	Code    string
	HasCode bool

	// Name is a diagnostic label assigned by callers outside this
	// package; the core never reads it.
	Name string

	transOut map[int][]Transition
	transIn  map[int][]Transition

	epsIn  *bool
	epsOut *bool
}

// New constructs a State with no transitions.
func New(accepting bool) *State {
	return &State{
		Accepting: accepting,
		transOut:  map[int][]Transition{},
		transIn:   map[int][]Transition{},
	}
}

// NewWithCode constructs a State tagged with a Lexer start code.
func NewWithCode(accepting bool, code string) *State {
	s := New(accepting)
	s.Code = code
	s.HasCode = true
	return s
}

// Reverse swaps s's incoming and outgoing transition tables in place.
// Reversing a state alone does not reverse the automaton; see the
// machine package's Reverse, which also reverses every transition's
// endpoints.
func (s *State) Reverse() {
	s.transIn, s.transOut = s.transOut, s.transIn
	s.epsIn, s.epsOut = s.epsOut, s.epsIn
}

// attach adds newT from out to in, first merging it with any existing
// transitions of the same priority already bridging that exact pair.
// Attaching invalidates the epsilon-cache of both endpoints, since either
// table may have changed composition.
func attach[T transition.Transition[*State]](out, in *State, priority int, newT T, merge func(T, []T) []T) {
	var others []T
	keepOut := out.transOut[priority][:0:0]
	for _, t := range out.transOut[priority] {
		if tt, ok := t.(T); ok && tt.StateIn() == in {
			others = append(others, tt)
			continue
		}
		keepOut = append(keepOut, t)
	}
	merged := merge(newT, others)

	for _, m := range merged {
		keepOut = append(keepOut, m)
	}
	out.transOut[priority] = keepOut

	keepIn := in.transIn[priority][:0:0]
	for _, t := range in.transIn[priority] {
		if tt, ok := t.(T); ok && tt.StateOut() == out {
			continue
		}
		keepIn = append(keepIn, t)
	}
	for _, m := range merged {
		keepIn = append(keepIn, m)
	}
	in.transIn[priority] = keepIn

	in.epsIn = nil
	out.epsOut = nil
}

// Epsilon attaches an epsilon transition from s to next, merging with any
// epsilon transition already bridging the pair (there can be at most one
// afterwards).
func (s *State) Epsilon(next *State) {
	attach(s, next, transition.PriorityEpsilon, transition.NewEpsilon(s, next), transition.MergeEpsilon[*State])
}

// MatchChar attaches a character-matching transition from s to next over
// cs, merging with any existing MatchChar transition bridging the pair by
// unioning character sets.
func (s *State) MatchChar(next *State, cs *charset.CSet) {
	attach(s, next, transition.PriorityMatchChar, transition.NewMatchChar(s, next, cs), transition.MergeMatchChar[*State])
}

// Action attaches an action transition from s to next, merging with any
// existing action transition bridging the pair by keeping whichever has
// the smaller precedence.
func (s *State) Action(next *State, actionText string, precedence int, name *string) {
	attach(s, next, transition.PriorityAction, transition.NewAction(s, next, actionText, precedence, name), transition.MergeAction[*State])
}

func sortedPriorities(tab map[int][]Transition) []int {
	keys := make([]int, 0, len(tab))
	for k := range tab {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// IterOut iterates s's outgoing transitions in ascending priority order.
// With no arguments every priority is visited; with arguments, only the
// given priorities (still visited in ascending order). Order among
// transitions sharing a priority is unspecified.
func (s *State) IterOut(prios ...int) iter.Seq[Transition] {
	return iterTrans(s.transOut, prios)
}

// IterIn iterates s's incoming transitions; see IterOut for the ordering
// contract.
func (s *State) IterIn(prios ...int) iter.Seq[Transition] {
	return iterTrans(s.transIn, prios)
}

func iterTrans(tab map[int][]Transition, prios []int) iter.Seq[Transition] {
	return func(yield func(Transition) bool) {
		order := prios
		if len(order) == 0 {
			order = sortedPriorities(tab)
		}
		for _, p := range order {
			for _, t := range tab[p] {
				if !yield(t) {
					return
				}
			}
		}
	}
}

func allEps(tab map[int][]Transition) bool {
	for prio, set := range tab {
		if prio == transition.PriorityEpsilon {
			continue
		}
		if len(set) > 0 {
			return false
		}
	}
	return true
}

// EpsIn reports whether every incoming transition to s is an Epsilon.
func (s *State) EpsIn() bool {
	if s.epsIn == nil {
		v := allEps(s.transIn)
		s.epsIn = &v
	}
	return *s.epsIn
}

// EpsOut reports whether every outgoing transition from s is an Epsilon.
func (s *State) EpsOut() bool {
	if s.epsOut == nil {
		v := allEps(s.transOut)
		s.epsOut = &v
	}
	return *s.epsOut
}
