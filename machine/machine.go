// Package machine implements the generic finite-state-automaton algebra
// shared by the matcher and lexer packages: state/transition ownership,
// copy, reverse, and subset construction (NFA to DFA).
package machine

import (
	"iter"

	"github.com/coregx/lexfsm/state"
	"github.com/coregx/lexfsm/transition"
)

// Machine owns a set of states, a distinguished start state, and the set
// of currently-accepting states among them. It is the common base that
// Matcher and Lexer build on.
type Machine struct {
	start     *state.State
	states    state.Set
	accepting state.Set

	finalCache *state.State
}

// New constructs an empty Machine: a single non-accepting, uncoded start
// state.
func New() *Machine {
	start := state.New(false)
	return &Machine{
		start:     start,
		states:    state.Set{start: {}},
		accepting: state.Set{},
	}
}

// newWithStart constructs a Machine whose start state has the given
// accepting/code configuration, used by Lexer to get an accepting,
// ""-coded start state.
func newWithStart(accepting bool, code string, hasCode bool) *Machine {
	var start *state.State
	if hasCode {
		start = state.NewWithCode(accepting, code)
	} else {
		start = state.New(accepting)
	}
	m := &Machine{
		start:     start,
		states:    state.Set{start: {}},
		accepting: state.Set{},
	}
	if accepting {
		m.accepting[start] = struct{}{}
	}
	return m
}

// NewWithStart exposes newWithStart for packages (lexer) that need a
// non-default initial start state.
func NewWithStart(accepting bool, code string, hasCode bool) *Machine {
	return newWithStart(accepting, code, hasCode)
}

// Start returns the machine's start state.
func (m *Machine) Start() *state.State { return m.start }

// setStart overrides the machine's recorded start state, used by Reverse
// when it displaces the start.
func (m *Machine) setStart(s *state.State) { m.start = s }

// Len reports the number of states in the machine.
func (m *Machine) Len() int { return len(m.states) }

// States returns the machine's full state set. Callers must not mutate
// it directly; use NewState and the transition-attaching methods on
// state.State instead.
func (m *Machine) States() state.Set { return m.states }

// Accepting returns the machine's current accepting-state set. Callers
// must not mutate it directly.
func (m *Machine) Accepting() state.Set { return m.accepting }

// NewState constructs a state owned by m.
func (m *Machine) NewState(accepting bool) *state.State {
	s := state.New(accepting)
	m.states[s] = struct{}{}
	if accepting {
		m.accepting[s] = struct{}{}
		m.finalCache = nil
	}
	return s
}

// NewStateWithCode constructs a start-code-tagged state owned by m.
func (m *Machine) NewStateWithCode(accepting bool, code string) *state.State {
	s := state.NewWithCode(accepting, code)
	m.states[s] = struct{}{}
	if accepting {
		m.accepting[s] = struct{}{}
		m.finalCache = nil
	}
	return s
}

// newStateLike constructs a state owned by m with the same
// accepting/code configuration as src, without copying its transitions.
func (m *Machine) newStateLike(src *state.State) *state.State {
	if src.HasCode {
		return m.NewStateWithCode(src.Accepting, src.Code)
	}
	return m.NewState(src.Accepting)
}

// AddStart displaces the current start state with a fresh one carrying
// the same accepting/code configuration, linked to the old start by an
// epsilon transition. The old start loses its accepting and code status.
func (m *Machine) AddStart() *state.State {
	old := m.start
	neu := m.newStateLike(old)
	neu.Epsilon(old)

	old.Accepting = false
	old.Code = ""
	old.HasCode = false
	delete(m.accepting, old)
	m.finalCache = nil

	m.start = neu
	return neu
}

// UnifyAccepting introduces a fresh accepting state with epsilon
// transitions in from every current accepting state, clears their
// accepting bit, and caches the new state as Final.
func (m *Machine) UnifyAccepting() *state.State {
	neu := m.NewState(false)
	for s := range m.accepting {
		s.Epsilon(neu)
		s.Accepting = false
	}
	neu.Accepting = true
	m.accepting = state.Set{neu: {}}
	m.finalCache = neu
	return neu
}

// Final returns the machine's unique accepting state, unifying multiple
// accepting states into one (and caching the result) if necessary. It
// returns nil if the machine has no accepting state at all.
func (m *Machine) Final() *state.State {
	if m.finalCache != nil {
		return m.finalCache
	}
	switch len(m.accepting) {
	case 0:
		return nil
	case 1:
		for s := range m.accepting {
			m.finalCache = s
		}
	default:
		m.finalCache = m.UnifyAccepting()
	}
	return m.finalCache
}

// starts returns the machine's ordered list of start states. Machine has
// exactly one; Lexer overrides this notion with its start-code map.
func (m *Machine) starts() []*state.State {
	return []*state.State{m.start}
}

// IterStates iterates every state of the machine: start states first,
// then interior states, then any remaining accepting states last.
func (m *Machine) IterStates() iter.Seq[*state.State] {
	return IterStatesOrdered(m.states, m.accepting, m.starts())
}

// IterStatesOrdered implements the start-first / interior / accepting-
// last ordering contract given an explicit start-state list, so that
// Lexer (which has more than one start state) can reuse it.
func IterStatesOrdered(all, accepting state.Set, starts []*state.State) iter.Seq[*state.State] {
	return func(yield func(*state.State) bool) {
		startSet := make(map[*state.State]struct{}, len(starts))
		for _, s := range starts {
			startSet[s] = struct{}{}
			if !yield(s) {
				return
			}
		}
		for s := range all {
			if _, ok := startSet[s]; ok {
				continue
			}
			if _, ok := accepting[s]; ok {
				continue
			}
			if !yield(s) {
				return
			}
		}
		for s := range accepting {
			if _, ok := startSet[s]; ok {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Absorb merges other's states into m's state set. It does not touch
// either machine's accepting set; callers (concat, alternate) decide how
// accepting status propagates. other's states become co-owned by m;
// other should be discarded afterwards.
func (m *Machine) Absorb(other *Machine) {
	for s := range other.states {
		m.states[s] = struct{}{}
	}
}

// SetAccepting replaces m's accepting-state set wholesale, invalidating
// the cached Final.
func (m *Machine) SetAccepting(accepting state.Set) {
	m.accepting = accepting
	m.finalCache = nil
}

// Copy constructs an independent duplicate of m: a fresh state (mirroring
// accepting/code configuration) for m's start and for every state that is
// an endpoint of a transition, and a clone of every transition between
// mapped endpoints. States with no transitions, other than the start, are
// not copied.
func (m *Machine) Copy() *Machine {
	dest := &Machine{states: state.Set{}, accepting: state.Set{}}
	dest.start = dest.newStateLike(m.start)

	stateMap := map[*state.State]*state.State{m.start: dest.start}
	mapped := func(src *state.State) *state.State {
		if d, ok := stateMap[src]; ok {
			return d
		}
		d := dest.newStateLike(src)
		stateMap[src] = d
		return d
	}

	for src := range m.states {
		for tr := range src.IterOut() {
			// src is only mapped once it is known to be a transition
			// endpoint: a state with neither outgoing nor incoming
			// transitions (never reached via mapped(t.StateIn()) either)
			// must not appear in the copy at all.
			d := mapped(src)
			switch t := tr.(type) {
			case *transition.Epsilon[*state.State]:
				d.Epsilon(mapped(t.StateIn()))
			case *transition.MatchChar[*state.State]:
				d.MatchChar(mapped(t.StateIn()), t.CSet.Copy())
			case *transition.Action[*state.State]:
				d.Action(mapped(t.StateIn()), t.ActionText, t.Precedence, t.Name)
			}
		}
	}

	return dest
}
