// Package transition implements the typed, priority-ordered transitions
// that link the states of an automaton: Epsilon, MatchChar, and Action.
//
// Transition is generic over the state-reference type S so that it has no
// import dependency on the state package; state instantiates
// Transition[*state.State] itself, which keeps the state<->transition
// back-reference a one-way dependency (state depends on transition, not
// the other way around) while still letting Epsilon/MatchChar/Action
// carry concrete *state.State endpoints.
package transition

import "github.com/coregx/lexfsm/charset"

// Kind identifies which of the three closed transition variants a value
// implements. There is no open extension point: Transition is a closed
// union by design. Dispatch elsewhere in this module uses type switches
// on the concrete variant types; Kind is available to callers that prefer
// to switch on a value.
type Kind int

const (
	KindEpsilon Kind = iota
	KindMatchChar
	KindAction
)

// Simulator is the runtime contract a transition's Match method drives.
// Implementing it is the responsibility of an external consumer (the
// eventual DFA-walking simulator); this module only calls it.
type Simulator interface {
	// Consume advances the input by one character.
	Consume()
	// GetLexeme returns the text accumulated since the last StartLexeme.
	GetLexeme() string
	// StartLexeme resets the lexeme window at the current input position.
	StartLexeme()
	// Action fires the named (or anonymous, if name is nil) action,
	// passing the text it matched.
	Action(name *string, actionText string, lexeme string)
}

// Transition is implemented by Epsilon, MatchChar, and Action. S is the
// concrete state-reference type linked by a transition's endpoints.
type Transition[S any] interface {
	Kind() Kind
	Priority() int
	StateOut() S
	StateIn() S
	SetStateOut(S)
	SetStateIn(S)
	// Reverse swaps the transition's endpoints in place. Reversing a
	// transition alone does not reverse the automaton; see the machine
	// package's Reverse.
	Reverse()
	// Match reports whether char (absent at end of input, signaled by
	// haveChar=false) is matched by this transition, driving sim as a
	// side effect appropriate to the variant.
	Match(char rune, haveChar bool, sim Simulator) bool
}

// Priorities, fixed per variant. Transitions out of a state are always
// considered in ascending priority order; Epsilon's priority of 0 is
// depended on directly by epsilon-closure computation.
const (
	PriorityEpsilon   = 0
	PriorityMatchChar = 1
	PriorityAction    = 2
)

// Epsilon is a transition taken without consuming input.
type Epsilon[S any] struct {
	out, in S
}

// NewEpsilon constructs an Epsilon transition between out and in.
func NewEpsilon[S any](out, in S) *Epsilon[S] { return &Epsilon[S]{out: out, in: in} }

func (e *Epsilon[S]) Kind() Kind        { return KindEpsilon }
func (e *Epsilon[S]) Priority() int     { return PriorityEpsilon }
func (e *Epsilon[S]) StateOut() S       { return e.out }
func (e *Epsilon[S]) StateIn() S        { return e.in }
func (e *Epsilon[S]) SetStateOut(s S)   { e.out = s }
func (e *Epsilon[S]) SetStateIn(s S)    { e.in = s }
func (e *Epsilon[S]) Reverse()          { e.out, e.in = e.in, e.out }

// Match always panics: a DFA has no epsilon transitions, so a simulator
// walking one should never reach an Epsilon.
func (e *Epsilon[S]) Match(char rune, haveChar bool, sim Simulator) bool {
	panic("transition: cannot simulate a nondeterministic finite automaton")
}

// MatchChar consumes one input character that lies within CSet.
type MatchChar[S any] struct {
	out, in S
	CSet    *charset.CSet
}

// NewMatchChar constructs a MatchChar transition matching cs.
func NewMatchChar[S any](out, in S, cs *charset.CSet) *MatchChar[S] {
	return &MatchChar[S]{out: out, in: in, CSet: cs}
}

func (m *MatchChar[S]) Kind() Kind      { return KindMatchChar }
func (m *MatchChar[S]) Priority() int   { return PriorityMatchChar }
func (m *MatchChar[S]) StateOut() S     { return m.out }
func (m *MatchChar[S]) StateIn() S      { return m.in }
func (m *MatchChar[S]) SetStateOut(s S) { m.out = s }
func (m *MatchChar[S]) SetStateIn(s S)  { m.in = s }
func (m *MatchChar[S]) Reverse()        { m.out, m.in = m.in, m.out }

// Match consumes char if it lies in CSet.
func (m *MatchChar[S]) Match(char rune, haveChar bool, sim Simulator) bool {
	if !haveChar {
		return false
	}
	if m.CSet.Contains(charset.CodePoint(char)) {
		sim.Consume()
		return true
	}
	return false
}

// Action fires an action without consuming input, disambiguated by
// Precedence when multiple actions compete for the same transition.
type Action[S any] struct {
	out, in    S
	ActionText string
	Precedence int
	Name       *string
}

// NewAction constructs an Action transition.
func NewAction[S any](out, in S, actionText string, precedence int, name *string) *Action[S] {
	return &Action[S]{out: out, in: in, ActionText: actionText, Precedence: precedence, Name: name}
}

func (a *Action[S]) Kind() Kind      { return KindAction }
func (a *Action[S]) Priority() int   { return PriorityAction }
func (a *Action[S]) StateOut() S     { return a.out }
func (a *Action[S]) StateIn() S      { return a.in }
func (a *Action[S]) SetStateOut(s S) { a.out = s }
func (a *Action[S]) SetStateIn(s S)  { a.in = s }
func (a *Action[S]) Reverse()        { a.out, a.in = a.in, a.out }

// Match always matches without consuming input: it extracts the current
// lexeme, resets the lexeme window, and fires the action.
func (a *Action[S]) Match(char rune, haveChar bool, sim Simulator) bool {
	lexeme := sim.GetLexeme()
	sim.StartLexeme()
	sim.Action(a.Name, a.ActionText, lexeme)
	return true
}
