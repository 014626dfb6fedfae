// Package lexer builds a Lexer: a Machine whose start state is itself
// accepting and which can carry more than one named start state (a
// "start code" in the flex/lex sense), each reached by switching modes
// from an action.
package lexer

import (
	"iter"
	"sort"

	"github.com/coregx/lexfsm/machine"
	"github.com/coregx/lexfsm/matcher"
	"github.com/coregx/lexfsm/state"
)

// Lexer is a Machine specialized for lexer construction: its default
// ("") start state is accepting, and Action attaches a submachine whose
// match fires a named action and switches (or stays in) a start code.
type Lexer struct {
	*machine.Machine

	startCodes map[string]*state.State
}

// New constructs a Lexer with a single accepting default start state,
// named by the empty start code.
func New() *Lexer {
	m := machine.NewWithStart(true, "", true)
	return &Lexer{
		Machine:    m,
		startCodes: map[string]*state.State{"": m.Start()},
	}
}

// GetStart returns the start state for the given start code, creating an
// accepting, code-tagged state for it on first request.
func (l *Lexer) GetStart(code string) *state.State {
	if s, ok := l.startCodes[code]; ok {
		return s
	}
	s := l.Machine.NewStateWithCode(true, code)
	l.startCodes[code] = s
	return s
}

// starts returns every start-code state, ordered by start code name.
func (l *Lexer) starts() []*state.State {
	codes := make([]string, 0, len(l.startCodes))
	for c := range l.startCodes {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	out := make([]*state.State, len(codes))
	for i, c := range codes {
		out[i] = l.startCodes[c]
	}
	return out
}

// IterStates overrides Machine's single-start ordering with the
// start-code-sorted list of all of l's start states; Go has no virtual
// dispatch through embedding, so this must be called directly rather than
// through a *machine.Machine reference.
func (l *Lexer) IterStates() iter.Seq[*state.State] {
	return machine.IterStatesOrdered(l.Machine.States(), l.Machine.Accepting(), l.starts())
}

// Action absorbs sub's states and wires it in: an epsilon from code's
// start state to sub's start, and an Action transition from sub's final
// state to exitCode's start state (defaulting to code's own start state
// when exitCode is nil) carrying actionText, precedence, and the optional
// diagnostic name. sub's final state loses its accepting status — firing
// the action, not simply reaching the state, is what matters from here
// on. sub must not be reused afterwards.
func (l *Lexer) Action(sub *matcher.Matcher, actionText string, precedence int, code string, exitCode *string, name *string) *Lexer {
	l.Machine.Absorb(sub.Machine)

	start := l.GetStart(code)
	exit := start
	if exitCode != nil {
		exit = l.GetStart(*exitCode)
	}

	start.Epsilon(sub.Machine.Start())

	final := sub.Machine.Final()
	final.Action(exit, actionText, precedence, name)
	final.Accepting = false

	return l
}
