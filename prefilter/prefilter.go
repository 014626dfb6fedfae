// Package prefilter builds a cheap multi-literal pre-check over a
// Lexer's pure-literal actions (the ones built from matcher.MatchStr with
// no subsequent Alternate/Repeat), so that an external simulator can rule
// out large stretches of input before running the full automaton.
//
// Running the lexer's own automaton against a haystack is the simulator's
// job; this package only builds the Aho-Corasick structure over the
// detected literals and exposes lookups against it (Find, IsMatch).
package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/lexfsm/charset"
	"github.com/coregx/lexfsm/lexer"
	"github.com/coregx/lexfsm/state"
	"github.com/coregx/lexfsm/transition"
)

// Prefilter wraps a compiled Aho-Corasick automaton over the literal
// actions detected in a Lexer.
type Prefilter struct {
	auto     *ahocorasick.Automaton
	literals [][]byte
}

// Match mirrors ahocorasick.Match's Start/End fields: the byte range in
// the haystack covered by whichever literal matched.
type Match struct {
	Start, End int
}

// config holds Build's functional options.
type config struct {
	minLiterals int
}

// Option configures Build.
type Option func(*config)

// WithMinLiterals sets the minimum number of detected literal actions
// required before Build bothers constructing an automaton at all. Below
// the threshold, a handful of literals are cheap enough to check directly
// that an Aho-Corasick automaton's setup cost isn't worth paying. The
// default is 2.
func WithMinLiterals(n int) Option {
	return func(c *config) { c.minLiterals = n }
}

// Build detects every pure-literal action reachable from l's start
// states — a linear chain of single-codepoint MatchChar transitions
// ending directly in an Action transition, with no intervening branching
// — and compiles them into an Aho-Corasick automaton.
//
// It returns (nil, false) if fewer than the configured minimum number of
// literals were found, or if none of the detected literals survive ASCII
// narrowing (a literal containing a non-ASCII code point is skipped,
// since the automaton matches raw bytes).
func Build(l *lexer.Lexer, opts ...Option) (*Prefilter, bool) {
	cfg := config{minLiterals: 2}
	for _, opt := range opts {
		opt(&cfg)
	}

	var literals [][]byte
	for s := range l.Machine.States() {
		if !s.HasCode {
			continue
		}
		for tr := range s.IterOut() {
			if tr.Priority() != 0 {
				continue
			}
			if lit, ok := literalChain(tr.StateIn()); ok && len(lit) > 0 {
				literals = append(literals, lit)
			}
		}
	}

	if len(literals) < cfg.minLiterals {
		return nil, false
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}

	return &Prefilter{auto: auto, literals: literals}, true
}

// literalChain walks forward from start, collecting one byte per
// singleton-CSet MatchChar transition, until it reaches a state whose
// only outgoing transition is an Action (the literal's end) or a shape
// that isn't a pure literal (in which case ok is false).
func literalChain(start *state.State) (lit []byte, ok bool) {
	cur := start
	for {
		var matchChar, action, epsilon int
		var nextMatch *state.State
		for tr := range cur.IterOut() {
			switch tr.Priority() {
			case 0:
				epsilon++
			case 1:
				matchChar++
				nextMatch = tr.StateIn()
			case 2:
				action++
			}
		}

		switch {
		case matchChar == 1 && action == 0 && epsilon == 0:
			cs := matchCSet(cur)
			if cs == nil || cs.Len() != 1 {
				return nil, false
			}
			c, _ := firstCodePoint(cs)
			if c < 0 || c > 0x7f {
				return nil, false
			}
			lit = append(lit, byte(c))
			cur = nextMatch
		case matchChar == 0 && action == 1 && epsilon == 0:
			return lit, true
		default:
			return nil, false
		}
	}
}

// matchCSet returns the character set of cur's sole outgoing MatchChar
// transition, or nil if it has none.
func matchCSet(cur *state.State) *charset.CSet {
	for tr := range cur.IterOut(transition.PriorityMatchChar) {
		if mc, ok := tr.(*transition.MatchChar[*state.State]); ok {
			return mc.CSet
		}
	}
	return nil
}

// firstCodePoint returns the sole code point of a length-1, single-range
// CSet.
func firstCodePoint(cs *charset.CSet) (charset.CodePoint, bool) {
	rs := cs.Ranges()
	if len(rs) != 1 {
		return 0, false
	}
	return rs[0].Start, true
}

// Literals returns the byte patterns detected by Build, in the order
// they were added to the automaton.
func (p *Prefilter) Literals() [][]byte {
	return p.literals
}

// Find returns the first detected literal's match at or after at in
// haystack, or nil if none occurs.
func (p *Prefilter) Find(haystack []byte, at int) *Match {
	m := p.auto.Find(haystack, at)
	if m == nil {
		return nil
	}
	return &Match{Start: m.Start, End: m.End}
}

// IsMatch reports whether any detected literal occurs anywhere in
// haystack.
func (p *Prefilter) IsMatch(haystack []byte) bool {
	return p.auto.IsMatch(haystack)
}
