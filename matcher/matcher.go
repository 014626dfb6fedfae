// Package matcher implements Thompson's construction: the small-machine
// algebra (match a character set, match a literal string, concatenate,
// alternate, repeat) that builds up the NFA a Lexer action attaches to.
package matcher

import (
	"github.com/coregx/lexfsm/charset"
	"github.com/coregx/lexfsm/machine"
)

// Matcher is a Machine under construction via the small-machine algebra.
// Every primitive below leaves the result with exactly the invariant
// Thompson's construction relies on: one start state, and an accepting
// set reachable only from inside the machine.
type Matcher struct {
	*machine.Machine
}

// wrap adapts a freshly built Machine into a Matcher.
func wrap(m *machine.Machine) *Matcher {
	return &Matcher{Machine: m}
}

// MatchCSet builds the two-state machine s0 --MatchChar(cs)--> s1, with s1
// accepting. cs is not copied; callers that still need it afterwards
// should pass a Copy.
func MatchCSet(cs *charset.CSet) *Matcher {
	m := machine.New()
	final := m.NewState(true)
	m.Start().MatchChar(final, cs)
	return wrap(m)
}

// MatchStr builds a chain of single-character MatchChar transitions, one
// state per character of s, with only the last state accepting. Each
// transition targets the state created for the next character, not the
// machine's eventual final state directly — a chain of three characters
// has four states, not two.
//
// An empty s yields a machine whose start state is not accepting and has
// no outgoing transitions, matching no input at all.
func MatchStr(s string) *Matcher {
	m := machine.New()
	runes := []rune(s)
	cur := m.Start()
	for i, r := range runes {
		isLast := i == len(runes)-1
		next := m.NewState(isLast)
		cs, err := charset.NewChar(charset.CodePoint(r))
		if err != nil {
			// r comes from ranging over a string, so it is always a
			// valid code point; NewChar cannot fail here.
			panic(err)
		}
		cur.MatchChar(next, cs)
		cur = next
	}
	return wrap(m)
}

// Concat is the primitive, destructive form of concatenation: it absorbs
// other's states into m, links m's current final to other's start by an
// epsilon, clears that old final's accepting bit, and adopts other's
// accepting set as its own. other must not be used afterwards.
func (m *Matcher) Concat(other *Matcher) *Matcher {
	m.Machine.Absorb(other.Machine)

	final := m.Machine.Final()
	if final != nil {
		final.Epsilon(other.Machine.Start())
		final.Accepting = false
	}
	m.Machine.SetAccepting(other.Machine.Accepting())

	return m
}

// ConcatCopy concatenates a copy of other onto m in place, leaving other
// itself usable afterwards.
func (m *Matcher) ConcatCopy(other *Matcher) *Matcher {
	return m.Concat(other.Copy())
}

// Concat is the value-returning form: it copies both operands, so neither
// a nor b is consumed.
func Concat(a, b *Matcher) *Matcher {
	return a.Copy().Concat(b.Copy())
}

// Alternate is the primitive, destructive form of alternation: it ensures
// m's start has only epsilon outputs and m's final has only epsilon
// inputs (introducing shim states via AddStart/UnifyAccepting where
// necessary), absorbs other's states, links m's start to other's start
// and other's final back to m's final, and clears other's old final's
// accepting bit. other must not be used afterwards.
func (m *Matcher) Alternate(other *Matcher) *Matcher {
	start := m.Machine.Start()
	if !start.EpsOut() {
		start = m.Machine.AddStart()
	}
	final := m.Machine.Final()
	if final == nil || !final.EpsIn() {
		final = m.Machine.UnifyAccepting()
	}

	m.Machine.Absorb(other.Machine)

	otherFinal := other.Machine.Final()
	start.Epsilon(other.Machine.Start())
	if otherFinal != nil {
		otherFinal.Epsilon(final)
		otherFinal.Accepting = false
	}

	return m
}

// AlternateCopy alternates m with a copy of other in place, leaving other
// itself usable afterwards.
func (m *Matcher) AlternateCopy(other *Matcher) *Matcher {
	return m.Alternate(other.Copy())
}

// Alternate is the value-returning form: it copies both operands, so
// neither a nor b is consumed.
func Alternate(a, b *Matcher) *Matcher {
	return a.Copy().Alternate(b.Copy())
}

// RepeatSpec describes how many times a machine should repeat: at least
// Min copies, and at most Max copies if Max is non-nil, otherwise
// unbounded.
type RepeatSpec struct {
	Min int
	Max *int
}

func ptr(n int) *int { return &n }

// Exactly requires exactly n copies.
func Exactly(n int) RepeatSpec { return RepeatSpec{Min: n, Max: ptr(n)} }

// Between requires between min and max copies, inclusive.
func Between(min, max int) RepeatSpec { return RepeatSpec{Min: min, Max: ptr(max)} }

// AtLeast requires min or more copies, with no upper bound.
func AtLeast(min int) RepeatSpec { return RepeatSpec{Min: min, Max: nil} }

// Star is the "*" form: zero or more copies.
//
// This always fails with ErrBadRepeat: zero-or-more has no minimum copy
// for its looping epsilon to attach to, which this module treats as the
// unresolved case flagged for repeat's open upper bound (see
// ErrBadRepeat). Use AtLeast(1) ("+") and wrap the result in an optional
// (Between(0, 1)) position instead of relying on Star directly.
func Star() RepeatSpec { return RepeatSpec{Min: 0, Max: nil} }

// Plus is the "+" form: one or more copies.
func Plus() RepeatSpec { return AtLeast(1) }

// Optional is the "?" form: zero or one copy.
func Optional() RepeatSpec { return Between(0, 1) }

// normalize validates spec and computes the number of machine copies to
// build plus whether the last copy should loop.
func normalize(spec RepeatSpec) (min, total int, unbounded bool, err error) {
	if spec.Min < 0 {
		return 0, 0, false, ErrBadRepeat
	}
	if spec.Max != nil {
		if *spec.Max < spec.Min {
			return 0, 0, false, ErrBadRepeat
		}
		return spec.Min, *spec.Max, false, nil
	}
	if spec.Min == 0 {
		return 0, 0, false, ErrBadRepeat
	}
	return spec.Min, spec.Min, true, nil
}

// Repeat is the primitive, in-place form of repetition: it builds total
// copies of m (the first copy is m itself), wires an optional-skip
// epsilon around every copy at index >= min, wires a looping epsilon back
// from the last copy's final to its start when spec has no upper bound,
// and concatenates the copies together in m.
//
// Repeat returns ErrBadRepeat if spec is not a valid non-negative
// min/max pair, or if spec has no upper bound and a zero minimum (see
// Star).
func (m *Matcher) Repeat(spec RepeatSpec) (*Matcher, error) {
	min, total, unbounded, err := normalize(spec)
	if err != nil {
		return nil, err
	}

	if len(m.Machine.Accepting()) > 1 {
		m.Machine.UnifyAccepting()
	}

	copies := make([]*Matcher, total)
	copies[0] = m
	for i := 1; i < total; i++ {
		copies[i] = m.Copy()
	}

	for i, c := range copies {
		if i == len(copies)-1 && unbounded {
			final := c.Machine.Final()
			final.Epsilon(c.Machine.Start())
		}
		if i >= min {
			start := c.Machine.Start()
			if !start.EpsOut() {
				start = c.Machine.AddStart()
			}
			final := c.Machine.Final()
			if final == nil || !final.EpsIn() {
				final = c.Machine.UnifyAccepting()
			}
			start.Epsilon(final)
		}
		if c != m {
			m.Concat(c)
		}
	}

	return m, nil
}

// RepeatValue is the value-returning form: it copies m first, so m itself
// is left usable afterwards.
func (m *Matcher) RepeatValue(spec RepeatSpec) (*Matcher, error) {
	return m.Copy().Repeat(spec)
}

// Copy returns an independent duplicate of m.
func (m *Matcher) Copy() *Matcher {
	return wrap(m.Machine.Copy())
}
