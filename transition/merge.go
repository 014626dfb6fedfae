package transition

import "github.com/coregx/lexfsm/charset"

// MergeEpsilon folds others into self: every epsilon transition between
// the same two states is equivalent, so the result is always just self.
func MergeEpsilon[S any](self *Epsilon[S], others []*Epsilon[S]) []*Epsilon[S] {
	return []*Epsilon[S]{self}
}

// MergeMatchChar folds others' character sets into self's in place and
// returns self as the sole survivor.
func MergeMatchChar[S any](self *MatchChar[S], others []*MatchChar[S]) []*MatchChar[S] {
	for _, o := range others {
		self.CSet = self.CSet.Union(o.CSet)
	}
	return []*MatchChar[S]{self}
}

// MergeAction returns the single action with the smallest Precedence
// among self and others; ties resolve to whichever is encountered first.
func MergeAction[S any](self *Action[S], others []*Action[S]) []*Action[S] {
	best := self
	for _, o := range others {
		if o.Precedence < best.Precedence {
			best = o
		}
	}
	return []*Action[S]{best}
}

// DisjointEpsilon reports that all epsilon transitions between a pair of
// states are interchangeable: there is exactly one output group.
func DisjointEpsilon[S any](transitions []*Epsilon[S]) [][]*Epsilon[S] {
	if len(transitions) == 0 {
		return nil
	}
	return [][]*Epsilon[S]{transitions}
}

// DisjointAction reports that no two action transitions are ever
// equivalent: each gets its own singleton group, leaving the caller (DFA
// subset construction) to decide ordering between them.
func DisjointAction[S any](transitions []*Action[S]) [][]*Action[S] {
	groups := make([][]*Action[S], len(transitions))
	for i, t := range transitions {
		groups[i] = []*Action[S]{t}
	}
	return groups
}

// DisjointMatchChar decomposes transitions into pairwise-disjoint groups
// using charset.Disjoint over their character sets. Each emitted group
// carries one new MatchChar per original transition whose character set
// contained the corresponding disjoint piece, preserving that original's
// endpoints.
func DisjointMatchChar[S any](transitions []*MatchChar[S]) [][]*MatchChar[S] {
	if len(transitions) == 0 {
		return nil
	}

	csets := make([]*charset.CSet, len(transitions))
	byCSet := make(map[*charset.CSet]*MatchChar[S], len(transitions))
	for i, t := range transitions {
		csets[i] = t.CSet
		byCSet[t.CSet] = t
	}

	pieces := charset.Disjoint(csets)
	groups := make([][]*MatchChar[S], 0, len(pieces))
	for _, p := range pieces {
		group := make([]*MatchChar[S], 0, len(p.Owners))
		for _, owner := range p.Owners {
			orig := byCSet[owner]
			group = append(group, NewMatchChar(orig.out, orig.in, p.Set))
		}
		groups = append(groups, group)
	}
	return groups
}
