package transition

import (
	"testing"

	"github.com/coregx/lexfsm/charset"
)

// node is a minimal stand-in for *state.State, used so this package's
// tests don't need to import state (which itself imports transition).
type node struct{ name string }

func TestEpsilonReverseSwapsEndpoints(t *testing.T) {
	a, b := &node{"a"}, &node{"b"}
	e := NewEpsilon(a, b)
	e.Reverse()
	if e.StateOut() != b || e.StateIn() != a {
		t.Fatalf("Reverse() endpoints = (%v, %v), want (%v, %v)", e.StateOut(), e.StateIn(), b, a)
	}
}

func TestMergeEpsilonCollapsesToOne(t *testing.T) {
	a, b := &node{"a"}, &node{"b"}
	self := NewEpsilon(a, b)
	others := []*Epsilon[*node]{NewEpsilon(a, b), NewEpsilon(a, b)}
	got := MergeEpsilon(self, others)
	if len(got) != 1 || got[0] != self {
		t.Fatalf("MergeEpsilon() = %v, want [self]", got)
	}
}

func TestMergeMatchCharUnionsCSets(t *testing.T) {
	a, b := &node{"a"}, &node{"b"}
	cs1, _ := charset.NewRange('a', 'm')
	cs2, _ := charset.NewRange('n', 'z')
	self := NewMatchChar(a, b, cs1)
	other := NewMatchChar(a, b, cs2)

	got := MergeMatchChar(self, []*MatchChar[*node]{other})
	if len(got) != 1 {
		t.Fatalf("MergeMatchChar() returned %d transitions, want 1", len(got))
	}
	want, _ := charset.NewRange('a', 'z')
	if !got[0].CSet.Equal(want) {
		t.Fatalf("merged cset = %v, want %v", got[0].CSet.Ranges(), want.Ranges())
	}
}

func TestMergeActionPicksSmallestPrecedence(t *testing.T) {
	a, b := &node{"a"}, &node{"b"}
	self := NewAction(a, b, "IDENT", 5, nil)
	better := NewAction(a, b, "KEYWORD", 1, nil)
	worse := NewAction(a, b, "OTHER", 9, nil)

	got := MergeAction(self, []*Action[*node]{better, worse})
	if len(got) != 1 || got[0] != better {
		t.Fatalf("MergeAction() = %v, want [better]", got)
	}
}

func TestDisjointActionNeverMerges(t *testing.T) {
	a, b := &node{"a"}, &node{"b"}
	t1 := NewAction(a, b, "X", 1, nil)
	t2 := NewAction(a, b, "Y", 2, nil)
	groups := DisjointAction([]*Action[*node]{t1, t2})
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	for _, g := range groups {
		if len(g) != 1 {
			t.Fatalf("group %v has %d members, want 1", g, len(g))
		}
	}
}

func TestDisjointMatchCharPartitions(t *testing.T) {
	a, b := &node{"a"}, &node{"b"}
	cs1, _ := charset.NewRange('a', 'm')
	cs2, _ := charset.NewRange('f', 'z')
	t1 := NewMatchChar(a, b, cs1)
	t2 := NewMatchChar(a, b, cs2)

	groups := DisjointMatchChar([]*MatchChar[*node]{t1, t2})

	var total int
	for _, g := range groups {
		total += len(g)
		// Within a group, every member shares the same CSet (the piece).
		for _, m := range g[1:] {
			if !m.CSet.Equal(g[0].CSet) {
				t.Fatalf("group has mismatched csets: %v vs %v", g[0].CSet.Ranges(), m.CSet.Ranges())
			}
		}
	}
	if total != 4 {
		// a-e (owner t1), f-m (owners t1,t2), n-z (owner t2): 1+2+1
		t.Fatalf("got %d total transitions across groups, want 4", total)
	}
}

func TestEpsilonMatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Match on Epsilon to panic")
		}
	}()
	e := NewEpsilon(&node{}, &node{})
	e.Match('x', true, nil)
}
