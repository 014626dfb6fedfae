package machine

import (
	"github.com/coregx/lexfsm/state"
	"github.com/coregx/lexfsm/transition"
)

// DFA lowers m to a deterministic automaton via subset construction: the
// result has no outgoing Epsilon transitions and no two outgoing
// MatchChar transitions from the same state with overlapping character
// sets. Action transitions survive (they never consume input and are
// disambiguated by precedence at merge time).
func (m *Machine) DFA() *Machine {
	dest := New()

	startClosure := state.EpsClosure(m.start)
	stateMap := map[string]*state.State{startClosure.Key(): dest.start}
	if startClosure.ContainsAccepting() {
		dest.start.Accepting = true
		dest.accepting[dest.start] = struct{}{}
	}

	workq := []state.Set{startClosure}
	for len(workq) > 0 {
		cur := workq[len(workq)-1]
		workq = workq[:len(workq)-1]
		curDest := stateMap[cur.Key()]

		var matchChars []*transition.MatchChar[*state.State]
		var actions []*transition.Action[*state.State]
		for sub := range cur {
			for tr := range sub.IterOut() {
				switch t := tr.(type) {
				case *transition.Epsilon[*state.State]:
					continue
				case *transition.MatchChar[*state.State]:
					matchChars = append(matchChars, t)
				case *transition.Action[*state.State]:
					actions = append(actions, t)
				}
			}
		}

		for _, group := range transition.DisjointMatchChar(matchChars) {
			destIn := make([]*state.State, len(group))
			for i, t := range group {
				destIn[i] = t.StateIn()
			}
			closure := state.EpsClosure(destIn...)
			destState, ok := stateMap[closure.Key()]
			if !ok {
				destState = dest.NewState(closure.ContainsAccepting())
				stateMap[closure.Key()] = destState
				workq = append(workq, closure)
			}
			curDest.MatchChar(destState, group[0].CSet)
		}

		for _, group := range transition.DisjointAction(actions) {
			t := group[0]
			closure := state.EpsClosure(t.StateIn())
			destState, ok := stateMap[closure.Key()]
			if !ok {
				destState = dest.NewState(closure.ContainsAccepting())
				stateMap[closure.Key()] = destState
				workq = append(workq, closure)
			}
			curDest.Action(destState, t.ActionText, t.Precedence, t.Name)
		}
	}

	return dest
}
