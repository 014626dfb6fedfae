package machine

import "github.com/coregx/lexfsm/state"

// Reverse reverses m in place: every transition's endpoints are swapped,
// every state's incoming/outgoing tables are swapped, and the roles of
// start and final are exchanged (after materializing Final, which may
// unify multiple accepting states first).
//
// A machine with no accepting state at all has no well-defined final
// state to swap roles with; Reverse leaves such a machine's start/final
// roles untouched rather than following the source into a crash.
func (m *Machine) Reverse() *Machine {
	start := m.start
	final := m.Final()

	for s := range m.states {
		for tr := range s.IterOut() {
			tr.Reverse()
		}
		s.Reverse()
	}

	if final == nil || start == final {
		return m
	}

	m.setStart(final)
	final.Accepting = false
	start.Accepting = true
	m.accepting = state.Set{start: {}}

	final.Code, final.HasCode = start.Code, start.HasCode
	start.Code, start.HasCode = "", false
	m.finalCache = nil

	return m
}
