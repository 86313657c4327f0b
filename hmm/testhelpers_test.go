package hmm

import "fmt"

// buildRepeatSubModel constructs a minimal repeat-matcher sub-model with `copies` back-to-back
// units, each a single Match/Delete/Insert position at index 0, bracketed by
// unit_start_<id>/unit_end_<id> dummy boundary states -- enough topology to exercise the
// topology sorter, bake, and both Viterbi engines without pulling in internal/modeldef.
func buildRepeatSubModel(copies int) *SubModel {
	sm := NewSubModel("repeat")
	prevEnd := sm.Start
	for u := 0; u < copies; u++ {
		uid := fmt.Sprintf("%d", u)
		ustart := NewSilentState("unit_start_" + uid)
		uend := NewSilentState("unit_end_" + uid)
		m0 := NewEmittingState("M0_"+uid, map[byte]float64{'C': 1.0})
		d0 := NewSilentState("D0_" + uid)
		i0 := NewEmittingState("I0_"+uid, map[byte]float64{'A': 0.25, 'C': 0.25, 'G': 0.25, 'T': 0.25})

		sm.AddState(ustart)
		sm.AddState(i0)
		sm.AddState(d0)
		sm.AddState(m0)
		sm.AddState(uend)

		sm.SetTransition(prevEnd, ustart, 1.0)
		sm.SetTransition(ustart, i0, 0.1)
		sm.SetTransition(ustart, m0, 0.8)
		sm.SetTransition(ustart, d0, 0.1)
		sm.SetTransition(i0, i0, 0.1)
		sm.SetTransition(i0, m0, 0.9)
		sm.SetTransition(m0, uend, 1.0)
		sm.SetTransition(d0, uend, 1.0)
		prevEnd = uend
	}
	sm.SetTransition(prevEnd, sm.End, 1.0)
	return sm
}

func stateNames(states []*State) []string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.Name
	}
	return names
}
