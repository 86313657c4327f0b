package hmm

// SubModel is a local collection of states with start/end sentinels and a transition map.
// A missing (from, to) entry in trans reads as probability 0.
type SubModel struct {
	Name   string
	Start  *State
	End    *State
	States []*State
	trans  map[*State]map[*State]float64
}

// NewSubModel creates an empty sub-model with fresh start/end sentinel states.
func NewSubModel(name string) *SubModel {
	start := NewSilentState(name + "_start")
	end := NewSilentState(name + "_end")
	sm := &SubModel{
		Name:   name,
		Start:  start,
		End:    end,
		States: []*State{start, end},
		trans:  map[*State]map[*State]float64{},
	}
	sm.trans[start] = map[*State]float64{}
	sm.trans[end] = map[*State]float64{}
	return sm
}

// AddState appends a state to the sub-model.
func (sm *SubModel) AddState(s *State) {
	sm.States = append(sm.States, s)
	if _, ok := sm.trans[s]; !ok {
		sm.trans[s] = map[*State]float64{}
	}
}

func (sm *SubModel) contains(s *State) bool {
	for _, st := range sm.States {
		if st == s {
			return true
		}
	}
	return false
}

// AddTransition sets trans[from][to] = p, failing with ErrUnknownState if either state is not
// a member of this sub-model.
func (sm *SubModel) AddTransition(from, to *State, p float64) error {
	if !sm.contains(from) || !sm.contains(to) {
		return ErrUnknownState
	}
	sm.SetTransition(from, to, p)
	return nil
}

// SetTransition sets trans[from][to] = p without membership checking.
func (sm *SubModel) SetTransition(from, to *State, p float64) {
	if _, ok := sm.trans[from]; !ok {
		sm.trans[from] = map[*State]float64{}
	}
	sm.trans[from][to] = p
}

// TransitionProb returns trans[from][to], or 0 if absent.
func (sm *SubModel) TransitionProb(from, to *State) float64 {
	return sm.trans[from][to]
}

// OutgoingTransitions returns a copy of from's current outgoing transition map, so callers can
// rescale or fork a state's existing edges without aliasing the live map mid-iteration.
func (sm *SubModel) OutgoingTransitions(from *State) map[*State]float64 {
	existing := sm.trans[from]
	out := make(map[*State]float64, len(existing))
	for to, p := range existing {
		out[to] = p
	}
	return out
}
