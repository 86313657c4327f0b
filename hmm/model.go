package hmm

import "math"

type weightedEdge struct {
	to      int
	prob    float64
	logProb float64
}

// Model is the top-level container: an ordered sequence of sub-models, concatenated and baked
// into one flat, globally-indexed state space.
type Model struct {
	Name      string
	SubModels []*SubModel
	Start     *State
	End       *State
	States    []*State

	indexOf map[*State]int
	edges   [][]weightedEdge
	isBaked bool

	sortByName         bool
	readLength         int
	repeatBandPasses   int
	generalFinalColumn bool
}

// NewModel creates an empty, unbaked model.
func NewModel(name string) *Model {
	return &Model{Name: name, repeatBandPasses: 2}
}

// AddStates appends states to the most recently concatenated sub-model.
func (m *Model) AddStates(ss ...*State) {
	if len(m.SubModels) == 0 {
		return
	}
	last := m.SubModels[len(m.SubModels)-1]
	for _, s := range ss {
		last.AddState(s)
	}
}

// Concatenate appends a sub-model, wiring a transition from the previous sub-model's end into
// the new sub-model's start, and unbakes the model.
func (m *Model) Concatenate(sm *SubModel, transitionProbability float64) {
	if len(m.SubModels) > 0 {
		prev := m.SubModels[len(m.SubModels)-1]
		prev.SetTransition(prev.End, sm.Start, transitionProbability)
	}
	m.SubModels = append(m.SubModels, sm)
	m.isBaked = false
}

// BakeOption configures a single Bake call.
type BakeOption func(*Model)

// WithSortByName selects the alternative lexicographic-by-name state ordering.
func WithSortByName() BakeOption { return func(m *Model) { m.sortByName = true } }

// WithReadLength records the expected decode sequence length; advisory only, not enforced.
func WithReadLength(n int) BakeOption { return func(m *Model) { m.readLength = n } }

// WithRepeatBandPasses sets how many relaxation passes the Viterbi engine makes over the
// repeat band per input column. Default 2.
func WithRepeatBandPasses(k int) BakeOption { return func(m *Model) { m.repeatBandPasses = k } }

// WithGeneralFinalColumn opts into relaxing silent edges from every state that can reach end
// in the Viterbi final column, rather than only from states[len(states)-2].
func WithGeneralFinalColumn(v bool) BakeOption {
	return func(m *Model) { m.generalFinalColumn = v }
}

// Bake sorts each sub-model's states into canonical order, assigns a contiguous global index
// to every state, merges all transitions into a flat sparse edge list, and marks the model
// as baked. Calling Bake after Concatenate re-bakes from scratch.
func (m *Model) Bake(opts ...BakeOption) {
	for _, o := range opts {
		o(m)
	}
	if len(m.SubModels) == 0 {
		m.isBaked = true
		return
	}

	m.Start = m.SubModels[0].Start
	m.End = m.SubModels[len(m.SubModels)-1].End
	m.States = nil
	m.indexOf = make(map[*State]int)

	for _, sm := range m.SubModels {
		if m.sortByName {
			sortSubModelByName(sm)
		} else {
			sortTopology(sm)
		}
		for _, s := range sm.States {
			m.indexOf[s] = len(m.States)
			m.States = append(m.States, s)
		}
	}

	m.edges = make([][]weightedEdge, len(m.States))
	for _, sm := range m.SubModels {
		for from, tos := range sm.trans {
			fi, ok := m.indexOf[from]
			if !ok {
				continue
			}
			for to, p := range tos {
				if p <= 0 {
					continue
				}
				ti, ok := m.indexOf[to]
				if !ok {
					continue
				}
				m.edges[fi] = append(m.edges[fi], weightedEdge{to: ti, prob: p, logProb: math.Log(p)})
			}
		}
	}
	m.isBaked = true
}

// IsBaked reports whether the model is currently baked.
func (m *Model) IsBaked() bool { return m.isBaked }

// StateIndex returns the global index assigned to s at the last bake, if any.
func (m *Model) StateIndex(s *State) (int, bool) {
	i, ok := m.indexOf[s]
	return i, ok
}

// DenseTransitionMatrix materializes the sparse edge list as an n x n probability matrix.
func (m *Model) DenseTransitionMatrix() [][]float64 {
	n := len(m.States)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
		for _, e := range m.edges[i] {
			mat[i][e.to] = e.prob
		}
	}
	return mat
}

// RepeatBandRange returns the [start, end] global index range of the repeat sub-model
// (conventionally SubModels[1]), and false if the model has fewer than two sub-models.
func (m *Model) RepeatBandRange() (int, int, bool) {
	if len(m.SubModels) < 2 {
		return 0, 0, false
	}
	repeat := m.SubModels[1]
	rs, ok1 := m.indexOf[repeat.Start]
	re, ok2 := m.indexOf[repeat.End]
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return rs, re, true
}
