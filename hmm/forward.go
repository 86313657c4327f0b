package hmm

import "math"

// LogProbability computes log P(seq | model) with the Forward algorithm, over a rolling
// two-column buffer of linear-domain sums (log is taken once, at the end). Silent states are
// relaxed within the same column before the column is finalized, so mass reaching a silent
// state (a delete chain, a unit_start/unit_end boundary) keeps propagating instead of
// dead-ending there.
//
// Unlike Viterbi, this does not repeat the sweep over the repeat band: Viterbi's relaxation is
// a max, so re-relaxing an already-settled state is idempotent, which is what lets
// WithRepeatBandPasses paper over a topology sort that isn't strictly index-increasing along
// every silent edge. Forward's relaxation is a sum, so repeating it would double-count mass. A
// single ascending sweep is exact for any DAG regardless of band boundaries, which is what the
// topology sorter produces for every model modeldef.BuildReadMatcher builds.
func (m *Model) LogProbability(seq []byte) (float64, error) {
	if !m.isBaked {
		return 0, ErrNotBaked
	}
	T := len(seq)
	if T == 0 {
		return 0, ErrEmptySequence
	}

	n := len(m.States)
	startIdx := m.indexOf[m.Start]
	endIdx := m.indexOf[m.End]

	cur := make([]float64, n)
	next := make([]float64, n)
	cur[startIdx] = 1

	for t := 0; t < T; t++ {
		for i := range next {
			next[i] = 0
		}
		for i := 0; i < n; i++ {
			m.forwardRelaxState(seq, cur, next, i, t)
		}
		cur, next = next, cur
	}

	if m.generalFinalColumn {
		for i := 0; i < n; i++ {
			if m.States[i].Silent {
				m.forwardRelaxState(seq, cur, next, i, T)
			}
		}
	} else if n >= 2 {
		m.forwardRelaxState(seq, cur, next, n-2, T)
	}

	total := cur[endIdx]
	if total <= 0 {
		return math.Inf(-1), nil
	}
	return math.Log(total), nil
}

// forwardRelaxState pushes the mass at state i, input column t, onto its outgoing edges: a
// silent state's mass lands in cur (same column, available to later indices in this same
// sweep since states are topologically ordered), an emitting state's mass is weighted by
// seq[t]'s emission probability and lands in next (column t+1).
func (m *Model) forwardRelaxState(seq []byte, cur, next []float64, i, t int) {
	v := cur[i]
	if v == 0 {
		return
	}
	T := len(seq)
	s := m.States[i]
	for _, e := range m.edges[i] {
		if s.Silent {
			cur[e.to] += v * e.prob
		} else {
			if t >= T {
				continue
			}
			next[e.to] += v * e.prob * s.emissionProb(seq[t])
		}
	}
}
