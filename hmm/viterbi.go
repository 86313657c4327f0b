package hmm

import "math"

// viterbiTol is the strict-improvement tolerance for relaxation updates: a candidate must
// beat the current best by more than this to overwrite it and its back-pointer.
const viterbiTol = 1e-10

// Step is one (global index, state) pair on a decoded path.
type Step struct {
	Index int
	State *State
}

// Path is an ordered sequence of Steps from start to end (or, for SubseqViterbi, from a
// repeat unit's boundary start to its boundary end).
type Path []Step

// Viterbi finds the single highest-probability path through the model for seq, in log space.
// The repeat band (model.SubModels[1]) is relaxed WithRepeatBandPasses (default 2) times per
// input column, letting silent delete-state chains propagate across an entire repeat copy
// within one column; the flanking bands are relaxed once.
func (m *Model) Viterbi(seq []byte) (float64, Path, error) {
	if !m.isBaked {
		return 0, nil, ErrNotBaked
	}
	T := len(seq)
	if T == 0 {
		return 0, nil, ErrEmptySequence
	}

	n := len(m.States)
	startIdx := m.indexOf[m.Start]
	endIdx := m.indexOf[m.End]

	delta, prow, pcol := newViterbiTables(n, T)
	delta[startIdx][0] = 0

	relax := m.relaxFunc(seq, delta, prow, pcol)

	rs, re, hasRepeat := m.RepeatBandRange()
	for t := 0; t < T; t++ {
		if hasRepeat {
			for i := 0; i < rs; i++ {
				relax(i, t)
			}
			for pass := 0; pass < m.repeatBandPasses; pass++ {
				for i := rs; i <= re; i++ {
					relax(i, t)
				}
			}
			for i := re + 1; i < n; i++ {
				relax(i, t)
			}
		} else {
			for i := 0; i < n; i++ {
				relax(i, t)
			}
		}
	}

	if m.generalFinalColumn {
		for i := 0; i < n; i++ {
			if m.States[i].Silent {
				relax(i, T)
			}
		}
	} else if n >= 2 {
		relax(n-2, T)
	}

	logp := delta[endIdx][T]
	if math.IsInf(logp, -1) {
		return logp, nil, nil
	}
	return logp, tracePath(delta, prow, pcol, m.States, endIdx, T, startIdx, 0), nil
}

func newViterbiTables(n, T int) (delta [][]float64, prow, pcol [][]int) {
	delta = make([][]float64, n)
	prow = make([][]int, n)
	pcol = make([][]int, n)
	for i := 0; i < n; i++ {
		delta[i] = make([]float64, T+1)
		prow[i] = make([]int, T+1)
		pcol[i] = make([]int, T+1)
		for t := 0; t <= T; t++ {
			delta[i][t] = math.Inf(-1)
			prow[i][t] = -1
			pcol[i][t] = -1
		}
	}
	return
}

// relaxFunc returns a closure that relaxes all outgoing edges of global state index i at
// input column t, writing into the (index-local) delta/prow/pcol tables passed in.
func (m *Model) relaxFunc(seq []byte, delta [][]float64, prow, pcol [][]int) func(i, t int) {
	T := len(seq)
	return func(i, t int) {
		v := delta[i][t]
		if math.IsInf(v, -1) {
			return
		}
		s := m.States[i]
		for _, e := range m.edges[i] {
			j := e.to
			var tt int
			var cand float64
			if s.Silent {
				tt = t
				cand = v + e.logProb
			} else {
				if t >= T {
					continue
				}
				tt = t + 1
				cand = v + e.logProb + s.logEmission[seq[t]]
			}
			if cand-delta[j][tt] > viterbiTol {
				delta[j][tt] = cand
				prow[j][tt] = i
				pcol[j][tt] = t
			}
		}
	}
}

func tracePath(delta [][]float64, prow, pcol [][]int, states []*State, endIdx, endCol, startIdx, startCol int) Path {
	path := Path{}
	ci, ct := endIdx, endCol
	for {
		path = append(Path{{Index: ci, State: states[ci]}}, path...)
		if ci == startIdx && ct == startCol {
			break
		}
		pi, pt := prow[ci][ct], pcol[ci][ct]
		if pi < 0 {
			break
		}
		ci, ct = pi, pt
	}
	return path
}
