package hmm

import (
	"fmt"
	"math"
)

func (m *Model) findUnitBoundary(unitID string) (start, end *State, ok bool) {
	if len(m.SubModels) < 2 {
		return nil, nil, false
	}
	repeat := m.SubModels[1]
	startName := fmt.Sprintf("unit_start_%s", unitID)
	endName := fmt.Sprintf("unit_end_%s", unitID)
	for _, s := range repeat.States {
		if s.Name == startName {
			start = s
		}
		if s.Name == endName {
			end = s
		}
	}
	return start, end, start != nil && end != nil
}

// subseqViterbiCompute decodes the best path confined to the state band
// [unit_start_<unitID>, unit_end_<unitID>] of the repeat sub-model, using band-local indices
// and a single relaxation pass per column (unlike the full Viterbi's two passes over the
// repeat band). Returns the achieved log-probability and the path in global indices.
func (m *Model) subseqViterbiCompute(seq []byte, unitID string) (float64, Path, error) {
	if !m.isBaked {
		return 0, nil, ErrNotBaked
	}
	T := len(seq)
	if T == 0 {
		return 0, nil, ErrEmptySequence
	}
	us, ue, ok := m.findUnitBoundary(unitID)
	if !ok {
		return 0, nil, ErrUnknownUnit
	}
	A := m.indexOf[us]
	B := m.indexOf[ue]
	K := B - A + 1

	delta, prow, pcol := newViterbiTables(K, T)
	delta[0][0] = 0

	relax := func(i, t int) {
		v := delta[i][t]
		if math.IsInf(v, -1) {
			return
		}
		gi := i + A
		s := m.States[gi]
		for _, e := range m.edges[gi] {
			jg := e.to - A
			if jg < 0 || jg >= K {
				continue
			}
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
			if cand-delta[jg][tt] > viterbiTol {
				delta[jg][tt] = cand
				prow[jg][tt] = i
				pcol[jg][tt] = t
			}
		}
	}

	for t := 0; t < T; t++ {
		for i := 0; i < K-1; i++ {
			relax(i, t)
		}
	}
	for i := 0; i < K-1; i++ {
		relax(i, T)
	}

	logp := delta[K-1][T]
	if math.IsInf(logp, -1) {
		return logp, nil, nil
	}

	localPath := tracePath(delta, prow, pcol, m.States[A:B+1], K-1, T, 0, 0)
	path := make(Path, len(localPath))
	for i, step := range localPath {
		path[i] = Step{Index: step.Index + A, State: step.State}
	}
	return logp, path, nil
}

// SubseqViterbi finds the best path confined to a single repeat unit's band. As in the
// reference this algorithm is distilled from, the returned log-probability is a placeholder
// 0 rather than the achieved score; use SubseqViterbiScored for the real value.
func (m *Model) SubseqViterbi(seq []byte, unitID string) (float64, Path, error) {
	_, path, err := m.subseqViterbiCompute(seq, unitID)
	if err != nil {
		return 0, nil, err
	}
	return 0, path, nil
}

// SubseqViterbiScored behaves like SubseqViterbi but returns the actual achieved
// log-probability instead of the preserved 0 placeholder.
func (m *Model) SubseqViterbiScored(seq []byte, unitID string) (float64, Path, error) {
	return m.subseqViterbiCompute(seq, unitID)
}
