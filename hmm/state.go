package hmm

import "math"

// alphabetSize covers any byte-valued emission symbol, matching the core's []byte sequence type.
const alphabetSize = 256

// State is an HMM node: either silent (no emission, free to traverse without consuming input)
// or emitting, with a dense per-symbol log-probability table.
type State struct {
	Name        string
	Silent      bool
	logEmission [alphabetSize]float64
}

// NewSilentState builds a silent state, used for sub-model sentinels and delete/dummy states.
func NewSilentState(name string) *State {
	s := &State{Name: name, Silent: true}
	for i := range s.logEmission {
		s.logEmission[i] = math.Inf(-1)
	}
	return s
}

// NewEmittingState builds a state with the given symbol -> probability distribution. Symbols
// missing from dist, or given probability <= 0, emit with probability 0.
func NewEmittingState(name string, dist map[byte]float64) *State {
	s := &State{Name: name}
	for i := range s.logEmission {
		s.logEmission[i] = math.Inf(-1)
	}
	for b, p := range dist {
		if p > 0 {
			s.logEmission[b] = math.Log(p)
		}
	}
	return s
}

func (s *State) emissionProb(symbol byte) float64 {
	lp := s.logEmission[symbol]
	if math.IsInf(lp, -1) {
		return 0
	}
	return math.Exp(lp)
}
