package hmm

import "math"

// SanityViolation reports a state whose outgoing transition probabilities do not sum to ~1.
type SanityViolation struct {
	SubModel string
	State    string
	Sum      float64
}

// CheckSanityOfTransitionProb verifies that every state's outgoing transitions sum to 1
// within a 1e-4 tolerance. Purely advisory: no state is modified. The verbose flag is part
// of the external contract but this package performs no I/O; callers log violations
// themselves (see cmd/vntrhmm's sanity subcommand).
func (m *Model) CheckSanityOfTransitionProb(verbose bool) []SanityViolation {
	_ = verbose
	var violations []SanityViolation
	for _, sm := range m.SubModels {
		for _, s := range sm.States {
			outgoing, ok := sm.trans[s]
			if !ok || len(outgoing) == 0 {
				continue
			}
			var sum float64
			for _, p := range outgoing {
				sum += p
			}
			if math.Abs(sum-1) > 1e-4 {
				violations = append(violations, SanityViolation{
					SubModel: sm.Name,
					State:    s.Name,
					Sum:      sum,
				})
			}
		}
	}
	return violations
}
