package hmm

import "strings"

// IsMatchState reports whether a profile state name denotes a Match state (prefix "M").
// Grounded on the reference implementation's is_match_state.
func IsMatchState(name string) bool {
	return strings.HasPrefix(name, "M")
}

// IsEmittingState reports whether s consumes an input symbol when traversed.
// Grounded on the reference implementation's is_emitting_state.
func IsEmittingState(s *State) bool {
	return !s.Silent
}

// PathToAlignment renders a decoded Path against the sequence that produced it: one column
// per emitting state (aligned to the consumed symbol) plus a '-' column for every Delete
// state the path crosses without consuming input. Grounded on the reference
// implementation's path_to_alignment.
func PathToAlignment(seq []byte, path Path) (queryAligned, stateAligned string) {
	var qb, sb strings.Builder
	si := 0
	for _, step := range path {
		if step.State.Silent {
			if strings.HasPrefix(step.State.Name, "D") {
				qb.WriteByte('-')
				sb.WriteByte('D')
			}
			continue
		}
		if si < len(seq) {
			qb.WriteByte(seq[si])
			si++
		}
		if IsMatchState(step.State.Name) {
			sb.WriteByte('M')
		} else {
			sb.WriteByte('I')
		}
	}
	return qb.String(), sb.String()
}
