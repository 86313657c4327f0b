package repeatunit

// suffixAutomaton is a standard online suffix automaton over a byte string, used to find, for
// any position in a query, the longest match against the string the automaton was built from.
//
// Adapted from the teacher's dup_identification/sam.go. The teacher's Extend used
// `next[c] == 0` as an "absent transition" sentinel, which is wrong: state 0 (the automaton
// root) is itself a valid transition target, so a genuine edge into state 0 would be silently
// treated as absent and re-created on every subsequent call. This version uses the two-value
// map form throughout to distinguish "no edge" from "edge to state 0".
type suffixAutomaton struct {
	last   int
	size   int
	states []*samState
}

type samState struct {
	length int
	link   int
	next   map[byte]int
}

func newSAMState(length, link int) *samState {
	return &samState{length: length, link: link, next: make(map[byte]int)}
}

func newSuffixAutomaton() *suffixAutomaton {
	return &suffixAutomaton{
		last:   0,
		size:   1,
		states: []*samState{newSAMState(0, -1)},
	}
}

func buildSuffixAutomaton(s []byte) *suffixAutomaton {
	sam := newSuffixAutomaton()
	for _, c := range s {
		sam.extend(c)
	}
	return sam
}

func (s *suffixAutomaton) extend(c byte) {
	p, cur := s.last, s.size
	s.size++
	s.states = append(s.states, newSAMState(s.states[p].length+1, -1))

	for ; p != -1; p = s.states[p].link {
		if _, ok := s.states[p].next[c]; ok {
			break
		}
		s.states[p].next[c] = cur
	}

	if p == -1 {
		s.states[cur].link = 0
	} else {
		q := s.states[p].next[c]
		if s.states[p].length+1 == s.states[q].length {
			s.states[cur].link = q
		} else {
			clone := s.size
			s.size++
			cloneState := newSAMState(s.states[p].length+1, s.states[q].link)
			for k, v := range s.states[q].next {
				cloneState.next[k] = v
			}
			s.states = append(s.states, cloneState)

			for ; p != -1; p = s.states[p].link {
				next, ok := s.states[p].next[c]
				if !ok || next != q {
					break
				}
				s.states[p].next[c] = clone
			}
			s.states[q].link = clone
			s.states[cur].link = clone
		}
	}
	s.last = cur
}

// findMaxMatch returns the length of the longest prefix of query[start:] that occurs
// somewhere in the string the automaton was built from.
func (s *suffixAutomaton) findMaxMatch(query []byte, start int) int {
	maxLen := 0
	cur := 0
	for i := start; i < len(query); i++ {
		next, ok := s.states[cur].next[query[i]]
		if !ok {
			break
		}
		cur = next
		maxLen++
	}
	return maxLen
}
