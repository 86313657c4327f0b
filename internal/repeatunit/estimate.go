// Package repeatunit proposes a repeat unit and copy count for a raw read; the CLI's
// estimate-repeat subcommand prints the result (internal/modeldef does not call it). Adapted from
// the teacher's dup_identification package (a general tandem/inverted repeat finder) into a
// single best-candidate estimator.
package repeatunit

import "bytes"

// EstimatedUnit is the best repeat candidate found in a read.
type EstimatedUnit struct {
	Unit     string
	Copies   int
	Inverted bool
}

var complement = map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}

// ReverseComplement returns the reverse complement of a DNA sequence. Bytes outside ACGT pass
// through unchanged.
func ReverseComplement(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		c, ok := complement[b]
		if !ok {
			c = b
		}
		out[len(seq)-1-i] = c
	}
	return out
}

type matchInfo struct {
	length   int
	inverted bool
}

// EstimateRepeatUnit scans read against itself (forward and reverse-complement) with a suffix
// automaton, exactly the way analyzeDuplicates does, and returns the single longest
// contiguous run of a repeated unit found.
func EstimateRepeatUnit(read []byte) EstimatedUnit {
	if len(read) == 0 {
		return EstimatedUnit{}
	}

	fwdSAM := buildSuffixAutomaton(read)
	invSAM := buildSuffixAutomaton(ReverseComplement(read))

	matches := make([]matchInfo, len(read))
	for pos := range read {
		fwdLen := fwdSAM.findMaxMatch(read, pos)
		invLen := invSAM.findMaxMatch(read, pos)
		inverted := invLen > fwdLen || (invLen == fwdLen && invLen > 0)
		best := fwdLen
		if inverted {
			best = invLen
		}
		matches[pos] = matchInfo{length: best, inverted: inverted}
	}

	var best EstimatedUnit
	bestScore := 0

	position := 0
	for position < len(read) {
		cur := matches[position]
		if cur.length == 0 {
			position++
			continue
		}

		unitLength := cur.length
		unit := read[position : position+unitLength]
		copies := 1
		next := position + unitLength
		for next+unitLength <= len(read) {
			if !bytes.Equal(read[next:next+unitLength], unit) ||
				matches[next].length < unitLength ||
				matches[next].inverted != cur.inverted {
				break
			}
			copies++
			next += unitLength
		}

		if score := unitLength * copies; score > bestScore {
			bestScore = score
			best = EstimatedUnit{Unit: string(unit), Copies: copies, Inverted: cur.inverted}
		}
		position = next
	}
	return best
}
