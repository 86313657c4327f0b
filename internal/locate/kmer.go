package locate

// findExactMatches finds every exact k-length match between read and pattern.
// Grounded on dna_aligner/matching/kmer.go's FindExactMatches.
func findExactMatches(read, pattern []byte, k int) []KmerMatch {
	if k == 0 {
		k = defaultK
	}
	if k <= 0 || k > len(pattern) || k > len(read) {
		return nil
	}

	patternKmers := make(map[string][]int)
	for i := 0; i <= len(pattern)-k; i++ {
		patternKmers[string(pattern[i:i+k])] = append(patternKmers[string(pattern[i:i+k])], i)
	}

	var matches []KmerMatch
	for i := 0; i <= len(read)-k; i++ {
		positions, found := patternKmers[string(read[i:i+k])]
		if !found {
			continue
		}
		for _, p := range positions {
			matches = append(matches, KmerMatch{ReadPos: i, PatternPos: p, Length: k})
		}
	}
	return matches
}
