package locate

import "math"

// extendMatch extends a k-mer seed at (readPos, patternPos) forward and backward with
// up-to-two-base indel tolerance, exactly as dna_aligner/matching/extend.go's ExtendMatch does,
// but over []byte read/pattern rather than string query/ref. Returns nil if the extended
// match fails the minimum length or identity thresholds.
func extendMatch(read, pattern []byte, readPos, patternPos, k, minMatchLen, maxErrors int) *Anchor {
	if minMatchLen == 0 {
		minMatchLen = minMatchLength
	}
	if maxErrors == 0 {
		maxErrors = defaultMaxErrors
	}

	rCurF, pCurF := readPos+k, patternPos+k
	totalMatches := k
	errorsF := 0

	for rCurF < len(read) && pCurF < len(pattern) && errorsF <= maxErrors {
		if read[rCurF] == pattern[pCurF] {
			rCurF++
			pCurF++
			totalMatches++
			continue
		}
		if found := tryIndel(read, pattern, &rCurF, &pCurF, true); found {
			errorsF++
			totalMatches++
			continue
		}
		rCurF++
		pCurF++
		errorsF++
	}

	rCurB, pCurB := readPos-1, patternPos-1
	errorsB := 0

	for rCurB >= 0 && pCurB >= 0 && errorsB <= maxErrors {
		if read[rCurB] == pattern[pCurB] {
			rCurB--
			pCurB--
			totalMatches++
			continue
		}
		if found := tryIndelBackward(read, pattern, &rCurB, &pCurB); found {
			errorsB++
			totalMatches++
			continue
		}
		rCurB--
		pCurB--
		errorsB++
	}

	readStart := rCurB + 1
	patternStart := pCurB + 1
	readEndExclusive := rCurF
	patternEndExclusive := pCurF

	matchLen := readEndExclusive - readStart
	if matchLen <= 0 {
		return nil
	}
	identity := float64(totalMatches) / float64(matchLen)

	if matchLen > 50 {
		contextSize := int(math.Min(20, float64(matchLen/4)))
		if readStart >= contextSize && patternStart >= contextSize {
			leftMatches := 0
			for i := 0; i < contextSize; i++ {
				if read[readStart-contextSize+i] == pattern[patternStart-contextSize+i] {
					leftMatches++
				}
			}
			identity = (identity*float64(matchLen) + float64(leftMatches)*0.5) / (float64(matchLen) + float64(contextSize)*0.5)
		}
	}

	if matchLen >= minMatchLen && identity >= minIdentityThreshold {
		score := float64(matchLen) * identity * (1.0 - 0.05*float64(errorsB))
		return &Anchor{
			ReadStart:    readStart,
			ReadEnd:      readEndExclusive - 1,
			PatternStart: patternStart,
			PatternEnd:   patternEndExclusive - 1,
			Score:        score,
			Identity:     identity,
		}
	}
	return nil
}

// tryIndel looks ahead up to extendMaxIndelLookAhd bases for a resynchronizing match when
// extending forward, trying an insertion in read then an insertion in pattern.
func tryIndel(read, pattern []byte, rCur, pCur *int, forward bool) bool {
	for ins := 1; ins <= extendMaxIndelLookAhd; ins++ {
		if *rCur+ins < len(read) && *pCur < len(pattern) && read[*rCur+ins] == pattern[*pCur] {
			*rCur += ins + 1
			*pCur++
			return true
		}
	}
	for ins := 1; ins <= extendMaxIndelLookAhd; ins++ {
		if *pCur+ins < len(pattern) && *rCur < len(read) && read[*rCur] == pattern[*pCur+ins] {
			*rCur++
			*pCur += ins + 1
			return true
		}
	}
	return false
}

func tryIndelBackward(read, pattern []byte, rCur, pCur *int) bool {
	for ins := 1; ins <= extendMaxIndelLookAhd; ins++ {
		if *rCur-ins >= 0 && *pCur >= 0 && read[*rCur-ins] == pattern[*pCur] {
			*rCur -= ins + 1
			*pCur--
			return true
		}
	}
	for ins := 1; ins <= extendMaxIndelLookAhd; ins++ {
		if *pCur-ins >= 0 && *rCur >= 0 && read[*rCur] == pattern[*pCur-ins] {
			*rCur--
			*pCur -= ins + 1
			return true
		}
	}
	return false
}
