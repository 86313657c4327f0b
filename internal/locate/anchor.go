package locate

import (
	"math"
	"sort"
)

// FindFlankAnchors finds anchor regions where pattern (a flank consensus sequence) matches
// somewhere within read. Grounded on dna_aligner/matching/anchor.go's FindAnchors.
func FindFlankAnchors(read, pattern []byte, k, minMatchLen, stride, maxErrors int) []Anchor {
	if k == 0 {
		k = defaultK
	}
	if stride == 0 {
		stride = defaultStride
	}
	if maxErrors == 0 {
		maxErrors = defaultMaxErrors
	}
	if k <= 0 {
		return nil
	}

	exact := findExactMatches(read, pattern, k)
	var anchors []Anchor
	processed := make(map[[2]int]bool)

	for i, em := range exact {
		key := [2]int{em.ReadPos, em.PatternPos}
		if i%stride != 0 && processed[key] {
			continue
		}
		anchor := extendMatch(read, pattern, em.ReadPos, em.PatternPos, em.Length, minMatchLen, maxErrors)
		if anchor == nil {
			continue
		}
		anchors = append(anchors, *anchor)

		matchLen := anchor.ReadEnd - anchor.ReadStart + 1
		strideFactor := int(math.Max(1, float64(matchLen/10)))
		for j := 0; j < matchLen; j += strideFactor {
			r, p := anchor.ReadStart+j, anchor.PatternStart+j
			if r < len(read) && p < len(pattern) {
				processed[[2]int{r, p}] = true
			}
		}
	}
	return FilterAnchors(anchors, defaultOverlapThresh)
}

// FilterAnchors sorts by score and greedily drops anchors that overlap a higher-scoring one
// beyond overlapThreshold, then returns the survivors sorted by read position. Grounded on
// dna_aligner/matching/anchor.go's FilterAnchors.
func FilterAnchors(anchors []Anchor, overlapThreshold float64) []Anchor {
	if len(anchors) == 0 {
		return nil
	}
	sort.SliceStable(anchors, func(i, j int) bool { return anchors[i].Score > anchors[j].Score })

	var filtered []Anchor
	excluded := make(map[int]bool)
	for i := 0; i < len(anchors); i++ {
		if excluded[i] {
			continue
		}
		a := anchors[i]
		filtered = append(filtered, a)
		for j := i + 1; j < len(anchors); j++ {
			if excluded[j] {
				continue
			}
			b := anchors[j]
			if overlapRatio(a.ReadStart, a.ReadEnd, b.ReadStart, b.ReadEnd) > overlapThreshold ||
				overlapRatio(a.PatternStart, a.PatternEnd, b.PatternStart, b.PatternEnd) > overlapThreshold {
				excluded[j] = true
			}
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].ReadStart < filtered[j].ReadStart })
	return filtered
}

func overlapRatio(aStart, aEnd, bStart, bEnd int) float64 {
	start := int(math.Max(float64(aStart), float64(bStart)))
	end := int(math.Min(float64(aEnd), float64(bEnd)))
	if end < start {
		return 0
	}
	overlapLen := end - start + 1
	bLen := bEnd - bStart + 1
	if bLen <= 0 {
		return 0
	}
	return float64(overlapLen) / float64(bLen)
}

// FindFlankAnchorsInverted finds anchors against the reverse complement of pattern, for
// detecting a flank on the opposite strand. Grounded on
// dna_aligner/matching/anchor.go's FindReverseAnchors.
func FindFlankAnchorsInverted(read, pattern []byte, k, minMatchLen, stride, maxErrors int) []Anchor {
	revPattern := ReverseComplement(pattern)
	anchors := FindFlankAnchors(read, revPattern, k, minMatchLen, stride, maxErrors)
	origLen := len(pattern)
	inverted := make([]Anchor, len(anchors))
	for i, a := range anchors {
		inverted[i] = Anchor{
			ReadStart:    a.ReadStart,
			ReadEnd:      a.ReadEnd,
			PatternStart: origLen - 1 - a.PatternEnd,
			PatternEnd:   origLen - 1 - a.PatternStart,
			Score:        a.Score,
			Identity:     a.Identity,
			Inverted:     true,
		}
	}
	return inverted
}
