package locate

var complement = map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}

// ReverseComplement returns the reverse complement of a DNA sequence. Bytes outside ACGT pass
// through unchanged. Grounded on dna_aligner/sequence/utils.go's ReverseComplement.
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

// GCContent returns the fraction of G/C bases in seq. Grounded on
// dna_aligner/sequence/utils.go's CalculateGCContent.
func GCContent(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for _, b := range seq {
		if b == 'G' || b == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}
