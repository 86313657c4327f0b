package repeatunit

import (
	"strings"
	"testing"
)

func TestEstimateRepeatUnitFindsTandemRepeat(t *testing.T) {
	read := []byte(strings.Repeat("CAG", 6))
	got := EstimateRepeatUnit(read)

	if got.Copies < 5 {
		t.Errorf("Copies = %d, want >= 5", got.Copies)
	}
	if got.Inverted {
		t.Errorf("expected a non-inverted result for a plain forward repeat")
	}
	if len(got.Unit) == 0 {
		t.Errorf("expected a non-empty repeat unit")
	}
}

func TestEstimateRepeatUnitEmptyRead(t *testing.T) {
	got := EstimateRepeatUnit(nil)
	if got.Copies != 0 || got.Unit != "" {
		t.Errorf("expected zero-value result for an empty read, got %+v", got)
	}
}

func TestReverseComplementRoundTrip(t *testing.T) {
	seq := []byte("ACGTACGT")
	rc := ReverseComplement(seq)
	rcrc := ReverseComplement(rc)
	if string(rcrc) != string(seq) {
		t.Errorf("double reverse complement = %s, want %s", rcrc, seq)
	}
}
