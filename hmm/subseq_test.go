package hmm

import (
	"math"
	"testing"
)

// Scenario 5: sub-sequence Viterbi confined to a single repeat unit's band.
func TestSubseqViterbiBand(t *testing.T) {
	suffix := NewSubModel("suffix")
	repeat := buildRepeatSubModel(2)
	prefix := NewSubModel("prefix")

	m := NewModel("full")
	m.Concatenate(suffix, 1.0)
	m.Concatenate(repeat, 1.0)
	m.Concatenate(prefix, 1.0)
	m.Bake()

	seq := []byte("C")
	logp, path, err := m.SubseqViterbi(seq, "0")
	if err != nil {
		t.Fatal(err)
	}
	if logp != 0 {
		t.Errorf("SubseqViterbi logp = %v, want preserved placeholder 0", logp)
	}
	if len(path) == 0 {
		t.Fatal("expected non-empty path")
	}
	if path[0].State.Name != "unit_start_0" {
		t.Errorf("path starts at %s, want unit_start_0", path[0].State.Name)
	}
	if path[len(path)-1].State.Name != "unit_end_0" {
		t.Errorf("path ends at %s, want unit_end_0", path[len(path)-1].State.Name)
	}

	scored, scoredPath, err := m.SubseqViterbiScored(seq, "0")
	if err != nil {
		t.Fatal(err)
	}
	if math.IsInf(scored, -1) {
		t.Error("expected a finite scored log-probability")
	}
	if len(scoredPath) != len(path) {
		t.Errorf("scored path length %d != placeholder path length %d", len(scoredPath), len(path))
	}
}

func TestSubseqViterbiUnknownUnit(t *testing.T) {
	repeat := buildRepeatSubModel(1)
	m := NewModel("m")
	m.Concatenate(repeat, 1.0)
	m.Bake()

	if _, _, err := m.SubseqViterbi([]byte("C"), "missing"); err != ErrUnknownUnit {
		t.Errorf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestSubseqViterbiEmptySequence(t *testing.T) {
	repeat := buildRepeatSubModel(1)
	m := NewModel("m")
	m.Concatenate(repeat, 1.0)
	m.Bake()

	if _, _, err := m.SubseqViterbi(nil, "0"); err != ErrEmptySequence {
		t.Errorf("expected ErrEmptySequence, got %v", err)
	}
}
