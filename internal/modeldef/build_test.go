package modeldef

import (
	"strings"
	"testing"
)

func TestBuildReadMatcherRepeatBandHasOnePairPerCopy(t *testing.T) {
	def := ModelDefinition{
		Name:         "test",
		Pattern:      "CAG",
		LeftFlank:    "TTAG",
		RightFlank:   "GATT",
		Copies:       3,
		MaxErrorRate: 0.1,
	}
	m, err := BuildReadMatcher(def)
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsBaked() {
		t.Fatal("expected a baked model")
	}

	starts, ends := 0, 0
	for _, s := range m.States {
		if strings.HasPrefix(s.Name, "unit_start_") {
			starts++
		}
		if strings.HasPrefix(s.Name, "unit_end_") {
			ends++
		}
	}
	if starts != def.Copies || ends != def.Copies {
		t.Errorf("got %d unit_start and %d unit_end states, want %d each", starts, ends, def.Copies)
	}
}

func TestBuildReadMatcherViterbiRecoversRepeatedSequence(t *testing.T) {
	def := ModelDefinition{
		Name:         "test",
		Pattern:      "CAG",
		LeftFlank:    "TTAG",
		RightFlank:   "GATT",
		Copies:       3,
		MaxErrorRate: 0.1,
	}
	m, err := BuildReadMatcher(def)
	if err != nil {
		t.Fatal(err)
	}

	seq := []byte(def.LeftFlank + strings.Repeat(def.Pattern, def.Copies) + def.RightFlank)
	logp, path, err := m.Viterbi(seq)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) == 0 {
		t.Fatal("expected a non-empty path")
	}
	if logp > 0 {
		t.Errorf("logp = %v, expected <= 0", logp)
	}

	seenUnit := map[string]bool{}
	for _, step := range path {
		if us := strings.LastIndexByte(step.State.Name, '_'); us >= 0 {
			seenUnit[step.State.Name[us+1:]] = true
		}
	}
	for _, unit := range []string{"0", "1", "2"} {
		if !seenUnit[unit] {
			t.Errorf("path never visits unit %s states: %v", unit, path)
		}
	}
}

func TestValidateRejectsEmptyPattern(t *testing.T) {
	def := ModelDefinition{Pattern: "", MaxErrorRate: 0.1}
	if err := def.Validate(); err != ErrPatternEmpty {
		t.Errorf("expected ErrPatternEmpty, got %v", err)
	}
}
