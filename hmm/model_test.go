package hmm

import "testing"

// Scenario 1: trivial two-state model.
func TestBakeTrivialTwoStateModel(t *testing.T) {
	sm := NewSubModel("trivial")
	sm.SetTransition(sm.Start, sm.End, 1.0)

	m := NewModel("trivial")
	m.Concatenate(sm, 1.0)
	m.Bake()

	if !m.IsBaked() {
		t.Fatal("expected model to be baked")
	}
	if len(m.States) != 2 {
		t.Fatalf("expected 2 states, got %d", len(m.States))
	}
	si, _ := m.StateIndex(m.Start)
	ei, _ := m.StateIndex(m.End)
	if si != 0 {
		t.Errorf("start index = %d, want 0", si)
	}
	if ei != len(m.States)-1 {
		t.Errorf("end index = %d, want %d", ei, len(m.States)-1)
	}
}

// Scenario 2: two-state emitter.
func TestTwoStateEmitterViterbiAndForward(t *testing.T) {
	sm := NewSubModel("emit")
	m0 := NewEmittingState("M0_0", map[byte]float64{'A': 1.0})
	m1 := NewEmittingState("M1_0", map[byte]float64{'C': 1.0})
	sm.AddState(m0)
	sm.AddState(m1)
	sm.SetTransition(sm.Start, m0, 1.0)
	sm.SetTransition(m0, m1, 1.0)
	sm.SetTransition(m1, sm.End, 1.0)

	m := NewModel("emit")
	m.Concatenate(sm, 1.0)
	m.Bake()

	lp, err := m.LogProbability([]byte("AC"))
	if err != nil {
		t.Fatal(err)
	}
	if lp != 0 {
		t.Errorf("logp = %v, want 0 (log 1)", lp)
	}

	vlp, path, err := m.Viterbi([]byte("AC"))
	if err != nil {
		t.Fatal(err)
	}
	if vlp != 0 {
		t.Errorf("viterbi logp = %v, want 0", vlp)
	}
	if len(path) != 4 {
		t.Fatalf("path length = %d, want 4 (start, M0, M1, end)", len(path))
	}
}

// Scenario 4: bake idempotence.
func TestBakeIdempotence(t *testing.T) {
	sm := buildRepeatSubModel(2)
	m := NewModel("repeat")
	m.Concatenate(sm, 1.0)
	m.Bake()
	first := stateNames(m.States)

	m.Bake()
	second := stateNames(m.States)

	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("order differs at %d: %s vs %s", i, first[i], second[i])
		}
	}
}

// Scenario 6: concatenate unbakes.
func TestConcatenateUnbakes(t *testing.T) {
	sm1 := NewSubModel("a")
	sm1.SetTransition(sm1.Start, sm1.End, 1.0)
	m := NewModel("m")
	m.Concatenate(sm1, 1.0)
	m.Bake()
	if !m.IsBaked() {
		t.Fatal("expected baked")
	}

	sm2 := NewSubModel("b")
	sm2.SetTransition(sm2.Start, sm2.End, 1.0)
	m.Concatenate(sm2, 0.5)
	if m.IsBaked() {
		t.Fatal("expected concatenate to unbake the model")
	}

	if _, _, err := m.Viterbi([]byte("A")); err != ErrNotBaked {
		t.Errorf("expected ErrNotBaked, got %v", err)
	}
	if _, err := m.LogProbability([]byte("A")); err != ErrNotBaked {
		t.Errorf("expected ErrNotBaked, got %v", err)
	}
}

func TestDenseTransitionMatrixMatchesSetTransitions(t *testing.T) {
	sm := NewSubModel("m")
	a := NewEmittingState("M0_0", map[byte]float64{'A': 1.0})
	sm.AddState(a)
	sm.SetTransition(sm.Start, a, 0.6)
	sm.SetTransition(a, sm.End, 1.0)

	m := NewModel("m")
	m.Concatenate(sm, 1.0)
	m.Bake()

	mat := m.DenseTransitionMatrix()
	si, _ := m.StateIndex(sm.Start)
	ai, _ := m.StateIndex(a)
	if mat[si][ai] != 0.6 {
		t.Errorf("mat[start][a] = %v, want 0.6", mat[si][ai])
	}
}
