package hmm

import "testing"

// P1 + P2: index bijection and sentinel positions.
func TestIndexingTotalityAndSentinels(t *testing.T) {
	sm := buildRepeatSubModel(3)
	m := NewModel("m")
	m.Concatenate(sm, 1.0)
	m.Bake()

	seen := make(map[int]bool)
	for _, s := range m.States {
		idx, ok := m.StateIndex(s)
		if !ok {
			t.Fatalf("state %s missing index", s.Name)
		}
		if seen[idx] {
			t.Fatalf("duplicate index %d", idx)
		}
		seen[idx] = true
	}
	if len(seen) != len(m.States) {
		t.Fatalf("index set size %d != state count %d", len(seen), len(m.States))
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

// P3: each sub-model's states occupy a contiguous index range.
func TestSubModelContiguity(t *testing.T) {
	sm1 := buildRepeatSubModel(1)
	sm2 := buildRepeatSubModel(2)
	m := NewModel("m")
	m.Concatenate(sm1, 1.0)
	m.Concatenate(sm2, 1.0)
	m.Bake()

	checkContiguous := func(sm *SubModel) {
		indices := make([]int, 0, len(sm.States))
		for _, s := range sm.States {
			idx, _ := m.StateIndex(s)
			indices = append(indices, idx)
		}
		for i := 1; i < len(indices); i++ {
			if indices[i] != indices[i-1]+1 {
				t.Errorf("sub-model %s not contiguous at %d: %v", sm.Name, i, indices)
				return
			}
		}
	}
	checkContiguous(sm1)
	checkContiguous(sm2)
}

// P4: sanity checker flags a state whose outgoing transitions don't sum to 1.
func TestSanityCheckerFlagsBadTransitions(t *testing.T) {
	sm := NewSubModel("bad")
	a := NewEmittingState("M0_0", map[byte]float64{'A': 1.0})
	sm.AddState(a)
	sm.SetTransition(sm.Start, a, 0.5)
	sm.SetTransition(a, sm.End, 1.0)

	m := NewModel("bad")
	m.Concatenate(sm, 1.0)
	m.Bake()

	violations := m.CheckSanityOfTransitionProb(false)
	found := false
	for _, v := range violations {
		if v.State == sm.Start.Name {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a sanity violation on %s, got %v", sm.Start.Name, violations)
	}
}

// P6: a decoded path only uses positive-probability edges.
func TestPathValidity(t *testing.T) {
	sm := buildRepeatSubModel(1)
	m := NewModel("m")
	m.Concatenate(sm, 1.0)
	m.Bake()

	_, path, err := m.Viterbi([]byte("C"))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(path)-1; i++ {
		from, to := path[i].State, path[i+1].State
		var p float64
		for _, smp := range m.SubModels {
			if v, ok := smp.trans[from][to]; ok {
				p = v
			}
		}
		if p <= 0 {
			t.Errorf("path uses zero/absent edge %s -> %s", from.Name, to.Name)
		}
	}
}
