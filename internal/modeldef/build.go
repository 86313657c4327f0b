package modeldef

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/berntpopp/adVNTR/hmm"
)

const bases = "ACGT"

// profilePositions holds, per pattern position, the Match/Insert/Delete states of one
// profile chain -- shared machinery for the suffix, repeat-unit, and prefix matchers.
type profilePositions struct {
	match  []*hmm.State
	insert []*hmm.State
	delete []*hmm.State
}

// buildProfilePositions creates and wires one linear chain of Match/Insert/Delete states for
// pattern, named with the given unit id, and adds them to sm. Intra-position and
// position-to-position transitions are set; the caller wires the chain's entry and exit into
// its own sub-model/unit boundary states.
func buildProfilePositions(sm *hmm.SubModel, unitID, pattern string, insertError, deleteError float64) profilePositions {
	L := len(pattern)
	pp := profilePositions{
		match:  make([]*hmm.State, L),
		insert: make([]*hmm.State, L),
		delete: make([]*hmm.State, L),
	}
	matchProb := 1 - insertError - deleteError
	for i := 0; i < L; i++ {
		dist := map[byte]float64{}
		for _, b := range []byte(bases) {
			if b == pattern[i] {
				dist[b] = 1 - 0.75*insertError
			} else {
				dist[b] = 0.25 * insertError
			}
		}
		pp.match[i] = hmm.NewEmittingState(fmt.Sprintf("M%d_%s", i, unitID), dist)
		pp.insert[i] = hmm.NewEmittingState(fmt.Sprintf("I%d_%s", i, unitID), map[byte]float64{
			'A': 0.25, 'C': 0.25, 'G': 0.25, 'T': 0.25,
		})
		pp.delete[i] = hmm.NewSilentState(fmt.Sprintf("D%d_%s", i, unitID))
		sm.AddState(pp.match[i])
		sm.AddState(pp.insert[i])
		sm.AddState(pp.delete[i])
	}
	for i := 0; i < L; i++ {
		sm.SetTransition(pp.insert[i], pp.insert[i], insertError)
		sm.SetTransition(pp.match[i], pp.insert[i], insertError)
		if i+1 < L {
			sm.SetTransition(pp.match[i], pp.match[i+1], matchProb)
			sm.SetTransition(pp.match[i], pp.delete[i+1], deleteError)
			sm.SetTransition(pp.insert[i], pp.match[i+1], 1-insertError)
			sm.SetTransition(pp.delete[i], pp.delete[i+1], deleteError)
			sm.SetTransition(pp.delete[i], pp.match[i+1], 1-deleteError)
		}
	}
	return pp
}

// BuildSuffixMatcher builds a left-flank matcher where the entry can jump directly to any
// match position (uniform 1/len(pattern) fan-out), mirroring get_suffix_matcher_hmm.
func BuildSuffixMatcher(pattern string, errRate float64) *hmm.SubModel {
	sm := hmm.NewSubModel("suffix")
	if pattern == "" {
		sm.SetTransition(sm.Start, sm.End, 1.0)
		return sm
	}
	insertError, deleteError := ModelDefinition{MaxErrorRate: errRate}.errorBudget()
	pp := buildProfilePositions(sm, "suffix", pattern, insertError, deleteError)
	L := len(pattern)
	entryProb := 1.0 / float64(L)
	for i := 0; i < L; i++ {
		sm.SetTransition(sm.Start, pp.match[i], entryProb)
	}
	exitProb := 1 - insertError - deleteError
	sm.SetTransition(pp.match[L-1], sm.End, exitProb)
	sm.SetTransition(pp.insert[L-1], sm.End, 1-insertError)
	sm.SetTransition(pp.delete[L-1], sm.End, 1-deleteError)
	return sm
}

// BuildPrefixMatcher builds a right-flank matcher that must enter at match position 0,
// mirroring get_prefix_matcher_hmm.
func BuildPrefixMatcher(pattern string, errRate float64) *hmm.SubModel {
	sm := hmm.NewSubModel("prefix")
	if pattern == "" {
		sm.SetTransition(sm.Start, sm.End, 1.0)
		return sm
	}
	insertError, deleteError := ModelDefinition{MaxErrorRate: errRate}.errorBudget()
	pp := buildProfilePositions(sm, "prefix", pattern, insertError, deleteError)
	sm.SetTransition(sm.Start, pp.match[0], 1-insertError-deleteError)
	sm.SetTransition(sm.Start, pp.delete[0], deleteError)
	sm.SetTransition(sm.Start, pp.insert[0], insertError)
	L := len(pattern)
	for i := 0; i < L; i++ {
		sm.SetTransition(pp.match[i], sm.End, 1.0/float64(L-i))
	}
	return sm
}

// BuildRepeatMatcher builds `copies` back-to-back profile chains for pattern, separated by
// silent unit_start_<i>/unit_end_<i> boundary states, mirroring
// get_constant_number_of_repeats_matcher_hmm.
func BuildRepeatMatcher(pattern string, copies int, errRate float64) *hmm.SubModel {
	insertError, deleteError := ModelDefinition{MaxErrorRate: errRate}.errorBudget()
	matchProb := 1 - insertError - deleteError
	sm := hmm.NewSubModel("repeat")
	L := len(pattern)

	prevExit := sm.Start
	for u := 0; u < copies; u++ {
		unitID := fmt.Sprintf("%d", u)
		ustart := hmm.NewSilentState("unit_start_" + unitID)
		uend := hmm.NewSilentState("unit_end_" + unitID)
		sm.AddState(ustart)
		sm.AddState(uend)
		sm.SetTransition(prevExit, ustart, 1.0)

		pp := buildProfilePositions(sm, unitID, pattern, insertError, deleteError)
		sm.SetTransition(ustart, pp.match[0], matchProb)
		sm.SetTransition(ustart, pp.delete[0], deleteError)
		sm.SetTransition(ustart, pp.insert[0], insertError)

		sm.SetTransition(pp.match[L-1], uend, matchProb)
		sm.SetTransition(pp.insert[L-1], uend, 1-insertError)
		sm.SetTransition(pp.delete[L-1], uend, 1-deleteError)

		prevExit = uend
	}
	sm.SetTransition(prevExit, sm.End, 1.0)
	return sm
}

// BuildReadMatcher concatenates a suffix, repeat, and prefix sub-model built from def into a
// single baked Model, then applies the fork/early-exit rewiring get_read_matcher_model
// (hmm_utils.py) performs on its dense transition matrix after the naive concatenation: the
// model's start forks into both the suffix matcher's body and directly into the repeat band's
// first unit, and every repeat match state gets a rescaled early-exit edge straight to the
// model's end. Without this, a read that starts mid-repeat (no usable left flank) or ends
// early (no usable right flank, or fewer observed copies than the definition's Copies) can
// never be recovered by Viterbi -- every path is forced through the full suffix-then-all-units
// chain.
func BuildReadMatcher(def ModelDefinition, opts ...hmm.BakeOption) (*hmm.Model, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	copies := def.Copies
	if copies <= 0 {
		copies = 1
	}

	suffix := BuildSuffixMatcher(def.LeftFlank, def.MaxErrorRate)
	repeat := BuildRepeatMatcher(def.Pattern, copies, def.MaxErrorRate)
	prefix := BuildPrefixMatcher(def.RightFlank, def.MaxErrorRate)

	applyVariableRepeatWiring(suffix, repeat, prefix)

	m := hmm.NewModel(def.Name)
	m.Concatenate(suffix, 1.0)
	m.Concatenate(repeat, 1.0)
	m.Concatenate(prefix, 1.0)
	m.Bake(opts...)
	return m, nil
}

// repeatMatchStates scans repeat's states for its Match states (named "M<pos>_<unitID>" with a
// purely numeric unitID, which excludes the suffix/prefix matchers' own "M..._suffix"/
// "M..._prefix" states), returning the subset belonging to unit 0 and the full set.
func repeatMatchStates(repeat *hmm.SubModel) (firstUnit, all []*hmm.State) {
	for _, s := range repeat.States {
		if !strings.HasPrefix(s.Name, "M") {
			continue
		}
		us := strings.LastIndexByte(s.Name, '_')
		if us < 0 {
			continue
		}
		unitIdx, err := strconv.Atoi(s.Name[us+1:])
		if err != nil {
			continue
		}
		all = append(all, s)
		if unitIdx == 0 {
			firstUnit = append(firstUnit, s)
		}
	}
	return firstUnit, all
}

// applyVariableRepeatWiring mirrors get_read_matcher_model's matrix surgery: rescale the
// model's start's existing fan-out to 0.3 of its original weight, add a 0.7-weighted fork from
// start directly into every unit-0 repeat match state, then give every repeat match state
// (every unit, not just the first) a rescaled early-exit edge straight to the model's end.
func applyVariableRepeatWiring(suffix, repeat, prefix *hmm.SubModel) {
	start := suffix.Start
	end := prefix.End

	for to, p := range suffix.OutgoingTransitions(start) {
		suffix.SetTransition(start, to, p*0.3)
	}

	firstUnit, all := repeatMatchStates(repeat)
	if len(firstUnit) > 0 {
		share := 0.7 / float64(len(firstUnit))
		for _, s := range firstUnit {
			suffix.SetTransition(start, s, share)
		}
	}

	if len(all) > 0 {
		toEnd := 0.7 / float64(len(all))
		total := 1 + toEnd
		for _, s := range all {
			for to, p := range repeat.OutgoingTransitions(s) {
				repeat.SetTransition(s, to, p/total)
			}
			repeat.SetTransition(s, end, toEnd/total)
		}
	}
}
