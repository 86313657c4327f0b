package hmm

import (
	"sort"
	"strconv"
	"strings"
)

type parsedName struct {
	kind   byte // 'I', 'M', 'D', 'S' (dummy start), 'E' (dummy end)
	index  int
	unitID string
	ok     bool
}

func parseStateName(name string) parsedName {
	if idx := strings.Index(name, "_start_"); idx >= 0 {
		return parsedName{kind: 'S', unitID: name[idx+len("_start_"):], ok: true}
	}
	if idx := strings.Index(name, "_end_"); idx >= 0 {
		return parsedName{kind: 'E', unitID: name[idx+len("_end_"):], ok: true}
	}
	if len(name) < 2 {
		return parsedName{}
	}
	t := name[0]
	if t != 'I' && t != 'M' && t != 'D' {
		return parsedName{}
	}
	rest := name[1:]
	us := strings.IndexByte(rest, '_')
	if us < 0 {
		return parsedName{}
	}
	n, err := strconv.Atoi(rest[:us])
	if err != nil {
		return parsedName{}
	}
	return parsedName{kind: t, index: n, unitID: rest[us+1:], ok: true}
}

type unitBucket struct {
	dummyStart []*State
	dummyEnd   []*State
	inserts    map[int]*State
	matches    map[int]*State
	deletes    map[int]*State
}

// sortTopology reorders sm.States into canonical profile order: start, then per unit_id
// (ascending lexicographic) the dummy-start states, the first insert state, the D/M/I triples
// for each remaining position in ascending order, and the dummy-end states, then end.
func sortTopology(sm *SubModel) {
	if len(sm.States) <= 2 {
		return
	}

	buckets := map[string]*unitBucket{}
	var order []string
	bucketFor := func(id string) *unitBucket {
		b, ok := buckets[id]
		if !ok {
			b = &unitBucket{inserts: map[int]*State{}, matches: map[int]*State{}, deletes: map[int]*State{}}
			buckets[id] = b
			order = append(order, id)
		}
		return b
	}

	for _, s := range sm.States {
		if s == sm.Start || s == sm.End {
			continue
		}
		p := parseStateName(s.Name)
		if !p.ok {
			continue
		}
		b := bucketFor(p.unitID)
		switch p.kind {
		case 'S':
			b.dummyStart = append(b.dummyStart, s)
		case 'E':
			b.dummyEnd = append(b.dummyEnd, s)
		case 'I':
			b.inserts[p.index] = s
		case 'M':
			b.matches[p.index] = s
		case 'D':
			b.deletes[p.index] = s
		}
	}
	sort.Strings(order)

	result := []*State{sm.Start}
	for _, id := range order {
		b := buckets[id]
		result = append(result, b.dummyStart...)

		insertIdxs := make([]int, 0, len(b.inserts))
		for idx := range b.inserts {
			insertIdxs = append(insertIdxs, idx)
		}
		sort.Ints(insertIdxs)
		if len(insertIdxs) > 0 {
			first := insertIdxs[0]
			result = append(result, b.inserts[first])
			delete(b.inserts, first)
		}

		allIdx := map[int]bool{}
		for idx := range b.deletes {
			allIdx[idx] = true
		}
		for idx := range b.matches {
			allIdx[idx] = true
		}
		for idx := range b.inserts {
			allIdx[idx] = true
		}
		sortedIdx := make([]int, 0, len(allIdx))
		for idx := range allIdx {
			sortedIdx = append(sortedIdx, idx)
		}
		sort.Ints(sortedIdx)
		for _, idx := range sortedIdx {
			if d, ok := b.deletes[idx]; ok {
				result = append(result, d)
			}
			if mt, ok := b.matches[idx]; ok {
				result = append(result, mt)
			}
			if in, ok := b.inserts[idx]; ok {
				result = append(result, in)
			}
		}
		result = append(result, b.dummyEnd...)
	}
	result = append(result, sm.End)
	sm.States = result
}

// sortSubModelByName is the alternative ordering used for visualization: plain lexicographic
// by name, start first and end last. Decoders still work under this order since silent-state
// relaxation within a column is iterated rather than assumed single-pass.
func sortSubModelByName(sm *SubModel) {
	if len(sm.States) <= 2 {
		return
	}
	rest := make([]*State, 0, len(sm.States)-2)
	for _, s := range sm.States {
		if s == sm.Start || s == sm.End {
			continue
		}
		rest = append(rest, s)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Name < rest[j].Name })
	result := make([]*State, 0, len(sm.States))
	result = append(result, sm.Start)
	result = append(result, rest...)
	result = append(result, sm.End)
	sm.States = result
}
