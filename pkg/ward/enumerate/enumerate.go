// Package enumerate implements the candidate enumerator: a
// backtracking constraint-satisfaction solver with forward-check that,
// for one block, enumerates every assignment of staff to that block's
// task and break slots satisfying the hard constraints (availability,
// role/sex validity, per-block uniqueness, break-window rules).
//
// The search itself is a recursive DFS with forward-check adapted
// from general finite-domain unification search to this problem's
// fixed slot/domain shape, with slots ordered restrictive-domain-first
// the way a first-fail variable-ordering heuristic would order them.
package enumerate

import (
	"github.com/tansey/nurse-scheduling/pkg/ward"
)

type slot struct {
	key    ward.SlotKey
	domain []ward.StafferID // NoStaffer may appear, for break slots only
	fixed  bool             // true for pre-bound continuation breaks
}

// Enumerate returns every candidate for block, given the committed
// prefix for all earlier blocks. An empty, non-nil slice means the
// block has no feasible assignment at all from this prefix.
func Enumerate(p *ward.Problem, block int, prefix ward.Assignment) []ward.Candidate {
	slots := buildSlots(p, block, prefix)

	results := make([]ward.Candidate, 0)
	current := make(ward.Candidate, len(slots))
	used := make(map[ward.StafferID]bool, len(slots))

	var backtrack func(i int)
	backtrack = func(i int) {
		if i == len(slots) {
			out := make(ward.Candidate, len(current))
			for k, v := range current {
				out[k] = v
			}
			results = append(results, out)
			return
		}
		sl := slots[i]
		for _, v := range sl.domain {
			if v != ward.NoStaffer {
				if used[v] {
					continue // forward check: already taken this block
				}
				used[v] = true
			}
			current[sl.key] = v
			backtrack(i + 1)
			delete(current, sl.key)
			if v != ward.NoStaffer {
				used[v] = false
			}
		}
	}
	backtrack(0)

	return results
}

// buildSlots computes slots(b) and each slot's domain, ordered
// restrictive-task-slots-first: (i) male-only or nurse-only task
// slots, (ii) general observation, (iii) other observations, (iv)
// break slots last, continuation breaks pre-bound.
func buildSlots(p *ward.Problem, block int, prefix ward.Assignment) []slot {
	var restrictive, general, other []slot

	mustContinue := continuingStaff(p, block, prefix)

	for _, t := range p.Tasks {
		if !t.Blocks().Contains(block) {
			continue
		}
		dom := taskDomain(p, t, block, mustContinue)
		for i := 0; i < t.Headcount(); i++ {
			s := slot{key: ward.TaskKey(block, t.ID(), i), domain: dom}
			switch tt := t.(type) {
			case *ward.GeneralObservation:
				general = append(general, s)
			case *ward.PatientObservation:
				if tt.MaleOnly() {
					restrictive = append(restrictive, s)
				} else {
					other = append(other, s)
				}
			default: // Medication
				restrictive = append(restrictive, s)
			}
		}
	}

	slots := make([]slot, 0, len(restrictive)+len(general)+len(other)+p.MaxOnBreak)
	slots = append(slots, restrictive...)
	slots = append(slots, general...)
	slots = append(slots, other...)
	slots = append(slots, breakSlots(p, block, prefix, mustContinue)...)
	return slots
}

// taskDomain is {s : s.available ∋ block ∧ task_valid(t, s)}, minus
// any staffer forced onto a break slot this block by I5 continuation.
func taskDomain(p *ward.Problem, t ward.Task, block int, mustContinue []ward.StafferID) []ward.StafferID {
	var dom []ward.StafferID
	for _, s := range p.Staffers {
		if ward.StafferValid(s, t, block) && !containsID(mustContinue, s.ID) {
			dom = append(dom, s.ID)
		}
	}
	return dom
}

// breakSlots computes each break slot's domain at block, including the
// continuation-pairing rule: staff who must finish a break they
// started at block-1 are pre-bound (forced, no None option); the
// remaining break slots get the free-choice domain.
func breakSlots(p *ward.Problem, block int, prefix ward.Assignment, mustContinue []ward.StafferID) []slot {
	if !p.BreaksActiveAt(block) {
		return nil
	}

	out := make([]slot, 0, p.MaxOnBreak)
	idx := 0
	for _, sid := range mustContinue {
		if idx >= p.MaxOnBreak {
			break // infeasible: more continuations than break capacity
		}
		out = append(out, slot{key: ward.BreakKey(block, idx), domain: []ward.StafferID{sid}, fixed: true})
		idx++
	}

	if !p.InBreakWindow(block) {
		// Trailing continuation block: no new breaks may start here,
		// only finish. Remaining slots (if any) are simply empty.
		for ; idx < p.MaxOnBreak; idx++ {
			out = append(out, slot{key: ward.BreakKey(block, idx), domain: []ward.StafferID{ward.NoStaffer}})
		}
		return out
	}

	alreadyUsed := usedBreak(p, block, prefix)
	var free []ward.StafferID
	free = append(free, ward.NoStaffer)
	for _, s := range p.AvailableAt(block) {
		if alreadyUsed[s.ID] || containsID(mustContinue, s.ID) {
			continue
		}
		free = append(free, s.ID)
	}
	for ; idx < p.MaxOnBreak; idx++ {
		out = append(out, slot{key: ward.BreakKey(block, idx), domain: free})
	}
	return out
}

func containsID(xs []ward.StafferID, id ward.StafferID) bool {
	for _, x := range xs {
		if x == id {
			return true
		}
	}
	return false
}

// onBreak reports whether staffer sid holds any break slot at block.
func onBreak(p *ward.Problem, prefix ward.Assignment, sid ward.StafferID, block int) bool {
	if block < 0 || !p.BreaksActiveAt(block) {
		return false
	}
	for i := 0; i < p.MaxOnBreak; i++ {
		if v, ok := prefix.Get(ward.BreakKey(block, i)); ok && v == sid {
			return true
		}
	}
	return false
}

// continuingStaff returns staff on break at block-1 but not block-2:
// those who must remain on break at block.
func continuingStaff(p *ward.Problem, block int, prefix ward.Assignment) []ward.StafferID {
	var out []ward.StafferID
	for _, s := range p.Staffers {
		if onBreak(p, prefix, s.ID, block-1) && !onBreak(p, prefix, s.ID, block-2) {
			out = append(out, s.ID)
		}
	}
	return out
}

// usedBreak returns the set of staff who have already taken (any part
// of) a break at some block strictly before block-1.
func usedBreak(p *ward.Problem, block int, prefix ward.Assignment) map[ward.StafferID]bool {
	used := map[ward.StafferID]bool{}
	start := p.MinBreakBlock
	if start < 0 {
		start = 0
	}
	// b-1 is excluded: a break held exactly at block-1 is the
	// continuation case, handled by continuingStaff, not "an earlier
	// already-used break".
	for b := start; b < block-1; b++ {
		if !p.BreaksActiveAt(b) {
			continue
		}
		for i := 0; i < p.MaxOnBreak; i++ {
			if v, ok := prefix.Get(ward.BreakKey(b, i)); ok && v != ward.NoStaffer {
				used[v] = true
			}
		}
	}
	return used
}
