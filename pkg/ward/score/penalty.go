// Package score implements the scorer and the penalty builder: the
// additive, unitless cost function the beam driver minimises, and the
// per-staffer/per-task penalty table it is derived from at each step.
package score

import "github.com/tansey/nurse-scheduling/pkg/ward"

// Weights holds the tunable penalty magnitudes. The zero value is NOT
// usable — use DefaultWeights.
type Weights struct {
	HalfBreak                   float64
	GenObsSwitching             float64
	RMNGenObs                   float64
	HCANoBreak                  float64
	ConsecutiveObservation      float64
	RMNObservation              float64
	RMNNoBreak                  float64
	ConsecutiveUniqueObservation float64
}

// DefaultWeights returns the recommended default weightings, plus the
// supplemental ConsecutiveUniqueObservation term carried over from the
// original scheduler's CONSECUTIVE_UNIQUE_OBSERVATION_PENALTY.
func DefaultWeights() Weights {
	return Weights{
		HalfBreak:                    10000,
		GenObsSwitching:              1000,
		RMNGenObs:                    100,
		HCANoBreak:                   20,
		ConsecutiveObservation:       1,
		RMNObservation:               1.5,
		RMNNoBreak:                   0.1,
		ConsecutiveUniqueObservation: 2,
	}
}

// Table is the per-staffer/per-task penalty table build_penalties
// returns: Table[staffer][task] -> penalty contribution.
type Table map[ward.StafferID]map[ward.TaskID]float64

func (t Table) get(s ward.StafferID, task ward.TaskID) float64 {
	byTask, ok := t[s]
	if !ok {
		return 0
	}
	return byTask[task]
}

func (t Table) add(s ward.StafferID, task ward.TaskID, delta float64) {
	byTask, ok := t[s]
	if !ok {
		byTask = map[ward.TaskID]float64{}
		t[s] = byTask
	}
	byTask[task] += delta
}

// BuildPenalties computes the per-staffer/per-task penalty table for
// block, given the prefix committed for all blocks before it.
func BuildPenalties(p *ward.Problem, prefix ward.Assignment, block int, w Weights) Table {
	table := Table{}

	heldGeneralObsPrev := map[ward.StafferID]bool{}
	for _, t := range p.Tasks {
		if _, ok := t.(*ward.GeneralObservation); !ok {
			continue
		}
		if !t.Blocks().Contains(block - 1) {
			continue
		}
		for i := 0; i < t.Headcount(); i++ {
			if v, ok := prefix.Get(ward.TaskKey(block-1, t.ID(), i)); ok && v != ward.NoStaffer {
				heldGeneralObsPrev[v] = true
			}
		}
	}
	isShiftStart := p.ShiftStartBlocks.Contains(block)

	obsCounts3 := consecutiveObservationCounts(p, prefix, block)
	uniqueStreaks := consecutivePatientStreaks(p, prefix, block)

	for _, s := range p.Staffers {
		if !s.IsAvailable(block) {
			continue
		}
		halfBreak := inHalfBreak(p, prefix, s.ID, block)

		for _, t := range p.Tasks {
			if !t.Blocks().Contains(block) || !ward.StafferValid(s, t, block) {
				continue
			}

			var penalty float64
			switch tt := t.(type) {
			case *ward.GeneralObservation:
				if heldGeneralObsPrev[s.ID] || isShiftStart {
					if s.Role == ward.Nurse {
						penalty = w.RMNGenObs
					}
				} else {
					penalty = w.GenObsSwitching
				}
			case *ward.PatientObservation:
				if obsCounts3[s.ID] >= 3 {
					penalty = w.ConsecutiveObservation
					if s.Role == ward.Nurse {
						penalty += w.RMNObservation
					}
				} else if s.Role == ward.Nurse {
					penalty = w.RMNObservation
				}
				if uniqueStreaks[streakKey{s.ID, tt.ID()}] >= 4 {
					penalty += w.ConsecutiveUniqueObservation
				}
			default: // Medication: domain already restricts to Nurse.
				penalty = 0
			}

			if halfBreak {
				penalty += w.HalfBreak
			}

			table.add(s.ID, t.ID(), penalty)
		}
	}

	return table
}

// inHalfBreak reports whether s is mid an unfinished 2-block break: on
// break at block-1 but not block-2.
func inHalfBreak(p *ward.Problem, prefix ward.Assignment, sid ward.StafferID, block int) bool {
	return onBreakAt(p, prefix, sid, block-1) && !onBreakAt(p, prefix, sid, block-2)
}

func onBreakAt(p *ward.Problem, prefix ward.Assignment, sid ward.StafferID, block int) bool {
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

// consecutiveObservationCounts counts, per staffer, how many of the
// three blocks {b-3, b-2, b-1} they held ANY PatientObservation slot
// in — the "3 of the prior 3 blocks" test.
func consecutiveObservationCounts(p *ward.Problem, prefix ward.Assignment, block int) map[ward.StafferID]int {
	counts := map[ward.StafferID]int{}
	if block < 3 {
		return counts
	}
	for b := block - 3; b < block; b++ {
		seen := map[ward.StafferID]bool{}
		for _, po := range p.PatientObservationTasks() {
			if !po.Blocks().Contains(b) {
				continue
			}
			for i := 0; i < po.Headcount(); i++ {
				if v, ok := prefix.Get(ward.TaskKey(b, po.ID(), i)); ok && v != ward.NoStaffer {
					seen[v] = true
				}
			}
		}
		for s := range seen {
			counts[s]++
		}
	}
	return counts
}

type streakKey struct {
	staffer ward.StafferID
	task    ward.TaskID
}

// consecutivePatientStreaks counts, per (staffer, patient-observation
// task), the length of the run of immediately preceding blocks in
// which that same staffer held that same task — a supplemental
// same-identity run length, distinct from the cross-task 3-of-3 test
// above.
func consecutivePatientStreaks(p *ward.Problem, prefix ward.Assignment, block int) map[streakKey]int {
	streaks := map[streakKey]int{}
	for _, po := range p.PatientObservationTasks() {
		for i := 0; i < po.Headcount(); i++ {
			b := block - 1
			run := 0
			var holder ward.StafferID
			first := true
			for b >= 0 && po.Blocks().Contains(b) {
				v, ok := prefix.Get(ward.TaskKey(b, po.ID(), i))
				if !ok || v == ward.NoStaffer {
					break
				}
				if first {
					holder = v
					first = false
				} else if v != holder {
					break
				}
				run++
				b--
			}
			if run > 0 {
				key := streakKey{holder, po.ID()}
				if run > streaks[key] {
					streaks[key] = run
				}
			}
		}
	}
	return streaks
}
