package score

import "github.com/tansey/nurse-scheduling/pkg/ward"

// Score computes the additive cost of candidate at block, given the
// penalty table built from the prefix it extends. Lower is better.
func Score(p *ward.Problem, candidate ward.Candidate, w Weights, table Table) float64 {
	var total float64
	for key, sid := range candidate {
		if key.Kind == ward.BreakSlotKind {
			if sid == ward.NoStaffer {
				continue
			}
			s := p.StafferByID(sid)
			if s.Role == ward.Nurse {
				total -= w.RMNNoBreak
			} else {
				total -= w.HCANoBreak
			}
			continue
		}
		total += table.get(sid, key.Task)
	}
	return total
}
