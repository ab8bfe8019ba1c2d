// Package problem validates a ward.Problem before the beam driver runs,
// surfacing every violated invariant in one InvalidProblemError rather
// than failing on the first (mirrors Nomad's agent/config validation,
// which accumulates errors via the same go-multierror pattern).
package problem

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/tansey/nurse-scheduling/pkg/ward"
)

// Validate checks p for structural problems: malformed block/staff
// counts, an inverted or negative break configuration, duplicate
// staffer ids, and tasks no staffer in the pool could ever fill by
// role or sex. Returns a *ward.InvalidProblemError, or nil if p is
// sound.
func Validate(p *ward.Problem) error {
	var merr *multierror.Error

	if p.Blocks <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("blocks must be positive, got %d", p.Blocks))
	}
	if len(p.BlockTimes) != p.Blocks {
		merr = multierror.Append(merr, fmt.Errorf("block_times has %d entries, want %d", len(p.BlockTimes), p.Blocks))
	}
	if len(p.Staffers) == 0 {
		merr = multierror.Append(merr, fmt.Errorf("no staffers defined"))
	}
	// max_break_block == min_break_block-1 is the empty window (no breaks).
	if p.MinBreakBlock > p.MaxBreakBlock+1 {
		merr = multierror.Append(merr, fmt.Errorf("min_break_block (%d) must not exceed max_break_block+1 (%d)", p.MinBreakBlock, p.MaxBreakBlock+1))
	}
	if p.MaxOnBreak < 0 {
		merr = multierror.Append(merr, fmt.Errorf("max_on_break must not be negative, got %d", p.MaxOnBreak))
	}
	if p.BeamWidth <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("beam_width must be positive, got %d", p.BeamWidth))
	}

	seen := map[ward.StafferID]bool{}
	for _, s := range p.Staffers {
		if seen[s.ID] {
			merr = multierror.Append(merr, fmt.Errorf("duplicate staffer id %d (%s)", s.ID, s.Name))
		}
		seen[s.ID] = true
	}

	for _, t := range p.Tasks {
		if t.Headcount() <= 0 {
			merr = multierror.Append(merr, fmt.Errorf("task %s: headcount must be positive, got %d", t.ID(), t.Headcount()))
			continue
		}
		validateEverCoverable(p, t, &merr)
	}

	return ward.NewInvalidProblemError(merr)
}

// validateEverCoverable checks that enough role/sex-eligible staff
// exist in the whole pool to ever fill the task's headcount, ignoring
// per-block availability — a task that requires more simultaneous
// eligible staff than could ever exist, regardless of scheduling. A
// per-block shortfall caused by availability gaps is a dynamic
// feasibility question for the enumerator (NoFeasibleAssignment), not
// a structural one caught here.
func validateEverCoverable(p *ward.Problem, t ward.Task, merr **multierror.Error) {
	eligible := 0
	for _, s := range p.Staffers {
		if ward.TaskValid(t, s) {
			eligible++
		}
	}
	if eligible < t.Headcount() {
		*merr = multierror.Append(*merr, fmt.Errorf(
			"task %s: needs %d staffer(s), only %d ever eligible by role/sex",
			t.ID(), t.Headcount(), eligible,
		))
	}
}
