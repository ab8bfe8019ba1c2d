package enumerate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tansey/nurse-scheduling/pkg/ward"
)

func mkStaffer(id int, role ward.Role, sex ward.Sex, available ...int) *ward.Staffer {
	return &ward.Staffer{
		ID:        ward.StafferID(id),
		Name:      "s",
		Role:      role,
		Sex:       sex,
		Available: ward.NewBlockSet(available...),
	}
}

// Two equally-eligible assistants and one general-observation slot
// should yield exactly two candidates at block 0: each assistant
// holding the slot.
func TestEnumerateSingleSlotTwoCandidates(t *testing.T) {
	p := &ward.Problem{
		Blocks:        1,
		MinBreakBlock: -1,
		MaxBreakBlock: -2,
		MaxOnBreak:    0,
		Staffers: []*ward.Staffer{
			mkStaffer(1, ward.Assistant, ward.Female, 0),
			mkStaffer(2, ward.Assistant, ward.Female, 0),
		},
		Tasks: []ward.Task{
			ward.NewGeneralObservation("genobs", ward.NewBlockSet(0)),
		},
	}

	candidates := Enumerate(p, 0, ward.NewAssignment())
	require.Len(t, candidates, 2)
}

// A medication slot with no available nurse produces zero candidates:
// the empty, non-nil slice meaning "infeasible at this block".
func TestEnumerateNoEligibleStaffIsInfeasible(t *testing.T) {
	p := &ward.Problem{
		Blocks:        1,
		MinBreakBlock: -1,
		MaxBreakBlock: -2,
		MaxOnBreak:    0,
		Staffers: []*ward.Staffer{
			mkStaffer(1, ward.Assistant, ward.Female, 0),
		},
		Tasks: []ward.Task{
			ward.NewMedication("med", ward.NewBlockSet(0)),
		},
	}

	candidates := Enumerate(p, 0, ward.NewAssignment())
	require.Empty(t, candidates)
	require.NotNil(t, candidates)
}

// Forward checking: one task slot and one break slot competing for the
// same sole staffer must never both claim her in the same candidate.
func TestEnumerateForwardChecksUniqueness(t *testing.T) {
	p := &ward.Problem{
		Blocks:        1,
		MinBreakBlock: 0,
		MaxBreakBlock: 0,
		MaxOnBreak:    1,
		Staffers: []*ward.Staffer{
			mkStaffer(1, ward.Assistant, ward.Female, 0),
		},
		Tasks: []ward.Task{
			ward.NewGeneralObservation("genobs", ward.NewBlockSet(0)),
		},
	}

	candidates := Enumerate(p, 0, ward.NewAssignment())
	for _, c := range candidates {
		taskHolder, taskOK := c[ward.TaskKey(0, "genobs", 0)]
		breakHolder, breakOK := c[ward.BreakKey(0, 0)]
		if taskOK && breakOK && breakHolder != ward.NoStaffer {
			require.NotEqual(t, taskHolder, breakHolder)
		}
	}
}

// A staffer on break at block 1 (break window [1,2]) must be forced to
// continue the break at block 2 — I5's continuation invariant — and so
// must not appear in that block's task-slot candidates at all.
func TestEnumerateContinuationForcesBreak(t *testing.T) {
	p := &ward.Problem{
		Blocks:        3,
		MinBreakBlock: 1,
		MaxBreakBlock: 2,
		MaxOnBreak:    1,
		Staffers: []*ward.Staffer{
			mkStaffer(1, ward.Assistant, ward.Female, 0, 1, 2),
			mkStaffer(2, ward.Assistant, ward.Female, 0, 1, 2),
		},
		Tasks: []ward.Task{
			ward.NewGeneralObservation("genobs", ward.NewBlockSet(0, 1, 2)),
		},
	}

	prefix := ward.NewAssignment().With(ward.BreakKey(1, 0), 1)

	candidates := Enumerate(p, 2, prefix)
	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		require.Equal(t, ward.StafferID(1), c[ward.BreakKey(2, 0)], "staffer 1 must still be on break at block 2")
		require.NotEqual(t, ward.StafferID(1), c[ward.TaskKey(2, "genobs", 0)])
	}
}
