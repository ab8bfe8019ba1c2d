package problem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tansey/nurse-scheduling/pkg/ward"
)

func validProblem() *ward.Problem {
	return &ward.Problem{
		Blocks:        2,
		BlockTimes:    []string{"b0", "b1"},
		MinBreakBlock: -1,
		MaxBreakBlock: -2,
		MaxOnBreak:    0,
		BeamWidth:     4,
		Staffers: []*ward.Staffer{
			{ID: 1, Name: "A", Role: ward.Assistant, Sex: ward.Female, Available: ward.NewBlockSet(0, 1)},
		},
		Tasks: []ward.Task{
			ward.NewGeneralObservation("genobs", ward.NewBlockSet(0, 1)),
		},
	}
}

func TestValidateAcceptsSoundProblem(t *testing.T) {
	require.NoError(t, Validate(validProblem()))
}

func TestValidateRejectsNonPositiveBlocks(t *testing.T) {
	p := validProblem()
	p.Blocks = 0
	err := Validate(p)
	require.Error(t, err)
	var ipe *ward.InvalidProblemError
	require.ErrorAs(t, err, &ipe)
}

func TestValidateRejectsMismatchedBlockTimes(t *testing.T) {
	p := validProblem()
	p.BlockTimes = []string{"only one"}
	require.Error(t, Validate(p))
}

func TestValidateRejectsEmptyStaffPool(t *testing.T) {
	p := validProblem()
	p.Staffers = nil
	require.Error(t, Validate(p))
}

func TestValidateRejectsInvertedBreakWindow(t *testing.T) {
	p := validProblem()
	p.MinBreakBlock, p.MaxBreakBlock = 2, 0
	require.Error(t, Validate(p))
}

func TestValidateRejectsDuplicateStafferID(t *testing.T) {
	p := validProblem()
	p.Staffers = append(p.Staffers, &ward.Staffer{
		ID: 1, Name: "B", Role: ward.Nurse, Sex: ward.Male, Available: ward.NewBlockSet(0, 1),
	})
	require.Error(t, Validate(p))
}

// A task that no staffer in the pool could ever fill by role/sex is a
// structural InvalidProblem, independent of any block's availability.
func TestValidateRejectsTaskNobodyCanEverFill(t *testing.T) {
	p := validProblem()
	p.Tasks = []ward.Task{ward.NewMedication("med", ward.NewBlockSet(0))}
	require.Error(t, Validate(p))
}

// Availability gaps alone must NOT trip Validate: a role/sex-eligible
// staffer who merely happens to be unavailable at the blocks a task
// needs is a dynamic feasibility question for the beam driver
// (NoFeasibleAssignmentError), not a structural one.
func TestValidateIgnoresPerBlockAvailabilityGaps(t *testing.T) {
	p := validProblem()
	p.Staffers[0].Available = ward.NewBlockSet() // unavailable everywhere
	require.NoError(t, Validate(p), "unavailability is not a structural defect")
}

func TestValidateAggregatesMultipleReasons(t *testing.T) {
	p := validProblem()
	p.Blocks = 0
	p.Staffers = nil
	err := Validate(p)
	require.Error(t, err)
	var ipe *ward.InvalidProblemError
	require.ErrorAs(t, err, &ipe)
	require.GreaterOrEqual(t, len(ipe.Reasons.Errors), 2)
}
