package score

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tansey/nurse-scheduling/pkg/ward"
)

func mkStaffer(id int, role ward.Role, available ...int) *ward.Staffer {
	return &ward.Staffer{
		ID:        ward.StafferID(id),
		Name:      "s",
		Role:      role,
		Sex:       ward.Female,
		Available: ward.NewBlockSet(available...),
	}
}

func TestBuildPenaltiesGenObsSwitchingOnShiftStart(t *testing.T) {
	p := &ward.Problem{
		Blocks:           1,
		MinBreakBlock:    -1,
		MaxBreakBlock:    -2,
		MaxOnBreak:       0,
		ShiftStartBlocks: ward.NewBlockSet(0),
		Staffers:         []*ward.Staffer{mkStaffer(1, ward.Assistant, 0)},
		Tasks:            []ward.Task{ward.NewGeneralObservation("genobs", ward.NewBlockSet(0))},
	}

	w := DefaultWeights()
	table := BuildPenalties(p, ward.NewAssignment(), 0, w)
	require.Equal(t, float64(0), table.get(1, "genobs"), "an assistant at a shift-start block should carry no switching penalty")
}

func TestBuildPenaltiesGenObsSwitchingWhenNotHeldPreviously(t *testing.T) {
	p := &ward.Problem{
		Blocks:           2,
		MinBreakBlock:    -1,
		MaxBreakBlock:    -2,
		MaxOnBreak:       0,
		ShiftStartBlocks: ward.NewBlockSet(0),
		Staffers:         []*ward.Staffer{mkStaffer(1, ward.Assistant, 0, 1)},
		Tasks:            []ward.Task{ward.NewGeneralObservation("genobs", ward.NewBlockSet(0, 1))},
	}

	w := DefaultWeights()
	// No one held genobs at block 0, so switching into it at block 1
	// (a non-shift-start block) costs the switching penalty.
	table := BuildPenalties(p, ward.NewAssignment(), 1, w)
	require.Equal(t, w.GenObsSwitching, table.get(1, "genobs"))
}

func TestBuildPenaltiesRMNGenObsContinuity(t *testing.T) {
	p := &ward.Problem{
		Blocks:           2,
		MinBreakBlock:    -1,
		MaxBreakBlock:    -2,
		MaxOnBreak:       0,
		ShiftStartBlocks: ward.NewBlockSet(0),
		Staffers:         []*ward.Staffer{mkStaffer(1, ward.Nurse, 0, 1)},
		Tasks:            []ward.Task{ward.NewGeneralObservation("genobs", ward.NewBlockSet(0, 1))},
	}

	w := DefaultWeights()
	prefix := ward.NewAssignment().With(ward.TaskKey(0, "genobs", 0), 1)
	table := BuildPenalties(p, prefix, 1, w)
	require.Equal(t, w.RMNGenObs, table.get(1, "genobs"))
}

func TestScoreBreakRewardsIsNegative(t *testing.T) {
	p := &ward.Problem{
		MinBreakBlock: 0,
		MaxBreakBlock: 0,
		MaxOnBreak:    1,
		Staffers:      []*ward.Staffer{mkStaffer(1, ward.Assistant, 0)},
	}
	w := DefaultWeights()
	candidate := ward.Candidate{ward.BreakKey(0, 0): 1}
	require.Equal(t, -w.HCANoBreak, Score(p, candidate, w, Table{}))
}

func TestScoreEmptyBreakSlotContributesNothing(t *testing.T) {
	p := &ward.Problem{MinBreakBlock: 0, MaxBreakBlock: 0, MaxOnBreak: 1}
	w := DefaultWeights()
	candidate := ward.Candidate{ward.BreakKey(0, 0): ward.NoStaffer}
	require.Equal(t, float64(0), Score(p, candidate, w, Table{}))
}
