package ward

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignmentGetMissingIsNotOK(t *testing.T) {
	a := NewAssignment()
	_, ok := a.Get(TaskKey(0, "genobs", 0))
	require.False(t, ok)
}

func TestAssignmentWithIsImmutable(t *testing.T) {
	a0 := NewAssignment()
	key := TaskKey(0, "genobs", 0)
	a1 := a0.With(key, StafferID(7))

	_, ok := a0.Get(key)
	require.False(t, ok, "extending should not mutate the original")

	sid, ok := a1.Get(key)
	require.True(t, ok)
	require.Equal(t, StafferID(7), sid)
	require.True(t, a1.HeldBy(key, 7))
}

func TestBatchCommitAppliesAllSets(t *testing.T) {
	a0 := NewAssignment()
	b := a0.NewBatch()
	b.Set(TaskKey(0, "genobs", 0), 1)
	b.Set(BreakKey(1, 0), NoStaffer)
	a1 := b.Commit()

	require.Equal(t, 2, a1.Len())
	require.Equal(t, 0, a0.Len(), "prior reference must remain untouched")

	sid, ok := a1.Get(BreakKey(1, 0))
	require.True(t, ok)
	require.Equal(t, NoStaffer, sid)
}

func TestSlotKeyStringDistinguishesTaskAndBreak(t *testing.T) {
	require.Contains(t, TaskKey(2, "med", 0).String(), "med")
	require.Contains(t, BreakKey(2, 0).String(), "break")
}
