package ward

import "fmt"

// SlotKind distinguishes a task slot from a break slot within a SlotKey.
type SlotKind uint8

const (
	TaskSlotKind SlotKind = iota
	BreakSlotKind
)

// SlotKey uniquely identifies one variable in a block's assignment:
// either the Index'th slot of task Task, or the Index'th break slot
// (TaskID empty, Kind == BreakSlotKind). A structured value rather
// than a printable compound string key, so equality and ordering don't
// depend on formatting choices.
type SlotKey struct {
	Block  int
	Kind   SlotKind
	Task   TaskID
	Index  int
}

// TaskKey builds the key for the Index'th slot of task t at block b.
func TaskKey(block int, t TaskID, index int) SlotKey {
	return SlotKey{Block: block, Kind: TaskSlotKind, Task: t, Index: index}
}

// BreakKey builds the key for the Index'th break slot at block b.
func BreakKey(block int, index int) SlotKey {
	return SlotKey{Block: block, Kind: BreakSlotKind, Index: index}
}

// bytes returns a deterministic, collision-free byte encoding suitable
// as an immutable-radix-tree key. Order is not load-bearing here: every
// lookup is a point Get, never a range scan.
func (k SlotKey) bytes() []byte {
	kind := "T"
	if k.Kind == BreakSlotKind {
		kind = "B"
	}
	return []byte(fmt.Sprintf("%08d|%s|%s|%04d", k.Block, kind, k.Task, k.Index))
}

// Candidate is one complete, valid assignment of every slot active at
// a single block — the enumerator's unit of output and the scorer's
// unit of input.
type Candidate map[SlotKey]StafferID

func (k SlotKey) String() string {
	if k.Kind == BreakSlotKind {
		return fmt.Sprintf("block %d break #%d", k.Block, k.Index)
	}
	return fmt.Sprintf("block %d %s #%d", k.Block, k.Task, k.Index)
}
