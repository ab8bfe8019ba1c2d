package ward

import (
	"sort"

	"github.com/hashicorp/go-set/v3"
)

// BlockSet is a set of block indices. It backs Staffer.Available, Task
// coverage, and Problem.ShiftStartBlocks — anywhere a feature applies
// to "the set of blocks" rather than a single block.
type BlockSet struct {
	s *set.Set[int]
}

// NewBlockSet builds a BlockSet from the given block indices.
func NewBlockSet(blocks ...int) *BlockSet {
	return &BlockSet{s: set.From(blocks)}
}

// BlockRange builds a BlockSet containing every block in [from, to).
func BlockRange(from, to int) *BlockSet {
	s := set.New[int](to - from)
	for b := from; b < to; b++ {
		s.Insert(b)
	}
	return &BlockSet{s: s}
}

func (bs *BlockSet) Contains(block int) bool {
	if bs == nil {
		return false
	}
	return bs.s.Contains(block)
}

func (bs *BlockSet) Size() int {
	if bs == nil {
		return 0
	}
	return bs.s.Size()
}

// Slice returns the blocks in ascending order.
func (bs *BlockSet) Slice() []int {
	if bs == nil {
		return nil
	}
	out := bs.s.Slice()
	sort.Ints(out)
	return out
}
