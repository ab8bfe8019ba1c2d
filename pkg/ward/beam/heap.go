package beam

import "container/heap"

// rankHeap is a bounded max-heap over entry.score: the worst (highest
// score) kept entry sits at the root, so bounding to K is "push, then
// pop the root whenever len exceeds K" — a priority-queue-bounded-to-K
// in place of append-then-truncate-then-sort.
type rankHeap []entry

func (h rankHeap) Len() int            { return len(h) }
func (h rankHeap) Less(i, j int) bool  { return h[i].score > h[j].score }
func (h rankHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *rankHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }

func (h *rankHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// boundedTopK keeps the K lowest-scoring entries from entries. Ties at
// the K-th boundary are broken by the caller pre-shuffling entries with
// a seeded RNG before calling this, so the selection is reproducible
// but not biased by input order.
func boundedTopK(entries []entry, k int) []entry {
	h := &rankHeap{}
	heap.Init(h)
	for _, e := range entries {
		if h.Len() < k {
			heap.Push(h, e)
			continue
		}
		if e.score < (*h)[0].score {
			heap.Pop(h)
			heap.Push(h, e)
		}
	}
	out := make([]entry, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(entry)
	}
	return out
}
