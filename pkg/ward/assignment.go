package ward

import (
	iradix "github.com/hashicorp/go-immutable-radix/v2"
)

// NoStaffer is the sentinel StafferID recorded for a break slot that
// was deliberately left empty. A break SlotKey missing from the tree
// entirely means "not yet decided"; NoStaffer means "decided, and
// nobody is on it".
const NoStaffer StafferID = -1

// Assignment is a persistent mapping from SlotKey to StafferID. It
// backs a prefix schedule: extending it for a new block never mutates
// the Assignment any other beam entry holds a reference to — extended
// functionally per step, immutable once frozen. Structural sharing
// comes from github.com/hashicorp/go-immutable-radix/v2 rather than a
// copy-on-write map.
type Assignment struct {
	tree *iradix.Tree[StafferID]
}

// NewAssignment returns the empty assignment.
func NewAssignment() Assignment {
	return Assignment{tree: iradix.New[StafferID]()}
}

// Get returns the staffer recorded at key, if any. ok is false when
// the slot has not been decided yet.
func (a Assignment) Get(key SlotKey) (StafferID, bool) {
	if a.tree == nil {
		return 0, false
	}
	return a.tree.Get(key.bytes())
}

// HeldBy reports whether staffer s is the one recorded at key.
func (a Assignment) HeldBy(key SlotKey, s StafferID) bool {
	v, ok := a.Get(key)
	return ok && v == s
}

// Len returns the number of decided slots.
func (a Assignment) Len() int {
	if a.tree == nil {
		return 0
	}
	return a.tree.Len()
}

// Batch accumulates slot decisions for a single block before they are
// committed into a new, immutable Assignment with Commit.
type Batch struct {
	txn *iradix.Txn[StafferID]
}

// NewBatch starts a batch of inserts on top of a.
func (a Assignment) NewBatch() *Batch {
	base := a.tree
	if base == nil {
		base = iradix.New[StafferID]()
	}
	return &Batch{txn: base.Txn()}
}

// Set records that key is filled by staffer s (or NoStaffer for an
// intentionally empty break slot).
func (b *Batch) Set(key SlotKey, s StafferID) {
	b.txn.Insert(key.bytes(), s)
}

// Commit freezes the batch into a new Assignment. The receiver
// Assignment this batch was built from is untouched and remains valid.
func (b *Batch) Commit() Assignment {
	return Assignment{tree: b.txn.Commit()}
}

// With is a convenience for committing a single slot decision without
// an explicit Batch.
func (a Assignment) With(key SlotKey, s StafferID) Assignment {
	b := a.NewBatch()
	b.Set(key, s)
	return b.Commit()
}
