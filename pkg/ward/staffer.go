// Package ward defines the domain model for a mental-health ward staff
// allocation schedule: staff, the tasks they can be assigned to, the
// schedule's block layout, and the assignment records the beam search
// produces. It is pure data — no scheduling logic lives here.
package ward

import "fmt"

// Role distinguishes a registered nurse from a care assistant. Only a
// Nurse may be assigned to a Medication slot.
type Role int

const (
	Assistant Role = iota
	Nurse
)

func (r Role) String() string {
	switch r {
	case Nurse:
		return "RMN"
	case Assistant:
		return "HCA"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Sex is used only to satisfy male-only patient-observation restrictions.
type Sex int

const (
	Female Sex = iota
	Male
)

func (s Sex) String() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return fmt.Sprintf("Sex(%d)", int(s))
	}
}

// StafferID identifies a Staffer uniquely within a Problem. Names are
// not guaranteed unique in the source data, so the enumerator and
// scorer key everything off this instead of Name.
type StafferID int

// Staffer is an immutable staff record. Blocks in Available are the
// only blocks during which the staffer may be assigned to anything.
type Staffer struct {
	ID        StafferID
	Name      string
	Role      Role
	Sex       Sex
	Available *BlockSet
}

// IsAvailable reports whether the staffer may be assigned to anything
// at all during block b.
func (s *Staffer) IsAvailable(block int) bool {
	return s.Available.Contains(block)
}

func (s *Staffer) String() string {
	return s.Name
}
