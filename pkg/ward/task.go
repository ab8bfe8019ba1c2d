package ward

import "fmt"

// TaskID identifies a task uniquely within a Problem. Medication and
// GeneralObservation are singletons in practice, but the id still
// matters as a SlotKey component.
type TaskID string

// Task is the closed sum type of things that must be continuously
// covered during a set of blocks: Medication, GeneralObservation, and
// PatientObservation. isTask seals the interface to this package's
// three variants — a small, closed sum type rather than an open one.
type Task interface {
	isTask()

	// ID returns the task's unique identifier.
	ID() TaskID

	// Blocks returns the set of blocks this task must be covered during.
	Blocks() *BlockSet

	// Headcount returns the number of simultaneous staffers required
	// per covered block.
	Headcount() int

	// Valid reports whether s may ever fill a slot of this task,
	// independent of availability (role/sex predicate only).
	Valid(s *Staffer) bool

	fmt.Stringer
}

// Medication requires exactly one Nurse per covered block.
type Medication struct {
	id     TaskID
	blocks *BlockSet
}

// NewMedication builds a Medication task covering the given blocks.
func NewMedication(id TaskID, blocks *BlockSet) *Medication {
	return &Medication{id: id, blocks: blocks}
}

func (*Medication) isTask()                 {}
func (m *Medication) ID() TaskID            { return m.id }
func (m *Medication) Blocks() *BlockSet     { return m.blocks }
func (m *Medication) Headcount() int        { return 1 }
func (m *Medication) Valid(s *Staffer) bool { return s.Role == Nurse }
func (m *Medication) String() string        { return "Medication" }

// GeneralObservation requires exactly one staffer of any role per
// covered block, continuously watching the ward as a whole.
type GeneralObservation struct {
	id     TaskID
	blocks *BlockSet
}

// NewGeneralObservation builds a GeneralObservation task covering the
// given blocks.
func NewGeneralObservation(id TaskID, blocks *BlockSet) *GeneralObservation {
	return &GeneralObservation{id: id, blocks: blocks}
}

func (*GeneralObservation) isTask()                 {}
func (g *GeneralObservation) ID() TaskID            { return g.id }
func (g *GeneralObservation) Blocks() *BlockSet     { return g.blocks }
func (g *GeneralObservation) Headcount() int        { return 1 }
func (g *GeneralObservation) Valid(s *Staffer) bool { return true }
func (g *GeneralObservation) String() string        { return "General observations" }

// PatientObservation is a 1:1 or 2:1 watch on a named patient, with an
// optional male-only restriction.
type PatientObservation struct {
	id        TaskID
	patient   string
	blocks    *BlockSet
	headcount int
	maleOnly  bool
}

// NewPatientObservation builds a PatientObservation task for the named
// patient. headcount must be 1 or 2.
func NewPatientObservation(id TaskID, patient string, blocks *BlockSet, headcount int, maleOnly bool) *PatientObservation {
	return &PatientObservation{
		id:        id,
		patient:   patient,
		blocks:    blocks,
		headcount: headcount,
		maleOnly:  maleOnly,
	}
}

func (*PatientObservation) isTask()             {}
func (p *PatientObservation) ID() TaskID        { return p.id }
func (p *PatientObservation) Blocks() *BlockSet { return p.blocks }
func (p *PatientObservation) Headcount() int    { return p.headcount }
func (p *PatientObservation) MaleOnly() bool    { return p.maleOnly }
func (p *PatientObservation) Patient() string   { return p.patient }

func (p *PatientObservation) Valid(s *Staffer) bool {
	return !p.maleOnly || s.Sex == Male
}

func (p *PatientObservation) String() string {
	return fmt.Sprintf("Patient %s (%d:1)", p.patient, p.headcount)
}

// TaskValid reports whether t accepts s as a candidate, ignoring
// availability. This is the uniform role/sex-eligibility entry point
// used by both validation and enumeration.
func TaskValid(t Task, s *Staffer) bool {
	return t.Valid(s)
}

// StafferValid reports whether s may fill a slot of task t at block b:
// available at b, and passing the task's role/sex predicate.
func StafferValid(s *Staffer, t Task, block int) bool {
	return s.IsAvailable(block) && TaskValid(t, s)
}
