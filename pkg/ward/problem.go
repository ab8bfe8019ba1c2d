package ward

// Problem is the fully-materialised input the beam search core
// consumes: the external-interface boundary between input parsing and
// scheduling. Nothing in this package mutates a Problem after
// construction.
type Problem struct {
	// Blocks is the block count N; valid block indices are [0, Blocks).
	Blocks int

	// BlockTimes holds a display label per block, opaque to the core —
	// used only by the reporter.
	BlockTimes []string

	Staffers []*Staffer
	Tasks    []Task

	MinBreakBlock int
	MaxBreakBlock int
	MaxOnBreak    int

	// ShiftStartBlocks flags admissible general-observation handover
	// points; shift membership itself is implicit in each Staffer's
	// Available set rather than tracked as its own concept.
	ShiftStartBlocks *BlockSet

	BeamWidth  int
	RandomSeed int64
}

// StafferByID looks up a staffer by id, or nil if none matches.
func (p *Problem) StafferByID(id StafferID) *Staffer {
	for _, s := range p.Staffers {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// TasksAt returns every task that must be covered during block b.
func (p *Problem) TasksAt(block int) []Task {
	var out []Task
	for _, t := range p.Tasks {
		if t.Blocks().Contains(block) {
			out = append(out, t)
		}
	}
	return out
}

// BreaksActiveAt reports whether break slots exist at all at block b:
// either strictly inside the break window, or the one trailing
// continuation block past it.
func (p *Problem) BreaksActiveAt(block int) bool {
	return block >= p.MinBreakBlock && block <= p.MaxBreakBlock+1
}

// InBreakWindow reports whether block b is strictly inside the break
// window (as opposed to the trailing continuation block).
func (p *Problem) InBreakWindow(block int) bool {
	return block >= p.MinBreakBlock && block <= p.MaxBreakBlock
}

// AvailableAt returns every staffer available at block b.
func (p *Problem) AvailableAt(block int) []*Staffer {
	var out []*Staffer
	for _, s := range p.Staffers {
		if s.IsAvailable(block) {
			out = append(out, s)
		}
	}
	return out
}

// PatientObservationTasks returns the PatientObservation tasks among
// p.Tasks, in declaration order.
func (p *Problem) PatientObservationTasks() []*PatientObservation {
	var out []*PatientObservation
	for _, t := range p.Tasks {
		if po, ok := t.(*PatientObservation); ok {
			out = append(out, po)
		}
	}
	return out
}

// Outcome is the successful result of running the beam search over a
// Problem: a complete Assignment and its cumulative score. A run with
// no feasible continuation returns a *NoFeasibleAssignmentError
// instead.
type Outcome struct {
	Assignment Assignment
	Score      float64
}
