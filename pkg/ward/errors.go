package ward

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// NoFeasibleAssignmentError is returned by the beam driver when the
// enumerator produced zero candidates at Block for every prefix
// remaining in the beam. The driver never backtracks across blocks to
// recover — this is fatal.
type NoFeasibleAssignmentError struct {
	Block int

	// BestPrefix is the last-feasible prefix of the best beam entry at
	// the time of failure, retained to aid diagnosis.
	BestPrefix Assignment
	BestScore  float64
}

func (e *NoFeasibleAssignmentError) Error() string {
	return fmt.Sprintf("ward: no feasible assignment at block %d", e.Block)
}

// InvalidProblemError is raised by the validation pre-pass before the
// driver ever runs. It aggregates every violated invariant found,
// rather than stopping at the first one.
type InvalidProblemError struct {
	Reasons *multierror.Error
}

// NewInvalidProblemError wraps an accumulated *multierror.Error as an
// InvalidProblemError. Returns nil if merr has no errors, so callers
// can use it directly as the return value of a validation pass.
func NewInvalidProblemError(merr *multierror.Error) error {
	if merr == nil || len(merr.Errors) == 0 {
		return nil
	}
	return &InvalidProblemError{Reasons: merr}
}

func (e *InvalidProblemError) Error() string {
	return fmt.Sprintf("ward: invalid problem: %s", e.Reasons.Error())
}

func (e *InvalidProblemError) Unwrap() error {
	return e.Reasons
}
