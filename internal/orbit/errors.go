package orbit

import (
	"errors"
	"fmt"
)

// Domain errors for orbit propagation.
var (
	// ErrDegenerateState indicates a position with zero distance from the
	// central mass; the acceleration is undefined there and the run cannot
	// continue.
	ErrDegenerateState = errors.New("orbit: degenerate state (zero distance from central mass)")

	// ErrEmptyTrajectory indicates a trajectory with too few samples for an
	// apsis search.
	ErrEmptyTrajectory = errors.New("orbit: trajectory has fewer than 2 samples")
)

// StepError wraps a failure during propagation with the step index and
// simulated time at which it occurred.
type StepError struct {
	Step int
	Time float64
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.0fs): %v", e.Step, e.Time, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
