package criteria

import "fmt"

// AfterIteration returns a criterion that is satisfied once the run's
// iteration counter reaches max, i.e. when Iteration() >= max.
//
// AfterIteration(0) is satisfied immediately at the iteration-0 check
// (triggered "at initialization"). Hitting an iteration cap is a
// cutoff, not evidence of a correct answer, so the criterion never
// indicates convergence.
func AfterIteration(max int) Criterion {
	return &afterIteration{max: max}
}

// afterIteration stops once the iteration counter reaches max.
type afterIteration struct {
	max int
}

// NewState allocates a fresh, not-yet-triggered marker.
func (c *afterIteration) NewState() State {
	return &TriggerState{At: NotTriggered}
}

// Reset rewinds the marker in place.
func (c *afterIteration) Reset(st State) {
	st.(*TriggerState).At = NotTriggered
}

// Done reports iteration >= max without touching st.
func (c *afterIteration) Done(run Run, _ State) bool {
	return run.Iteration() >= c.max
}

// Update reports iteration >= max and records the triggering iteration.
func (c *afterIteration) Update(run Run, st State) bool {
	ts := st.(*TriggerState)
	if run.Iteration() <= 0 {
		// Loop (re)start: forget any triggering from a previous run.
		ts.At = NotTriggered
	}
	if run.Iteration() >= c.max {
		ts.At = run.Iteration()

		return true
	}

	return false
}

// Reason reports when the cap was reached, or "" if it was not.
func (c *afterIteration) Reason(st State) string {
	ts := st.(*TriggerState)
	if ts.At == NotTriggered {
		return ""
	}

	return fmt.Sprintf("reached the iteration cap (%d) at iteration %d", c.max, ts.At)
}

// IndicatesConvergence is always false for an iteration cap.
func (c *afterIteration) IndicatesConvergence() bool { return false }

// Summary describes the rule in one line.
func (c *afterIteration) Summary() string {
	return fmt.Sprintf("stop after %d iteration(s)", c.max)
}
