package criteria

import (
	"fmt"
	"time"
)

// AfterDuration returns a criterion that is satisfied once more than
// threshold of wall-clock time has elapsed since the run started.
// Returns ErrNonPositiveThreshold when threshold <= 0.
//
// The clock starts at the iteration-0 check (the first Update of a
// run), so the criterion can never fire before the first step; a run
// may therefore overshoot the threshold by at most one step's
// duration, since time is only measured at iteration boundaries.
// Elapsed time is a budget, not a convergence certificate, so the
// criterion never indicates convergence.
func AfterDuration(threshold time.Duration) (Criterion, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNonPositiveThreshold, threshold)
	}

	return &afterDuration{threshold: threshold, now: time.Now}, nil
}

// afterDuration stops once elapsed wall-clock time exceeds threshold.
type afterDuration struct {
	threshold time.Duration
	now       func() time.Time // swapped in tests for a deterministic clock
}

// NewState allocates fresh duration bookkeeping with a stopped clock.
func (c *afterDuration) NewState() State {
	return &DurationState{At: NotTriggered}
}

// Reset clears the recorded start instant, the measured elapsed time
// and the triggered marker, all in place.
func (c *afterDuration) Reset(st State) {
	ds := st.(*DurationState)
	ds.Start = time.Time{}
	ds.Elapsed = 0
	ds.At = NotTriggered
}

// Done reports whether the threshold is exceeded, measuring from the
// recorded start instant without mutating st. Before the clock has
// been started (iteration 0, or a freshly reset state) it is false.
func (c *afterDuration) Done(run Run, st State) bool {
	ds := st.(*DurationState)
	if run.Iteration() <= 0 || ds.Start.IsZero() {
		return false
	}

	return c.now().Sub(ds.Start) > c.threshold
}

// Update measures elapsed time and reports whether it exceeds the
// threshold. The call at iteration <= 0 is the loop-restart signal:
// it restarts the clock and never fires.
func (c *afterDuration) Update(run Run, st State) bool {
	ds := st.(*DurationState)
	if run.Iteration() <= 0 {
		ds.Start = c.now()
		ds.Elapsed = 0
		ds.At = NotTriggered

		return false
	}

	ds.Elapsed = c.now().Sub(ds.Start)
	if ds.Elapsed > c.threshold {
		ds.At = run.Iteration()

		return true
	}

	return false
}

// Reason reports the measured overrun, or "" if the budget held.
func (c *afterDuration) Reason(st State) string {
	ds := st.(*DurationState)
	if ds.At == NotTriggered {
		return ""
	}

	return fmt.Sprintf("exceeded the time budget (%v) at iteration %d after %v", c.threshold, ds.At, ds.Elapsed)
}

// IndicatesConvergence is always false for a time budget.
func (c *afterDuration) IndicatesConvergence() bool { return false }

// Summary describes the rule in one line.
func (c *afterDuration) Summary() string {
	return fmt.Sprintf("stop after %v of wall-clock time", c.threshold)
}
