package criteria

import (
	"context"
	"fmt"
)

// WhenOption customizes a When criterion.
type WhenOption func(*when)

// WithSummary sets the one-line description reported by Summary and
// used in Reason output. Defaults to "stop when predicate holds".
func WithSummary(s string) WhenOption {
	return func(w *when) {
		if s != "" {
			w.summary = s
		}
	}
}

// Converging marks the criterion as convergence-indicating: its
// triggering certifies the result, not just a cutoff. Defaults to
// non-converging.
func Converging() WhenOption {
	return func(w *when) {
		w.converges = true
	}
}

// When returns a criterion satisfied whenever pred holds for the
// current run. It is the extension point for ad-hoc rules: close over
// whatever problem or algorithm data the predicate needs.
// Returns ErrNilPredicate when pred is nil.
//
// The predicate must be a pure read of the run — Done invokes it too,
// and a side-effecting predicate would break the pure-check contract.
func When(pred func(run Run) bool, opts ...WhenOption) (Criterion, error) {
	if pred == nil {
		return nil, ErrNilPredicate
	}
	w := &when{pred: pred, summary: "stop when predicate holds"}
	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// WhenCancelled returns a criterion satisfied once ctx is done. This
// is the cancellation bridge: the solve loop has no separate cancel
// channel, so a caller wanting early termination injects this rule
// into the composite. Never indicates convergence.
func WhenCancelled(ctx context.Context) Criterion {
	c, _ := When(
		func(Run) bool { return ctx.Err() != nil },
		WithSummary("stop when the context is cancelled"),
	)

	return c
}

// when adapts a caller-supplied predicate to the Criterion contract.
type when struct {
	pred      func(Run) bool
	summary   string
	converges bool
}

// NewState allocates a fresh, not-yet-triggered marker.
func (w *when) NewState() State {
	return &TriggerState{At: NotTriggered}
}

// Reset rewinds the marker in place.
func (w *when) Reset(st State) {
	st.(*TriggerState).At = NotTriggered
}

// Done evaluates the predicate without touching st.
func (w *when) Done(run Run, _ State) bool {
	return w.pred(run)
}

// Update evaluates the predicate and records the triggering iteration.
func (w *when) Update(run Run, st State) bool {
	ts := st.(*TriggerState)
	if run.Iteration() <= 0 {
		ts.At = NotTriggered
	}
	if w.pred(run) {
		ts.At = run.Iteration()

		return true
	}

	return false
}

// Reason reports when the predicate first held, or "" if it has not.
func (w *when) Reason(st State) string {
	ts := st.(*TriggerState)
	if ts.At == NotTriggered {
		return ""
	}

	return fmt.Sprintf("%s: satisfied at iteration %d", w.summary, ts.At)
}

// IndicatesConvergence reports the flag chosen at construction.
func (w *when) IndicatesConvergence() bool { return w.converges }

// Summary describes the rule in one line.
func (w *when) Summary() string { return w.summary }
