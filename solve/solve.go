// Package solve implements the generic solve loop: a four-state
// machine (Created → Initialized → Running → Finished) driven purely
// by the algorithm's stopping criterion.
package solve

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/solvekit/record"
)

// Solve runs algorithm a against problem p until the algorithm's
// stopping criterion triggers, returning the final State.
//
// Lifecycle: the State is built by r.Init (Created → Initialized), or
// reused via WithState, in which case its criterion state tree is
// reset in place and a Restarter state is rewound. A Start event marks
// Initialized → Running. Each loop pass calls the criterion's mutating
// check exactly once — including the check at iteration 0, which lets
// duration criteria restart their clocks — and, while the check is
// false, emits PreStep, advances the counter, runs r.Step, and emits
// PostStep. Once the check is true a Stop event marks Running →
// Finished and the State is returned.
//
// A Step failure terminates the run early: a Stop event is still
// emitted, and the error is returned wrapped in ErrStep alongside the
// partially advanced State.
//
// Each call is tagged with a fresh run ID, visible to event handlers
// via record.Run. Solve is safe to call concurrently for disjoint
// states; a single State must not be driven by two loops at once.
func Solve(p any, a Algorithm, r Runner, opts ...Option) (State, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if a == nil {
		return nil, ErrNilAlgorithm
	}
	if r == nil {
		return nil, ErrNilRunner
	}
	crit := a.Criterion()
	if crit == nil {
		return nil, ErrNilCriterion
	}

	// Created → Initialized: fresh state via Init, or in-place reuse.
	st := o.State
	if st == nil {
		var err error
		if st, err = r.Init(p, a); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInit, err)
		}
		if st == nil {
			return nil, ErrNilState
		}
	} else {
		if rs, ok := st.(Restarter); ok {
			rs.Restart()
		}
		if st.CriterionState() == nil {
			return nil, ErrNilCriterionState
		}
		crit.Reset(st.CriterionState())
	}
	cs := st.CriterionState()
	if cs == nil {
		return nil, ErrNilCriterionState
	}

	run := &runView{id: uuid.NewString(), state: st}
	rec := o.Recorder

	// Initialized → Running.
	rec.Emit(record.Start, run)

	// The check runs exactly once per prospective step, iteration 0
	// included, so every criterion gets its restart signal.
	for !crit.Update(st, cs) {
		rec.Emit(record.PreStep, run)
		st.Advance()
		if err := r.Step(p, a, st); err != nil {
			rec.Emit(record.Stop, run)

			return st, fmt.Errorf("%w at iteration %d: %v", ErrStep, st.Iteration(), err)
		}
		rec.Emit(record.PostStep, run)
	}

	// Running → Finished.
	rec.Emit(record.Stop, run)

	return st, nil
}

// runView adapts a running State to the record.Run the event boundary
// exposes to handlers.
type runView struct {
	id    string
	state State
}

// ID returns the run's unique identifier.
func (r *runView) ID() string { return r.id }

// Iteration returns the run's current loop counter.
func (r *runView) Iteration() int { return r.state.Iteration() }

// State exposes the algorithm-specific state for handlers that want to
// type-assert it.
func (r *runView) State() any { return r.state }
