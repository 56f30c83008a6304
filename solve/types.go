// Package solve defines the Algorithm / State / Runner contracts and
// the options accepted by Solve.
package solve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/solvekit/criteria"
	"github.com/katalvlaran/solvekit/record"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilAlgorithm is returned when a nil Algorithm is passed.
	ErrNilAlgorithm = errors.New("solve: algorithm is nil")

	// ErrNilRunner is returned when a nil Runner is passed.
	ErrNilRunner = errors.New("solve: runner is nil")

	// ErrNilCriterion is returned when the Algorithm exposes no
	// stopping rule.
	ErrNilCriterion = errors.New("solve: algorithm criterion is nil")

	// ErrNilState is returned when Runner.Init produces a nil State.
	ErrNilState = errors.New("solve: state is nil")

	// ErrNilCriterionState is returned when the State carries no
	// criterion state tree.
	ErrNilCriterionState = errors.New("solve: criterion state is nil")

	// ErrInit wraps a failure of Runner.Init.
	ErrInit = errors.New("solve: state initialization failed")

	// ErrStep wraps a failure of Runner.Step.
	ErrStep = errors.New("solve: step failed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")
)

// Algorithm is the immutable per-algorithm configuration. Its only
// obligation to the loop is designating the root stopping rule; any
// further fields (step sizes, tolerances) are the author's business.
type Algorithm interface {
	// Criterion returns the root stopping rule. The Algorithm owns the
	// rule by value; the matching mutable state tree lives in State.
	Criterion() criteria.Criterion
}

// State is the mutable per-run record. The evolving iterate itself is
// opaque to the loop and lives in the author's concrete type; the loop
// only needs the iteration counter and the criterion state tree, whose
// shape mirrors the Algorithm's criterion tree and never changes after
// initialization. Embed BaseState to satisfy this interface.
type State interface {
	// Iteration returns the loop counter, satisfying criteria.Run.
	Iteration() int

	// Advance increments the iteration counter by one. Override it on
	// a concrete state to customize the increment.
	Advance()

	// CriterionState returns the root criterion state tree, exclusively
	// owned by this State.
	CriterionState() criteria.State
}

// Restarter is an optional State capability: Solve calls Restart on
// the WithState reuse path to rewind run-scoped bookkeeping (at least
// the iteration counter) before looping again.
type Restarter interface {
	Restart()
}

// Runner is the hook set an algorithm author implements.
type Runner interface {
	// Init builds the initial State for a fresh run, including its
	// criterion state tree (NewBaseState does that wiring).
	Init(problem any, algorithm Algorithm) (State, error)

	// Step performs one iteration's mutation of the iterate. It runs
	// after the counter has been advanced, so Iteration() reports the
	// number of the step in progress, starting at 1.
	Step(problem any, algorithm Algorithm, state State) error
}

// BaseState carries the run bookkeeping every State needs; embed it in
// a concrete state and add the iterate fields of your algorithm.
type BaseState struct {
	// Iter is the iteration counter, 0 before the first step.
	Iter int

	// Crit is the mutable criterion state tree.
	Crit criteria.State
}

// NewBaseState builds run bookkeeping with a fresh state tree for c.
func NewBaseState(c criteria.Criterion) BaseState {
	return BaseState{Crit: c.NewState()}
}

// Iteration returns the loop counter.
func (s *BaseState) Iteration() int { return s.Iter }

// Advance increments the loop counter by one.
func (s *BaseState) Advance() { s.Iter++ }

// CriterionState returns the criterion state tree.
func (s *BaseState) CriterionState() criteria.State { return s.Crit }

// Restart rewinds the loop counter for reuse across runs.
func (s *BaseState) Restart() { s.Iter = 0 }

// Option configures Solve via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when Solve
// is invoked.
type Option func(*Options)

// Options holds the tunable parts of a Solve call.
type Options struct {
	// Recorder receives the run's boundary events; nil disables
	// emission entirely.
	Recorder *record.Recorder

	// State, when non-nil, is reused instead of calling Runner.Init:
	// its criterion state tree is reset in place and, if the State is a
	// Restarter, its run bookkeeping is rewound.
	State State

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no recorder and no reused state.
func DefaultOptions() Options {
	return Options{}
}

// WithRecorder emits the run's events through rec.
func WithRecorder(rec *record.Recorder) Option {
	return func(o *Options) {
		o.Recorder = rec
	}
}

// WithState reuses st across runs instead of initializing a fresh one.
func WithState(st State) Option {
	return func(o *Options) {
		if st == nil {
			o.err = fmt.Errorf("%w: WithState got nil state", ErrOptionViolation)

			return
		}
		o.State = st
	}
}
