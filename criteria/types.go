// Package criteria defines the Criterion / State contract and the
// concrete state records shared by all built-in criteria.
package criteria

import (
	"errors"
	"time"
)

// NotTriggered marks a criterion that has not fired yet.
// A triggered marker of 0 means "fired at initialization", k > 0 means
// "fired at iteration k".
const NotTriggered = -1

// Sentinel errors returned by criterion constructors.
var (
	// ErrNonPositiveThreshold indicates AfterDuration received a
	// threshold <= 0.
	ErrNonPositiveThreshold = errors.New("criteria: duration threshold must be positive")

	// ErrNilPredicate indicates When received a nil predicate.
	ErrNilPredicate = errors.New("criteria: predicate must not be nil")

	// ErrConfigEmpty indicates a Config node selects no criterion kind.
	ErrConfigEmpty = errors.New("criteria: config selects no criterion")

	// ErrConfigAmbiguous indicates a Config node selects more than one
	// criterion kind.
	ErrConfigAmbiguous = errors.New("criteria: config selects more than one criterion")

	// ErrBadDuration indicates a Config duration string failed to parse
	// or parsed to a non-positive value.
	ErrBadDuration = errors.New("criteria: invalid max_duration")
)

// Run is the read-only view of an evolving solver run that criteria
// may inspect during a check. The solve package's State satisfies it;
// user-defined criteria that need richer data (the problem, the
// current iterate) should capture it at construction instead of
// widening this interface.
type Run interface {
	// Iteration returns the non-negative loop counter, 0 before the
	// first step.
	Iteration() int
}

// Criterion is an immutable description of one halting rule.
//
// A Criterion never stores per-run data: all bookkeeping lives in the
// State produced by NewState, so a single Criterion value can drive
// any number of concurrent runs. Implementations of new variants must
// provide the full method set; Done must compute the same boolean as
// Update without mutating the state.
//
// Misuse note: every method taking a State expects the concrete type
// produced by that criterion's own NewState. Handing it a foreign
// state is a programming error and panics via the type assertion.
type Criterion interface {
	// NewState allocates a fresh state tree matching the criterion's
	// shape, with all triggered markers set to NotTriggered.
	NewState() State

	// Reset restores st in place to the not-yet-triggered condition,
	// preserving its shape and performing no allocation. Use it to
	// reuse one state tree across repeated runs.
	Reset(st State)

	// Done reports whether the criterion is satisfied, as a pure read:
	// it never mutates st and may be called freely for diagnostics.
	Done(run Run, st State) bool

	// Update reports whether the criterion is satisfied and records
	// triggering in st. Call it exactly once per iteration, including
	// once at iteration 0 before the first step; calling it more often
	// for the same state leaves the bookkeeping inconsistent.
	Update(run Run, st State) bool

	// Reason explains why and when the criterion triggered, or returns
	// "" if it has not.
	Reason(st State) string

	// IndicatesConvergence reports whether triggering certifies a
	// mathematically acceptable result rather than a mere cutoff.
	IndicatesConvergence() bool

	// Summary is a one-line description of the rule itself,
	// independent of any run.
	Summary() string
}

// State is the mutable per-run counterpart of a Criterion. Concrete
// states are exported so callers can inspect bookkeeping after a run.
type State interface {
	// TriggeredAt returns the iteration at which the owning criterion
	// fired, or NotTriggered.
	TriggeredAt() int
}

// TriggerState is the generic "have I fired, and when" record used by
// AfterIteration, When and WhenCancelled.
type TriggerState struct {
	// At is the triggering iteration, or NotTriggered.
	At int
}

// TriggeredAt returns the iteration at which the criterion fired.
func (s *TriggerState) TriggeredAt() int { return s.At }

// DurationState tracks wall-clock bookkeeping for AfterDuration.
type DurationState struct {
	// Start is the instant the clock was (re)started; zero before the
	// first Update of a run.
	Start time.Time

	// Elapsed is the duration measured at the most recent Update.
	Elapsed time.Duration

	// At is the triggering iteration, or NotTriggered.
	At int
}

// TriggeredAt returns the iteration at which the criterion fired.
func (s *DurationState) TriggeredAt() int { return s.At }

// GroupState is the state of an All/Any composite: one child state per
// child criterion, in the same order. The tree shape is fixed at
// NewState time and never changes afterwards.
type GroupState struct {
	// Children holds the child states, positionally paired with the
	// composite's child criteria.
	Children []State

	// At is the triggering iteration, or NotTriggered.
	At int
}

// TriggeredAt returns the iteration at which the composite fired.
func (s *GroupState) TriggeredAt() int { return s.At }
