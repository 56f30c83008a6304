// Package record implements the Recorder: per-event handler lists
// dispatched synchronously with fault isolation.
package record

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Event names a point in a run's lifecycle. The loop emits the four
// boundary events below; algorithms may emit custom names of their own
// through the same Recorder.
type Event string

// Boundary events emitted by the solve loop.
const (
	// Start marks the Initialized → Running transition.
	Start Event = "start"

	// PreStep fires before each iteration's counter increment and step.
	PreStep Event = "pre_step"

	// PostStep fires after each successful step.
	PostStep Event = "post_step"

	// Stop marks the Running → Finished transition (also emitted when a
	// step fails and the run ends early).
	Stop Event = "stop"
)

// Run is what a handler sees of the run being observed.
type Run interface {
	// ID uniquely identifies this run.
	ID() string

	// Iteration returns the run's current loop counter.
	Iteration() int

	// State exposes the algorithm-specific state; handlers that need
	// the iterate type-assert it to the author's concrete type.
	State() any
}

// Handler observes one event occurrence. Returning an error (or
// panicking) is reported on the Recorder's logger and otherwise
// ignored: observers cannot abort a run.
type Handler func(e Event, run Run) error

// Recorder dispatches run events to registered handlers. The zero
// value is not usable; construct with New. A nil *Recorder is valid
// and silently drops every event, so callers can thread an optional
// recorder without nil checks of their own.
type Recorder struct {
	mu       sync.RWMutex
	handlers map[Event][]Handler
	enabled  atomic.Bool
	log      *zap.Logger
}

// RecorderOption customizes a Recorder at construction.
type RecorderOption func(*Recorder)

// WithLogger sets the error side channel (and the logger available to
// handler faults). Defaults to a no-op logger, which silently drops
// fault reports — supply a real logger in anything but throwaway code.
func WithLogger(logger *zap.Logger) RecorderOption {
	return func(r *Recorder) {
		if logger != nil {
			r.log = logger
		}
	}
}

// Disabled constructs the Recorder toggled off; flip it on later with
// SetEnabled(true).
func Disabled() RecorderOption {
	return func(r *Recorder) {
		r.enabled.Store(false)
	}
}

// New builds an enabled Recorder with no handlers registered.
func New(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		handlers: make(map[Event][]Handler),
		log:      zap.NewNop(),
	}
	r.enabled.Store(true)
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// On registers h for event e, appending to any handlers already there.
// Returns the Recorder for chaining. Safe concurrently with Emit.
func (r *Recorder) On(e Event, h Handler) *Recorder {
	if h == nil {
		return r
	}
	r.mu.Lock()
	r.handlers[e] = append(r.handlers[e], h)
	r.mu.Unlock()

	return r
}

// SetEnabled toggles emission globally for this Recorder.
func (r *Recorder) SetEnabled(on bool) {
	r.enabled.Store(on)
}

// Enabled reports whether emission is currently on.
func (r *Recorder) Enabled() bool {
	return r != nil && r.enabled.Load()
}

// Emit dispatches e to every handler registered for it, in
// registration order, synchronously. A nil Recorder, a disabled
// Recorder, or an event with no handlers returns immediately.
func (r *Recorder) Emit(e Event, run Run) {
	if r == nil || !r.enabled.Load() {
		return
	}
	r.mu.RLock()
	hs := r.handlers[e]
	r.mu.RUnlock()
	for _, h := range hs {
		r.dispatch(h, e, run)
	}
}

// dispatch invokes one handler, converting panics and errors into
// error-level log entries so no observer fault reaches the loop.
func (r *Recorder) dispatch(h Handler, e Event, run Run) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("event handler panicked",
				zap.String("event", string(e)),
				zap.String("run_id", run.ID()),
				zap.Int("iteration", run.Iteration()),
				zap.Any("panic", rec),
			)
		}
	}()
	if err := h(e, run); err != nil {
		r.log.Error("event handler failed",
			zap.String("event", string(e)),
			zap.String("run_id", run.ID()),
			zap.Int("iteration", run.Iteration()),
			zap.Error(err),
		)
	}
}
