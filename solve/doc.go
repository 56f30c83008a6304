// Package solve drives iterative algorithms through a generic,
// criterion-terminated loop.
//
// 🚀 What does solve do?
//
//	You bring three things: an immutable problem description, an
//	immutable Algorithm configuration exposing a stopping rule from
//	the criteria package, and a Runner with two hooks — Init builds
//	the mutable per-run State, Step advances the iterate by one
//	iteration. Solve supplies everything around them: the state
//	machine (Created → Initialized → Running → Finished), the
//	exactly-once-per-iteration termination check, event emission at
//	the loop boundaries, and state reuse across repeated runs.
//
// ✨ Key features:
//   - one call: Solve(problem, algorithm, runner) returns the final State
//   - termination purely via criteria — inject criteria.WhenCancelled
//     for external cancellation, no separate cancel channel to plumb
//   - BaseState to embed: iteration counter + criterion state wired up
//   - WithState to reuse a State (and its criterion tree, reset in
//     place) across runs without reallocation
//   - WithRecorder to observe Start / PreStep / PostStep / Stop events;
//     a nil recorder costs one pointer check per event
//
// ⚙️ Usage:
//
//	type descent struct{ stop criteria.Criterion }
//	func (a descent) Criterion() criteria.Criterion { return a.stop }
//
//	type state struct {
//	  solve.BaseState
//	  x float64
//	}
//
//	type runner struct{}
//	func (runner) Init(p any, a solve.Algorithm) (solve.State, error) {
//	  return &state{BaseState: solve.NewBaseState(a.Criterion()), x: 1}, nil
//	}
//	func (runner) Step(p any, a solve.Algorithm, s solve.State) error {
//	  st := s.(*state)
//	  st.x /= 2 // one iteration of the actual mathematics
//	  return nil
//	}
//
//	final, err := solve.Solve(nil, descent{criteria.AfterIteration(10)}, runner{})
//
// Concurrency: one State must be driven by at most one loop at a time;
// independent Problem/Algorithm/State triples may run concurrently.
//
// See example_test.go for complete runs and the record package for the
// event boundary.
package solve
