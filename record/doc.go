// Package record is the event boundary of the solve loop: named run
// events, handlers to observe them, and a Recorder that dispatches
// with fault isolation.
//
// 🚀 What is the event boundary?
//
//	The loop announces Start, PreStep, PostStep and Stop (plus any
//	custom names an algorithm emits itself) without depending on who
//	listens. Handlers are registered per event on a Recorder; a nil
//	Recorder, a disabled Recorder, or an event nobody registered for
//	all cost next to nothing, so instrumentation is free to leave in.
//
// ✨ Key features:
//   - fault isolation: a handler that returns an error or panics is
//     reported on the Recorder's zap logger at error level and never
//     aborts the run — algorithm correctness is insulated from
//     observability failures
//   - Logged(logger) — structured zap logging of every event
//   - Metrics — Prometheus counters and a run-duration histogram
//   - SetEnabled — one atomic toggle to silence a shared Recorder
//
// ⚙️ Usage:
//
//	logger, _ := zap.NewProduction()
//	rec := record.New(record.WithLogger(logger)).
//	  On(record.PostStep, record.Logged(logger)).
//	  On(record.Stop, func(e record.Event, run record.Run) error {
//	    fmt.Println("finished after", run.Iteration(), "iterations")
//	    return nil
//	  })
//
//	final, err := solve.Solve(p, a, r, solve.WithRecorder(rec))
//
// Emission is synchronous and in-line with the loop: a handler that
// blocks stalls the algorithm. Registration is safe concurrently with
// emission, so one Recorder may serve many simultaneous runs.
package record
