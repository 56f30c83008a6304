// Package solvekit is a small control plane for iterative numerical
// algorithms: composable stopping criteria, a generic solve loop, and
// an event boundary for observation — with the actual mathematics left
// entirely to you.
//
// 🚀 What is solvekit?
//
//	Every iterative solver repeats the same skeleton: initialize a
//	state, check whether to stop, take a step, report. solvekit
//	implements that skeleton once, so an algorithm author supplies
//	only three things — an immutable problem, an immutable algorithm
//	configuration carrying a stopping rule, and a step function —
//	and gets the rest for free:
//		• Stopping rules: iteration caps, wall-clock budgets,
//		  predicates, context cancellation
//		• Composition: AND/OR algebra with flattening, so chained
//		  rules stay one level deep and report flat reason lists
//		• Reporting: which rule fired, at which iteration, and
//		  whether it certifies convergence or is a mere cutoff
//		• A four-state solve loop with exactly-once termination
//		  checks and state reuse across repeated runs
//		• An event boundary with fault isolation, structured zap
//		  logging and Prometheus metrics
//
// ✨ Why choose solvekit?
//
//   - Minimal author surface – two hooks (Init, Step) and one rule
//   - Open extension – new criterion variants plug in via a small
//     interface, no core changes needed
//   - Honest reporting – "stopped" and "converged" are kept distinct
//   - Observability that can't hurt – a failing or panicking event
//     handler is logged, never aborts the algorithm
//
// Everything is organized under three subpackages:
//
//	criteria/ — Criterion & State model, built-ins, composition algebra
//	solve/    — Algorithm / State / Runner contracts & the generic loop
//	record/   — event names, Recorder, zap & Prometheus observers
//
// Quick taste:
//
//	stop := criteria.Or(cap100, budget2s) // stop on either rule
//	final, err := solve.Solve(problem, algo, runner,
//	  solve.WithRecorder(rec))
//	fmt.Println(stop.Reason(final.CriterionState()))
//
// See each subpackage's doc.go and example_test.go for walkthroughs.
package solvekit
