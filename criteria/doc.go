// Package criteria models stopping rules for iterative algorithms:
// immutable Criterion descriptions paired with mutable per-run State
// bookkeeping, composable with AND/OR algebra.
//
// 🚀 What is a stopping criterion?
//
//	An iterative solver repeats a step until "done". What "done" means
//	is rarely a single condition: you usually want a convergence test
//	guarded by an iteration cap and a wall-clock budget. This package
//	lets you describe each halting rule once, combine rules freely,
//	and ask afterwards which rule fired and whether it certifies a
//	converged answer or just a timeout.
//
// ✨ Key features:
//   - AfterIteration(max) — stop once the iteration counter reaches max
//   - AfterDuration(d)    — stop once wall-clock time exceeds d
//   - All / Any           — logical AND / OR over any criteria
//   - And / Or            — pairwise combinators with flattening, so
//     chained compositions stay one level deep
//   - When / WhenCancelled — predicate and context-based rules for
//     external cancellation
//   - ParseYAML           — declarative criterion trees from config
//
// Every Criterion is immutable and reusable; its mutable counterpart
// State is created by NewState, mutated in place by Update once per
// iteration, and rewound by Reset for repeated runs without
// reallocation. The State tree always mirrors the Criterion tree
// shape, so reporting (Reason) can zip the two positionally.
//
// ⚙️ Usage:
//
//	cap := criteria.AfterIteration(100)
//	budget, err := criteria.AfterDuration(2 * time.Second)
//	if err != nil {
//	  // handle ErrNonPositiveThreshold
//	}
//	stop := criteria.Or(cap, budget) // flat Any with two children
//
//	st := stop.NewState()
//	for !stop.Update(run, st) {
//	  // ... one algorithm step ...
//	}
//	fmt.Println(stop.Reason(st))
//
// See the solve package for the generic loop that drives criteria,
// and example_test.go for complete walkthroughs.
package criteria
