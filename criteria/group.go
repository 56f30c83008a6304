package criteria

import (
	"fmt"
	"strings"
)

// groupMode selects the aggregation rule of a composite criterion.
type groupMode int

const (
	modeAll groupMode = iota // logical AND over children
	modeAny                  // logical OR over children
)

// All returns a composite criterion satisfied once every child is
// satisfied (logical AND). Children keep the given order, and every
// child is checked every iteration — no short-circuiting — so each
// child's bookkeeping stays consistent with the run.
//
// All() with no children is vacuously satisfied. The composite
// indicates convergence when at least one child does: reaching the
// AND-condition through a convergence-certifying sub-rule counts as
// convergence even when the remaining children are plain caps.
func All(children ...Criterion) Criterion {
	return &group{mode: modeAll, children: cloneCriteria(children)}
}

// Any returns a composite criterion satisfied once at least one child
// is satisfied (logical OR). Children keep the given order, and every
// child is checked every iteration — no short-circuiting.
//
// Any() with no children is never satisfied. The composite indicates
// convergence only when every child does: an OR-stop certifies
// convergence only if every possible triggering reason would.
func Any(children ...Criterion) Criterion {
	return &group{mode: modeAny, children: cloneCriteria(children)}
}

// And combines two criteria with logical AND, flattening: when either
// operand is itself an All composite, its children are spliced in
// rather than nested one level deeper. Order is preserved
// left-to-right, so And(And(a, b), c) yields a flat 3-child All.
// A flat tree keeps GroupState shallow and Reason output a flat list.
func And(a, b Criterion) Criterion {
	return combine(modeAll, a, b)
}

// Or combines two criteria with logical OR, flattening exactly like
// And does for All.
func Or(a, b Criterion) Criterion {
	return combine(modeAny, a, b)
}

// combine splices same-mode composites and wraps everything else.
func combine(mode groupMode, a, b Criterion) Criterion {
	kids := make([]Criterion, 0, 2)
	for _, c := range []Criterion{a, b} {
		if g, ok := c.(*group); ok && g.mode == mode {
			kids = append(kids, g.children...)
			continue
		}
		kids = append(kids, c)
	}

	return &group{mode: mode, children: kids}
}

// cloneCriteria copies the child slice so later append on the caller's
// slice cannot alias into the composite.
func cloneCriteria(children []Criterion) []Criterion {
	kids := make([]Criterion, len(children))
	copy(kids, children)

	return kids
}

// group implements both All and Any composites.
type group struct {
	mode     groupMode
	children []Criterion
}

// NewState allocates a GroupState whose children positionally mirror
// the composite's children; the shape never changes afterwards.
func (g *group) NewState() State {
	kids := make([]State, len(g.children))
	for i, c := range g.children {
		kids[i] = c.NewState()
	}

	return &GroupState{Children: kids, At: NotTriggered}
}

// Reset recurses positionally into every child state, then rewinds the
// composite's own marker.
func (g *group) Reset(st State) {
	gs := st.(*GroupState)
	for i, c := range g.children {
		c.Reset(gs.Children[i])
	}
	gs.At = NotTriggered
}

// Done aggregates the children's pure checks without mutating any
// state.
func (g *group) Done(run Run, st State) bool {
	gs := st.(*GroupState)
	all, any := true, false
	for i, c := range g.children {
		if c.Done(run, gs.Children[i]) {
			any = true
		} else {
			all = false
		}
	}

	return g.decide(all, any)
}

// Update checks every child — each must get the chance to refresh its
// own bookkeeping every iteration — and only then decides. The call at
// iteration <= 0 first rewinds the composite's own marker, so a reused
// state resyncs on restart even without an explicit Reset.
func (g *group) Update(run Run, st State) bool {
	gs := st.(*GroupState)
	if run.Iteration() <= 0 {
		gs.At = NotTriggered
	}
	all, any := true, false
	for i, c := range g.children {
		if c.Update(run, gs.Children[i]) {
			any = true
		} else {
			all = false
		}
	}
	fin := g.decide(all, any)
	if fin {
		gs.At = run.Iteration()
	}

	return fin
}

// decide applies the aggregation rule to the child verdicts.
func (g *group) decide(all, any bool) bool {
	if g.mode == modeAll {
		return all
	}

	return any
}

// Reason concatenates the non-empty child reasons in child order;
// children that did not trigger contribute nothing.
func (g *group) Reason(st State) string {
	gs := st.(*GroupState)
	parts := make([]string, 0, len(g.children))
	for i, c := range g.children {
		if r := c.Reason(gs.Children[i]); r != "" {
			parts = append(parts, r)
		}
	}

	return strings.Join(parts, "; ")
}

// IndicatesConvergence aggregates asymmetrically: All is convergent
// when any child is, Any only when all children are.
func (g *group) IndicatesConvergence() bool {
	all, any := true, false
	for _, c := range g.children {
		if c.IndicatesConvergence() {
			any = true
		} else {
			all = false
		}
	}
	if g.mode == modeAll {
		return any
	}

	return all
}

// Summary lists the children's summaries under the aggregation rule.
func (g *group) Summary() string {
	parts := make([]string, len(g.children))
	for i, c := range g.children {
		parts[i] = c.Summary()
	}
	label := "all of"
	if g.mode == modeAny {
		label = "any of"
	}

	return fmt.Sprintf("%s [%s]", label, strings.Join(parts, "; "))
}
