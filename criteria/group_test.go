// Package criteria_test verifies composite criteria: AND/OR semantics,
// the flattening algebra, and the asymmetric convergence aggregation.
package criteria_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solvekit/criteria"
)

// flagCriterion is a hand-rolled criterion fixture: finished while its
// flag is up, counting Update calls so tests can prove every child is
// checked every iteration.
type flagCriterion struct {
	flag      *bool
	converges bool
	updates   *int
}

func (c *flagCriterion) NewState() criteria.State {
	return &criteria.TriggerState{At: criteria.NotTriggered}
}

func (c *flagCriterion) Reset(st criteria.State) {
	st.(*criteria.TriggerState).At = criteria.NotTriggered
}

func (c *flagCriterion) Done(_ criteria.Run, _ criteria.State) bool { return *c.flag }

func (c *flagCriterion) Update(run criteria.Run, st criteria.State) bool {
	*c.updates++
	if *c.flag {
		st.(*criteria.TriggerState).At = run.Iteration()

		return true
	}

	return false
}

func (c *flagCriterion) Reason(st criteria.State) string {
	if st.TriggeredAt() == criteria.NotTriggered {
		return ""
	}

	return "flag raised"
}

func (c *flagCriterion) IndicatesConvergence() bool { return c.converges }

func (c *flagCriterion) Summary() string { return "stop when flag is raised" }

// newFlag builds a flagCriterion plus its controls.
func newFlag(converges bool) (*flagCriterion, *bool, *int) {
	flag := false
	updates := 0

	return &flagCriterion{flag: &flag, converges: converges, updates: &updates}, &flag, &updates
}

// TestAll_RequiresEveryChild checks AND semantics: finished only once
// every child is finished.
func TestAll_RequiresEveryChild(t *testing.T) {
	a, aFlag, _ := newFlag(false)
	b, bFlag, _ := newFlag(false)
	c := criteria.All(a, b)
	st := c.NewState()

	assert.False(t, c.Update(atIteration(1), st), "no child finished")

	*aFlag = true
	assert.False(t, c.Update(atIteration(2), st), "one of two children finished")

	*bFlag = true
	assert.True(t, c.Update(atIteration(3), st), "both children finished")
	assert.Equal(t, 3, st.TriggeredAt(), "composite records its own trigger iteration")
}

// TestAny_AnyChildSuffices checks OR semantics: finished once at least
// one child is finished.
func TestAny_AnyChildSuffices(t *testing.T) {
	a, _, _ := newFlag(false)
	b, bFlag, _ := newFlag(false)
	c := criteria.Any(a, b)
	st := c.NewState()

	assert.False(t, c.Update(atIteration(1), st), "no child finished")

	*bFlag = true
	assert.True(t, c.Update(atIteration(2), st), "one child finished suffices")
	assert.Equal(t, 2, st.TriggeredAt())
}

// TestGroup_NoShortCircuit proves every child's Update runs every
// iteration, even after the composite's verdict is already decidable.
func TestGroup_NoShortCircuit(t *testing.T) {
	a, aFlag, aUpdates := newFlag(false)
	b, _, bUpdates := newFlag(false)
	*aFlag = true // Any(a, b) is decidable from a alone

	c := criteria.Any(a, b)
	st := c.NewState()

	const rounds = 4
	for it := 1; it <= rounds; it++ {
		require.True(t, c.Update(atIteration(it), st))
	}
	assert.Equal(t, rounds, *aUpdates, "first child updated every iteration")
	assert.Equal(t, rounds, *bUpdates, "second child updated every iteration despite decidable verdict")
}

// TestAnd_Flattening checks the combinator algebra: chained And stays
// a flat All, observable through the GroupState shape.
func TestAnd_Flattening(t *testing.T) {
	a := criteria.AfterIteration(1)
	b := criteria.AfterIteration(2)
	c := criteria.AfterIteration(3)

	flat := criteria.And(criteria.And(a, b), c)
	gs, ok := flat.NewState().(*criteria.GroupState)
	require.True(t, ok, "And must build a composite")
	assert.Len(t, gs.Children, 3, "(a & b) & c must flatten to 3 children, not nest")

	// Children must be leaves, not a nested composite.
	for i, child := range gs.Children {
		_, nested := child.(*criteria.GroupState)
		assert.False(t, nested, "child %d must not be a nested group", i)
	}
}

// TestOr_Flattening checks the same flattening law for Or, on both
// operand sides.
func TestOr_Flattening(t *testing.T) {
	a := criteria.AfterIteration(1)
	b := criteria.AfterIteration(2)
	c := criteria.AfterIteration(3)

	left := criteria.Or(criteria.Or(a, b), c)
	right := criteria.Or(a, criteria.Or(b, c))

	lgs := left.NewState().(*criteria.GroupState)
	rgs := right.NewState().(*criteria.GroupState)
	assert.Len(t, lgs.Children, 3, "left-nested Or must flatten")
	assert.Len(t, rgs.Children, 3, "right-nested Or must flatten")
}

// TestAnd_DoesNotFlattenAcrossModes ensures an Any operand stays one
// intact child of an And composite.
func TestAnd_DoesNotFlattenAcrossModes(t *testing.T) {
	a := criteria.AfterIteration(1)
	b := criteria.AfterIteration(2)
	c := criteria.AfterIteration(3)

	mixed := criteria.And(criteria.Or(a, b), c)
	gs := mixed.NewState().(*criteria.GroupState)
	require.Len(t, gs.Children, 2, "Or operand must stay one child")
	_, nested := gs.Children[0].(*criteria.GroupState)
	assert.True(t, nested, "the Or child keeps its own group state")
}

// TestGroup_ConvergenceAggregation checks the asymmetric rules:
// All converges when any child does, Any only when all children do.
func TestGroup_ConvergenceAggregation(t *testing.T) {
	conv, _, _ := newFlag(true)
	cap1 := criteria.AfterIteration(5) // never converges
	cap2 := criteria.AfterIteration(9)

	assert.True(t, criteria.All(conv, cap1).IndicatesConvergence(),
		"All with one converging child converges")
	assert.False(t, criteria.All(cap1, cap2).IndicatesConvergence(),
		"All of pure caps does not converge")

	assert.False(t, criteria.Any(conv, cap1).IndicatesConvergence(),
		"Any with one non-converging child does not converge")
	conv2, _, _ := newFlag(true)
	assert.True(t, criteria.Any(conv, conv2).IndicatesConvergence(),
		"Any of converging children converges")
}

// TestGroup_ReasonConcatenation checks the reason string holds only
// the triggered children's reasons, in child order.
func TestGroup_ReasonConcatenation(t *testing.T) {
	a, aFlag, _ := newFlag(false)
	capC := criteria.AfterIteration(2)
	c := criteria.Any(a, capC)
	st := c.NewState()

	*aFlag = false
	require.True(t, c.Update(atIteration(2), st), "cap fires at iteration 2")

	reason := c.Reason(st)
	assert.Contains(t, reason, "iteration cap (2)", "triggered child's reason present")
	assert.NotContains(t, reason, "flag raised", "untriggered child contributes nothing")
}

// TestGroup_ResetRecurses checks Reset rewinds the composite and all
// children in place, preserving the tree shape.
func TestGroup_ResetRecurses(t *testing.T) {
	a := criteria.AfterIteration(1)
	b := criteria.AfterIteration(2)
	c := criteria.All(a, b)
	st := c.NewState()
	require.True(t, c.Update(atIteration(4), st), "both caps fire at iteration 4")

	gs := st.(*criteria.GroupState)
	kids := gs.Children // remember the child identities

	c.Reset(st)
	assert.Equal(t, criteria.NotTriggered, gs.At, "composite marker rewound")
	for i, child := range gs.Children {
		assert.Equal(t, criteria.NotTriggered, child.TriggeredAt(), "child %d marker rewound", i)
		assert.Same(t, kids[i], gs.Children[i], "child %d state reused, not reallocated", i)
	}
}

// TestGroup_IterationZeroResync checks the composite rewinds its own
// marker on the iteration-0 check, independent of explicit Reset.
func TestGroup_IterationZeroResync(t *testing.T) {
	a, aFlag, _ := newFlag(false)
	c := criteria.Any(a)
	st := c.NewState()

	*aFlag = true
	require.True(t, c.Update(atIteration(3), st))
	require.Equal(t, 3, st.TriggeredAt())

	// Restart signal: the stale marker must not survive.
	*aFlag = false
	assert.False(t, c.Update(atIteration(0), st), "restart check does not fire")
	assert.Equal(t, criteria.NotTriggered, st.TriggeredAt(), "marker resynced at iteration 0")
}

// TestGroup_EmptyComposites documents the vacuous cases.
func TestGroup_EmptyComposites(t *testing.T) {
	all := criteria.All()
	assert.True(t, all.Update(atIteration(1), all.NewState()), "empty All is vacuously finished")

	anyC := criteria.Any()
	assert.False(t, anyC.Update(atIteration(1), anyC.NewState()), "empty Any never finishes")
}

// TestGroup_Summary spot-checks the one-line summaries.
func TestGroup_Summary(t *testing.T) {
	c := criteria.And(criteria.AfterIteration(2), criteria.AfterIteration(5))
	sum := c.Summary()
	assert.Contains(t, sum, "all of")
	assert.Contains(t, sum, "stop after 2 iteration(s)")
	assert.Contains(t, sum, "stop after 5 iteration(s)")
}
