package pathrecon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MONICgh/sipp-go/obstacle"
	"github.com/MONICgh/sipp-go/pathrecon"
)

// fakeNode is a minimal pathrecon.Node for testing reconstruction logic
// independent of any real search algorithm.
type fakeNode struct {
	cell   obstacle.Cell
	g      int
	parent *fakeNode
}

func (n *fakeNode) Cell() obstacle.Cell { return n.cell }
func (n *fakeNode) G() int              { return n.g }
func (n *fakeNode) Parent() (pathrecon.Node, bool) {
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

func TestReconstruct_NilGoal(t *testing.T) {
	require.Nil(t, pathrecon.Reconstruct(nil))
}

func TestReconstruct_StraightChain(t *testing.T) {
	start := &fakeNode{cell: obstacle.Cell{I: 0, J: 0}, g: 0}
	mid := &fakeNode{cell: obstacle.Cell{I: 0, J: 1}, g: 1, parent: start}
	goal := &fakeNode{cell: obstacle.Cell{I: 0, J: 2}, g: 2, parent: mid}

	steps := pathrecon.Reconstruct(goal)
	want := []pathrecon.Step{
		{Cell: obstacle.Cell{I: 0, J: 0}, G: 0},
		{Cell: obstacle.Cell{I: 0, J: 1}, G: 1},
		{Cell: obstacle.Cell{I: 0, J: 2}, G: 2},
	}
	require.Equal(t, want, steps)
}

func TestReconstruct_SynthesizesWaitSteps(t *testing.T) {
	// parent departs (0,0) at t=2 but the next recorded node does not
	// arrive at (0,1) until t=5: the agent spent t=2,3,4 waiting at (0,0).
	start := &fakeNode{cell: obstacle.Cell{I: 0, J: 0}, g: 2}
	goal := &fakeNode{cell: obstacle.Cell{I: 0, J: 1}, g: 5, parent: start}

	steps := pathrecon.Reconstruct(goal)
	require.Len(t, steps, 6)
	for g := 2; g <= 4; g++ {
		require.Equalf(t, pathrecon.Step{Cell: obstacle.Cell{I: 0, J: 0}, G: g}, steps[g], "wait step at g=%d", g)
	}
	require.Equal(t, pathrecon.Step{Cell: obstacle.Cell{I: 0, J: 1}, G: 5}, steps[5])
}

func TestReconstruct_ConsecutiveGDiffersByOne(t *testing.T) {
	start := &fakeNode{cell: obstacle.Cell{I: 1, J: 1}, g: 0}
	goal := &fakeNode{cell: obstacle.Cell{I: 2, J: 1}, g: 4, parent: start}

	steps := pathrecon.Reconstruct(goal)
	for i := 1; i < len(steps); i++ {
		require.Equal(t, 1, steps[i].G-steps[i-1].G)
	}
}
