package safemap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MONICgh/sipp-go/grid"
	"github.com/MONICgh/sipp-go/obstacle"
	"github.com/MONICgh/sipp-go/safemap"
)

func mustGrid(t *testing.T, free [][]bool) *grid.Grid {
	t.Helper()
	g, err := grid.New(free)
	require.NoError(t, err)
	return g
}

func TestBuild_NoObstacles_EverySecondIsSafe(t *testing.T) {
	g := mustGrid(t, [][]bool{{true, true}, {true, true}})
	sm, err := safemap.Build(g, nil)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for _, tm := range []int{0, 1, 1000} {
				require.Truef(t, sm.Traversable(i, j, tm), "Traversable(%d,%d,%d) should be true with no obstacles", i, j, tm)
			}
		}
	}
}

func TestBuild_StaticObstacleHasNoIntervals(t *testing.T) {
	g := mustGrid(t, [][]bool{{true, false}})
	sm, err := safemap.Build(g, nil)
	require.NoError(t, err)

	require.False(t, sm.Traversable(0, 1, 0), "static obstacle cell should never be traversable")
	require.Equal(t, -1, sm.GetInterval(0, 1, 0))
}

func TestBuild_SettledObstacleClosesCellForever(t *testing.T) {
	g := mustGrid(t, [][]bool{{true, true, true}})
	traj := obstacle.Trajectory{{I: 0, J: 2}, {I: 0, J: 1}, {I: 0, J: 0}}
	sm, err := safemap.Build(g, []obstacle.Trajectory{traj})
	require.NoError(t, err)

	require.True(t, sm.Traversable(0, 0, 0), "(0,0) should be safe before the obstacle settles there at t=2")
	require.True(t, sm.Traversable(0, 0, 1), "(0,0) should be safe before the obstacle settles there at t=2")

	for _, tm := range []int{2, 3, 100} {
		require.Falsef(t, sm.Traversable(0, 0, tm), "Traversable(0,0,%d) should be false once the obstacle settles there", tm)
	}
}

func TestGetInterval_OutOfBounds(t *testing.T) {
	g := mustGrid(t, [][]bool{{true}})
	sm, err := safemap.Build(g, nil)
	require.NoError(t, err)
	require.Equal(t, -1, sm.GetInterval(5, 5, 0))
}

func TestNeighbours_FreeCorridorReachesNeighbourNextTick(t *testing.T) {
	g := mustGrid(t, [][]bool{{true, true}})
	sm, err := safemap.Build(g, nil)
	require.NoError(t, err)

	trs, err := sm.Neighbours(0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, []safemap.Transition{{Cell: obstacle.Cell{I: 0, J: 1}, T: 1}}, trs)
}

func TestNeighbours_EdgeCollisionExcludesTransition(t *testing.T) {
	// Obstacle walks (0,2) -> (0,1) -> (0,0), settling at (0,0) at t=2.
	// An agent sitting at (0,0) can only depart before t=2 (f=2), and the
	// only window into (0,1) via this corridor requires swapping with the
	// obstacle mid-edge, so the transition must be excluded entirely.
	g := mustGrid(t, [][]bool{{true, true, true}})
	traj := obstacle.Trajectory{{I: 0, J: 2}, {I: 0, J: 1}, {I: 0, J: 0}}
	sm, err := safemap.Build(g, []obstacle.Trajectory{traj})
	require.NoError(t, err)

	trs, err := sm.Neighbours(0, 0, 0)
	require.NoError(t, err)
	for _, tr := range trs {
		require.NotEqualf(t, obstacle.Cell{I: 0, J: 1}, tr.Cell, "edge-colliding transition to (0,1) at t=%d must be excluded", tr.T)
	}
}

func TestNeighbours_InconsistentStateError(t *testing.T) {
	g := mustGrid(t, [][]bool{{true, true, true}})
	traj := obstacle.Trajectory{{I: 0, J: 0}}
	sm, err := safemap.Build(g, []obstacle.Trajectory{traj})
	require.NoError(t, err)

	// t=0 is the occupied instant at (0,0): not strictly inside any interval.
	_, err = sm.Neighbours(0, 0, 0)
	require.ErrorIs(t, err, safemap.ErrInconsistentNeighbourState)
}
