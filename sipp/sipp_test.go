package sipp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MONICgh/sipp-go/grid"
	"github.com/MONICgh/sipp-go/heuristic"
	"github.com/MONICgh/sipp-go/obstacle"
	"github.com/MONICgh/sipp-go/safemap"
	"github.com/MONICgh/sipp-go/sipp"
)

func mustSafeMap(t *testing.T, free [][]bool, trajectories []obstacle.Trajectory) *safemap.SafeMap {
	t.Helper()
	g, err := grid.New(free)
	require.NoError(t, err)
	m, err := safemap.Build(g, trajectories)
	require.NoError(t, err)
	return m
}

func TestSearch_InvalidStart(t *testing.T) {
	m := mustSafeMap(t, [][]bool{{true, false}}, nil)
	_, err := sipp.Search(m, obstacle.Cell{I: 0, J: 1}, obstacle.Cell{I: 0, J: 0}, heuristic.Manhattan)
	require.ErrorIs(t, err, sipp.ErrInvalidStart)
}

func TestSearch_NoObstaclesFindsShortestPath(t *testing.T) {
	free := [][]bool{
		{true, true, true},
		{true, true, true},
		{true, true, true},
	}
	m := mustSafeMap(t, free, nil)

	res, err := sipp.Search(m, obstacle.Cell{I: 0, J: 0}, obstacle.Cell{I: 2, J: 2}, heuristic.Manhattan)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 4, res.Goal.G())

	path, err := res.Path()
	require.NoError(t, err)
	require.Len(t, path, 5)
	require.Equal(t, obstacle.Cell{I: 0, J: 0}, path[0].Cell)
	require.Equal(t, obstacle.Cell{I: 2, J: 2}, path[len(path)-1].Cell)
}

func TestSearch_WaitsOutATemporarilyOccupiedCorridor(t *testing.T) {
	// Obstacle sits at (0,1) for t=0,1, then steps down to (1,1) and
	// settles there; it never touches the agent's row again. The agent
	// cannot enter (0,1) until t=2, one tick later than the unobstructed
	// Manhattan distance of 2 would allow.
	free := [][]bool{
		{true, true, true},
		{true, true, true},
	}
	traj := obstacle.Trajectory{{I: 0, J: 1}, {I: 0, J: 1}, {I: 1, J: 1}}
	m := mustSafeMap(t, free, []obstacle.Trajectory{traj})

	res, err := sipp.Search(m, obstacle.Cell{I: 0, J: 0}, obstacle.Cell{I: 0, J: 2}, heuristic.Manhattan)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 3, res.Goal.G(), "one tick more than the unobstructed distance of 2")
}

func TestSearch_UnreachableGoalReportsNotFound(t *testing.T) {
	free := [][]bool{
		{true, false},
		{false, true},
	}
	m := mustSafeMap(t, free, nil)

	res, err := sipp.Search(m, obstacle.Cell{I: 0, J: 0}, obstacle.Cell{I: 1, J: 1}, heuristic.Manhattan)
	require.NoError(t, err)
	require.False(t, res.Found)

	_, err = res.Path()
	require.ErrorIs(t, err, sipp.ErrNoPathFound)
}
