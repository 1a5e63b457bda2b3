package arsipp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MONICgh/sipp-go/arsipp"
	"github.com/MONICgh/sipp-go/grid"
	"github.com/MONICgh/sipp-go/heuristic"
	"github.com/MONICgh/sipp-go/obstacle"
	"github.com/MONICgh/sipp-go/safemap"
)

func mustSafeMap(t *testing.T, free [][]bool, trajectories []obstacle.Trajectory) *safemap.SafeMap {
	t.Helper()
	g, err := grid.New(free)
	require.NoError(t, err)
	m, err := safemap.Build(g, trajectories)
	require.NoError(t, err)
	return m
}

func TestNew_WeightBelowOne(t *testing.T) {
	m := mustSafeMap(t, [][]bool{{true, true}}, nil)
	_, err := arsipp.New(m, obstacle.Cell{I: 0, J: 0}, obstacle.Cell{I: 0, J: 1}, 0.5, 0.5, heuristic.Manhattan)
	require.ErrorIs(t, err, arsipp.ErrWeightBelowOne)
}

func TestNew_NonPositiveStep(t *testing.T) {
	m := mustSafeMap(t, [][]bool{{true, true}}, nil)
	_, err := arsipp.New(m, obstacle.Cell{I: 0, J: 0}, obstacle.Cell{I: 0, J: 1}, 3, 0, heuristic.Manhattan)
	require.ErrorIs(t, err, arsipp.ErrNonPositiveStep)
}

func TestNew_InvalidStart(t *testing.T) {
	m := mustSafeMap(t, [][]bool{{true, false}}, nil)
	_, err := arsipp.New(m, obstacle.Cell{I: 0, J: 1}, obstacle.Cell{I: 0, J: 0}, 3, 0.5, heuristic.Manhattan)
	require.Error(t, err)
}

func TestIterator_DecreasesWeightToOneAndStops(t *testing.T) {
	free := [][]bool{
		{true, true, true},
		{true, true, true},
		{true, true, true},
	}
	m := mustSafeMap(t, free, nil)

	it, err := arsipp.New(m, obstacle.Cell{I: 0, J: 0}, obstacle.Cell{I: 2, J: 2}, 2.0, 0.5, heuristic.Manhattan)
	require.NoError(t, err)

	var weights []float64
	for {
		res, more := it.Next()
		weights = append(weights, res.Weight)
		require.Truef(t, res.Found, "iteration at weight %v did not find a path", res.Weight)
		if !more {
			break
		}
	}

	require.Equal(t, []float64{2.0, 1.5, 1.0}, weights)

	final, more := it.Next()
	require.False(t, more, "exhausted iterator should report no more iterations")
	require.False(t, final.Found, "Next after exhaustion should return a zero IterationResult")
}

func TestIterator_FinalIterationIsOptimal(t *testing.T) {
	free := [][]bool{
		{true, true, true},
		{true, true, true},
		{true, true, true},
	}
	m := mustSafeMap(t, free, nil)

	it, err := arsipp.New(m, obstacle.Cell{I: 0, J: 0}, obstacle.Cell{I: 2, J: 2}, 3.0, 1.0, heuristic.Manhattan)
	require.NoError(t, err)

	var last arsipp.IterationResult
	for {
		res, more := it.Next()
		last = res
		if !more {
			break
		}
	}

	require.Equal(t, 1.0, last.Weight)
	require.Equal(t, 4, last.Goal.G(), "the optimal cost")
}
