package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MONICgh/sipp-go/grid"
	"github.com/MONICgh/sipp-go/gridgraph"
)

func mustGrid(t *testing.T, free [][]bool) *grid.Grid {
	t.Helper()
	g, err := grid.New(free)
	require.NoError(t, err)
	return g
}

func TestFromGrid_SingleOpenRoomIsOneComponent(t *testing.T) {
	free := [][]bool{
		{true, true, true},
		{true, true, true},
		{true, true, true},
	}
	gg := gridgraph.FromGrid(mustGrid(t, free))
	require.Equal(t, 1, gg.ComponentCount())

	same, err := gg.SameComponent(0, 0, 2, 2)
	require.NoError(t, err)
	require.True(t, same)
}

func TestFromGrid_WallSplitsIntoTwoComponents(t *testing.T) {
	free := [][]bool{
		{true, false, true},
		{true, false, true},
		{true, false, true},
	}
	gg := gridgraph.FromGrid(mustGrid(t, free))
	require.Equal(t, 2, gg.ComponentCount())

	same, err := gg.SameComponent(0, 0, 0, 2)
	require.NoError(t, err)
	require.False(t, same, "cells on opposite sides of the wall must not share a component")
}

func TestSameComponent_BlockedCellIsNeverSame(t *testing.T) {
	free := [][]bool{
		{true, false},
		{true, true},
	}
	gg := gridgraph.FromGrid(mustGrid(t, free))

	same, err := gg.SameComponent(0, 0, 0, 1)
	require.NoError(t, err)
	require.False(t, same, "a blocked endpoint can never share a component")
}

func TestSameComponent_OutOfBoundsReturnsError(t *testing.T) {
	gg := gridgraph.FromGrid(mustGrid(t, [][]bool{{true, true}}))
	_, err := gg.SameComponent(0, 0, 5, 5)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestComponents_CoversEveryFreeCellExactlyOnce(t *testing.T) {
	free := [][]bool{
		{true, false, true},
		{true, false, true},
	}
	gg := gridgraph.FromGrid(mustGrid(t, free))

	total := 0
	for _, c := range gg.Components() {
		total += len(c)
	}
	require.Equal(t, 4, total)
}
