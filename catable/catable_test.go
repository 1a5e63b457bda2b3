package catable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MONICgh/sipp-go/catable"
	"github.com/MONICgh/sipp-go/obstacle"
)

func TestCellFree(t *testing.T) {
	traj := obstacle.Trajectory{{I: 0, J: 0}, {I: 0, J: 1}, {I: 0, J: 2}}
	c := catable.New([]obstacle.Trajectory{traj})

	require.False(t, c.CellFree(0, 0, 0), "obstacle starts there")
	require.True(t, c.CellFree(0, 0, 1), "obstacle has moved on")
	require.True(t, c.CellFree(5, 5, 0), "never occupied")
}

func TestMoveValid_DestinationOccupied(t *testing.T) {
	traj := obstacle.Trajectory{{I: 0, J: 1}, {I: 0, J: 1}}
	c := catable.New([]obstacle.Trajectory{traj})

	require.False(t, c.MoveValid(0, 0, 0, 1, 0), "MoveValid should reject moving into an occupied cell")
}

func TestMoveValid_EdgeCollisionRejected(t *testing.T) {
	// Obstacle walks (0,2) -> (0,1) -> (0,0): a head-on swap with an agent
	// trying (0,0) -> (0,1) at t=0.
	traj := obstacle.Trajectory{{I: 0, J: 2}, {I: 0, J: 1}, {I: 0, J: 0}}
	c := catable.New([]obstacle.Trajectory{traj})

	require.False(t, c.MoveValid(0, 0, 0, 1, 0), "MoveValid should reject a reverse-swap (edge collision) with the obstacle")
}

func TestMoveValid_WaitAllowedWhenFree(t *testing.T) {
	c := catable.New(nil)
	require.True(t, c.MoveValid(3, 3, 3, 3, 0), "waiting in a free cell should be valid")
}

func TestMoveValid_WaitRejectedWhenObstacleArrives(t *testing.T) {
	traj := obstacle.Trajectory{{I: 5, J: 5}, {I: 3, J: 3}}
	c := catable.New([]obstacle.Trajectory{traj})

	require.False(t, c.MoveValid(3, 3, 3, 3, 0), "waiting should be rejected when an obstacle arrives at t+1")
}
