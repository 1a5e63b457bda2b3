package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MONICgh/sipp-go/heuristic"
	"github.com/MONICgh/sipp-go/obstacle"
)

func TestManhattan(t *testing.T) {
	cases := []struct {
		from, goal obstacle.Cell
		want       float64
	}{
		{obstacle.Cell{I: 0, J: 0}, obstacle.Cell{I: 0, J: 0}, 0},
		{obstacle.Cell{I: 0, J: 0}, obstacle.Cell{I: 3, J: 4}, 7},
		{obstacle.Cell{I: 3, J: 4}, obstacle.Cell{I: 0, J: 0}, 7},
		{obstacle.Cell{I: -2, J: 5}, obstacle.Cell{I: 2, J: -3}, 12},
	}
	for _, tc := range cases {
		got := heuristic.Manhattan(tc.from, tc.goal)
		assert.Equalf(t, tc.want, got, "Manhattan(%v,%v)", tc.from, tc.goal)
	}
}
