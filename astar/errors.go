package astar

import "errors"

var (
	// ErrInvalidStart is returned when the start cell is out of bounds or
	// sits on a static obstacle.
	ErrInvalidStart = errors.New("astar: start cell is not traversable")

	// ErrInvalidGoal is returned when the goal cell is out of bounds or
	// sits on a static obstacle.
	ErrInvalidGoal = errors.New("astar: goal cell is not traversable")

	// ErrNoPathFound is returned by Result.Path when no path was found.
	ErrNoPathFound = errors.New("astar: no path found")
)
