package wsippd

import "errors"

var (
	// ErrWeightBelowOne is returned when w < 1.
	ErrWeightBelowOne = errors.New("wsippd: weight must be >= 1")

	// ErrInvalidStart is returned when the start cell is not traversable
	// at t=0.
	ErrInvalidStart = errors.New("wsippd: start cell is not traversable at t=0")

	// ErrNoPathFound is returned by Result.Path when no path was found.
	ErrNoPathFound = errors.New("wsippd: no path found")
)
