package sipp

import "errors"

var (
	// ErrInvalidStart is returned when the start cell is not traversable
	// at t=0.
	ErrInvalidStart = errors.New("sipp: start cell is not traversable at t=0")

	// ErrNoPathFound is returned by Result.Path when no path was found.
	ErrNoPathFound = errors.New("sipp: no path found")
)
