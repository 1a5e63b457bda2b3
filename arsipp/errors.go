package arsipp

import "errors"

var (
	// ErrWeightBelowOne is returned when startW < 1.
	ErrWeightBelowOne = errors.New("arsipp: start weight must be >= 1")

	// ErrNonPositiveStep is returned when stepW <= 0.
	ErrNonPositiveStep = errors.New("arsipp: step weight must be > 0")
)
