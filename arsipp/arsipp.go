package arsipp

import (
	"math"

	"github.com/MONICgh/sipp-go/heuristic"
	"github.com/MONICgh/sipp-go/obstacle"
	"github.com/MONICgh/sipp-go/safemap"
	"github.com/MONICgh/sipp-go/wsipp"
)

// eps mirrors sys.float_info.epsilon's role in naive_arsipp.py's
// termination check.
const eps = 2.220446049250313e-16

// IterationResult bundles one Next call's outcome: the WSIPP result for
// that weight, the cumulative step count across all iterations so far,
// and the weight that produced it.
type IterationResult struct {
	wsipp.Result
	Steps  int
	Weight float64
}

// Iterator drives repeated WSIPP searches with a decreasing weight.
type Iterator struct {
	m      *safemap.SafeMap
	start  obstacle.Cell
	goal   obstacle.Cell
	h      heuristic.Func
	weight float64
	stepW  float64
	steps  int
	done   bool
}

// New constructs an Iterator starting at weight startW, decreasing it by
// stepW each call to Next until it reaches 1.0.
func New(m *safemap.SafeMap, start, goal obstacle.Cell, startW, stepW float64, h heuristic.Func) (*Iterator, error) {
	if startW < 1 {
		return nil, ErrWeightBelowOne
	}
	if stepW <= 0 {
		return nil, ErrNonPositiveStep
	}
	if !m.Traversable(start.I, start.J, 0) {
		return nil, wsipp.ErrInvalidStart
	}

	return &Iterator{m: m, start: start, goal: goal, h: h, weight: startW, stepW: stepW}, nil
}

// Next runs one WSIPP search at the current weight. The returned bool
// reports whether a further call to Next would run another iteration;
// once it is false, the iterator has just produced its weight=1.0
// (fully optimal) result and is exhausted.
func (it *Iterator) Next() (IterationResult, bool) {
	if it.done {
		return IterationResult{}, false
	}

	res, err := wsipp.Search(it.m, it.start, it.goal, it.weight, it.h)
	if err != nil {
		panic(err)
	}

	it.steps += res.Steps
	result := IterationResult{Result: res, Steps: it.steps, Weight: it.weight}

	if math.Abs(it.weight-1.0) < eps {
		it.done = true
		return result, false
	}

	next := it.weight - it.stepW
	if next < 1.0 {
		next = 1.0
	}
	it.weight = next

	return result, true
}
