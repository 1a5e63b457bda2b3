// Package arsipp implements Naive Anytime-Repairing SIPP (C10): repeated
// WSIPP searches with a weight decreasing from startW to 1.0, yielding a
// monotonically tightening (and eventually optimal) path.
//
// What:
//
//   - Iterator wraps the loop naive_arsipp.py drives with a Python
//     generator: each call to Next runs one wsipp.Search at the current
//     weight, then lowers the weight by stepW (floored at 1.0) for the
//     following call.
//
// Why:
//
//   - Go has no generator syntax; a pull-based iterator with an explicit
//     Next method is the idiomatic replacement, and keeps the caller in
//     control of how many iterations to actually draw instead of forcing
//     a full consumption of the sequence.
//
// Complexity:
//
//   - One full wsipp.Search per call to Next; the number of calls before
//     weight reaches 1.0 is ceil((startW-1)/stepW) + 1.
//
// Errors:
//
//   - ErrWeightBelowOne: startW < 1.
//   - ErrNonPositiveStep: stepW <= 0, which would never let weight
//     reach 1.0 and terminate.
package arsipp
