// Package wsipp implements Weighted SIPP (C8): SIPP with an inflated
// heuristic (f = g + w·h, w ≥ 1) and re-expansion, trading optimality for
// speed in proportion to w.
//
// What:
//
//   - Node mirrors sipp.Node with one addition: the weight w baked into
//     its F value.
//   - Search drives a search.Frontier under search.Reexpand: when a
//     better path to an already-closed (cell, interval) surfaces, the
//     key is reopened and expanded again, which plain SIPP's
//     no-reexpansion policy would have silently discarded.
//
// Why:
//
//   - Because f = g + w·h overestimates the true remaining cost once
//     w > 1, the search is no longer guaranteed to close a state with
//     its optimal g on first expansion; re-expansion is what keeps the
//     result admissible-within-a-bound-of-w instead of simply wrong.
//
// Complexity:
//
//   - Same asymptotic shape as sipp, multiplied by however many
//     re-expansions w actually triggers; with w=1 this reduces to sipp's
//     NoReexpand behaviour exactly (no node is ever re-expanded, since
//     g+h can never strictly improve on itself for a node already
//     optimal under an admissible heuristic).
//
// Errors:
//
//   - ErrWeightBelowOne: w < 1, checked up front. The original source
//     leaves this as an unchecked precondition; the distilled spec
//     promotes it to a real error rather than silently producing
//     inadmissible or undefined behaviour.
//   - ErrInvalidStart: start cell not traversable at t=0.
//   - ErrNoPathFound: returned by Result.Path when Result.Found is false.
package wsipp
