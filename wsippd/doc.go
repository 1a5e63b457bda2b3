// Package wsippd implements WSIPP-D (C9): the dual-queue variant of
// Weighted SIPP, ported from wsipp_d.py.
//
// What:
//
//   - Every reached (cell, interval) carries two independently tracked
//     Nodes: an "inflated" variant (f = g + w·h, ordered like plain
//     WSIPP) and an "optimal" variant (f = w·(g+h)). Expanding a node
//     always generates an inflated successor; it additionally generates
//     an optimal successor only when the expanded node is itself the
//     optimal variant. Both live in one search.Frontier, keyed by
//     (cell, interval, isOptimal) so the two variants never collide.
//
// Why:
//
//   - The inflated variant drives the search fast towards the goal, the
//     same way plain WSIPP does; the optimal variant shadows it so that
//     when the two paths agree, the result can be reported with a
//     tighter bound than the inflated one alone would support. This is
//     the shape wsipp_d.py implements; nothing here changes it.
//
// Complexity:
//
//   - Same shape as wsipp, with up to twice the nodes created per
//     expansion (one inflated successor always, one optimal successor
//     conditionally).
//
// Errors:
//
//   - ErrWeightBelowOne: w < 1, checked up front (see wsipp's doc for
//     the same rationale).
//   - ErrInvalidStart: start cell not traversable at t=0.
//   - ErrNoPathFound: returned by Result.Path when Result.Found is false.
//
// Limitation (documented, not fixed):
//
//   - wsipp_d.py's SearchTree.add_to_open never compares a new node
//     against a closed incumbent's cost — it only skips the push when
//     the key was already expanded. Once a (cell, interval, isOptimal)
//     is closed, a cheaper path discovered later can never reopen it.
//     This forfeits the suboptimality bound the dual-queue design is
//     meant to provide in the presence of re-expansion; porting it
//     faithfully means keeping search.NoReexpand here, not
//     search.Reexpand. Changing this would change the published
//     algorithm's behaviour, so it stays as an open question rather
//     than a bug this package silently patches over.
package wsippd
