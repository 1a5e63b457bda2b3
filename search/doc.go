// Package search provides the single generic search-frontier abstraction
// shared by astar, sipp, wsipp, wsippd and arsipp.
//
// What:
//
//   - Node[K] is the minimal contract a search node must satisfy: a
//     comparable identity (Key) used for OPEN/CLOSED bookkeeping, and an
//     ordering key (F) used by the priority queue.
//   - Policy selects how a key already popped once is treated if it is
//     pushed again: NoReexpand lazily discards any later entry for an
//     already-closed key (plain Dijkstra/A*/SIPP behaviour); Reexpand
//     instead allows the key to be popped and processed again whenever a
//     strictly better entry for it surfaces (WSIPP's inflated-heuristic
//     behaviour, where a later-discovered path can still beat an
//     already-closed g-value).
//   - Frontier[K, N] is the concrete generic OPEN/CLOSED structure both
//     policies share, backed by one container/heap priority queue keyed
//     on (F, generation) with newest-generated-wins tie-breaking.
//
// Why:
//
//   - The original source expressed this as parallel duck-typed
//     SearchTree subclasses, one per algorithm, differing only in
//     whether a closed node could be reopened. A single generic type
//     parameterised on node identity and an explicit Policy replaces
//     that whole hierarchy with one audited implementation.
//
// Complexity:
//
//   - Push/Pop: O(log n) where n is the number of entries ever pushed
//     (stale entries are discarded lazily rather than removed eagerly).
//   - WasExpanded/Reopened: O(1) map lookups.
package search
