package search

import "container/heap"

// Node is the contract a search node must satisfy to be held in a
// Frontier. K is the node's identity (e.g. a grid cell, or a
// (cell, interval-index) pair); F is the priority-queue ordering key
// (e.g. g+h, or a weighted variant).
type Node[K comparable] interface {
	Key() K
	F() float64
}

// Policy selects how Frontier.Push treats a key that was already closed
// once.
type Policy int

const (
	// NoReexpand discards any later entry for an already-closed key. This
	// is correct whenever the ordering key never underestimates the true
	// remaining cost relative to itself across pushes, i.e. plain
	// uninflated search (astar, sipp).
	NoReexpand Policy = iota

	// Reexpand allows a key to be popped and processed again whenever a
	// strictly better g accompanies a later entry for it, even after the
	// key was already closed once. Needed whenever the ordering key can
	// rank a worse path ahead of a better one that is discovered later
	// (wsipp).
	Reexpand
)

// entry is one item sitting in the underlying heap: a node plus the
// monotonically increasing generation it was pushed at.
type entry[K comparable, N Node[K]] struct {
	node N
	gen  int64
}

// heapSlice implements container/heap.Interface over entry[K,N]. Ties in F
// are broken in favour of the most-recently-pushed entry, matching the
// teacher's lazy-decrease-key priority queues (dijkstra.nodePQ,
// prim_kruskal.edgePQ) generalised with an explicit tie-break rule instead
// of relying on heap insertion order.
type heapSlice[K comparable, N Node[K]] []entry[K, N]

func (h heapSlice[K, N]) Len() int { return len(h) }

func (h heapSlice[K, N]) Less(i, j int) bool {
	fi, fj := h[i].node.F(), h[j].node.F()
	if fi != fj {
		return fi < fj
	}
	return h[i].gen > h[j].gen
}

func (h heapSlice[K, N]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *heapSlice[K, N]) Push(x any) { *h = append(*h, x.(entry[K, N])) }

func (h *heapSlice[K, N]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// Frontier is the generic OPEN/CLOSED structure shared by every search
// package in this module. It is not safe for concurrent use: each search
// call owns one Frontier for its own duration.
type Frontier[K comparable, N Node[K]] struct {
	policy  Policy
	heap    heapSlice[K, N]
	gen     int64
	closed  map[K]N
	expands map[K]int
}

// New returns an empty Frontier governed by policy.
func New[K comparable, N Node[K]](policy Policy) *Frontier[K, N] {
	f := &Frontier[K, N]{
		policy:  policy,
		closed:  make(map[K]N),
		expands: make(map[K]int),
	}
	heap.Init(&f.heap)

	return f
}

// Push adds n to OPEN, stamping it with a fresh, strictly increasing
// generation used only to break F ties deterministically. It reports
// whether n was actually accepted into OPEN.
//
// If n's key is currently in CLOSED, the two policies diverge exactly at
// this point: NoReexpand drops the push outright (a closed key is
// final); Reexpand drops it too unless n.F() is strictly better than the
// closed incumbent's, in which case the key is reopened — removed from
// CLOSED so Pop will surface n again — and the push proceeds. This
// mirrors wsipp.py's add_to_open, which performs exactly this comparison
// before ever touching the heap, rather than pushing unconditionally and
// sorting it out on the way back out.
func (f *Frontier[K, N]) Push(n N) bool {
	k := n.Key()
	if incumbent, done := f.closed[k]; done {
		if f.policy == NoReexpand || !(n.F() < incumbent.F()) {
			return false
		}
		delete(f.closed, k)
	}

	f.gen++
	heap.Push(&f.heap, entry[K, N]{node: n, gen: f.gen})

	return true
}

// Len reports the number of entries still sitting in OPEN, including any
// stale entries not yet lazily discarded.
func (f *Frontier[K, N]) Len() int { return f.heap.Len() }

// Pop removes and returns the best node in OPEN, discarding any entry
// whose key is already in CLOSED — such an entry can only be a stale
// duplicate pushed before whatever closed that key, since Push itself
// already rejects anything that would not improve on a closed incumbent.
// Pop reports false once OPEN is exhausted.
func (f *Frontier[K, N]) Pop() (N, bool) {
	for f.heap.Len() > 0 {
		it := heap.Pop(&f.heap).(entry[K, N])
		n := it.node
		k := n.Key()

		if _, done := f.closed[k]; done {
			continue
		}

		f.closed[k] = n
		f.expands[k]++

		return n, true
	}

	var zero N
	return zero, false
}

// WasExpanded reports whether k has been popped (closed) at least once.
func (f *Frontier[K, N]) WasExpanded(k K) bool {
	_, ok := f.closed[k]
	return ok
}

// Reopened reports how many times k was expanded beyond its first
// expansion.
func (f *Frontier[K, N]) Reopened(k K) int {
	c := f.expands[k]
	if c == 0 {
		return 0
	}

	return c - 1
}

// ClosedSnapshot returns every node currently recorded as closed, in no
// particular order. Intended for diagnostics and tests, not for use in a
// search's hot loop.
func (f *Frontier[K, N]) ClosedSnapshot() []N {
	out := make([]N, 0, len(f.closed))
	for _, n := range f.closed {
		out = append(out, n)
	}

	return out
}

// OpenSnapshot returns every node still sitting in OPEN, in no particular
// order and without disturbing the heap. Mirrors the OPEN property the
// original source drains destructively; here it is a cheap, repeatable
// read.
func (f *Frontier[K, N]) OpenSnapshot() []N {
	out := make([]N, 0, len(f.heap))
	for _, e := range f.heap {
		out = append(out, e.node)
	}

	return out
}
