package diffsearch

import (
	"github.com/katalvlaran/graphdiff/graphmodel"
	"github.com/katalvlaran/graphdiff/mapping"
)

// siblingEntry is one not-yet-queued child of a parent mappingEntry,
// produced during that parent's expansion by a single Murty NextChild call.
// dummy marks the end-of-siblings sentinel; every other field is
// meaningless on a dummy entry.
type siblingEntry struct {
	dummy bool

	partial        mapping.Mapping // parent prefix extended with this sibling's first pair
	level          int
	lowerBoundCost float64

	// parent, assignments and availableTargets let the main loop reconstruct
	// this sibling's full completion (every remaining pair, not just the
	// first) without re-running the Hungarian solve.
	parent           mapping.Mapping
	assignments      []int
	availableTargets []graphmodel.Vertex
}

// siblingStream is the FIFO queue of pending siblingEntry values shared by
// every entry of one sibling group. A plain slice suffices: the search is
// strictly single-threaded, so no channel or lock is needed. Exactly one
// queued mappingEntry holds the pointer to a given stream at any time —
// responsibility for draining it transfers to whichever sibling was most
// recently pulled from it (see pullSibling): the same logical sibling group
// re-enters the queue multiple times, each time as a distinct Go value.
type siblingStream struct {
	pending  []siblingEntry
	finished bool
}

// push appends e to the tail of the stream.
func (s *siblingStream) push(e siblingEntry) {
	s.pending = append(s.pending, e)
}

// pull removes and returns the next real (non-dummy) entry at the head of
// the stream. It reports ok=false once the stream is exhausted, marking it
// finished — either because pending was already empty or because the head
// was the DUMMY sentinel.
func (s *siblingStream) pull() (siblingEntry, bool) {
	if len(s.pending) == 0 {
		s.finished = true

		return siblingEntry{}, false
	}
	e := s.pending[0]
	s.pending = s.pending[1:]
	if e.dummy {
		s.finished = true

		return siblingEntry{}, false
	}

	return e, true
}

// mappingEntry is one node of the search tree: a partial mapping fixing the
// images of allSources[0:level], its admissible lower-bound cost, and (for
// non-leaf, non-root nodes) the stream of not-yet-surfaced siblings that
// share its parent.
type mappingEntry struct {
	partial        mapping.Mapping
	level          int
	lowerBoundCost float64
	siblings       *siblingStream

	// assignments and availableTargets are the Hungarian solve that produced
	// this entry's extension; only set on entries born from child/sibling
	// expansion (not the root). Not consulted once the entry is queued.
	assignments      []int
	availableTargets []graphmodel.Vertex
}

// hasMoreSiblings reports whether e's sibling group may still have
// unsurfaced alternates. The root (siblings == nil) never does.
func (e *mappingEntry) hasMoreSiblings() bool {
	return e.siblings != nil && !e.siblings.finished
}

// entryPQ is a min-heap of *mappingEntry ordered by (lowerBoundCost asc,
// level desc) — ties prefer deeper nodes, since a deeper node is closer to
// a complete mapping and tightens the pruning bound sooner. Grounded in the
// teacher's dijkstra.nodePQ lazy-heap idiom: container/heap.Interface over
// a plain slice of pointers, no decrease-key, stale entries simply never
// pushed since mappingEntry values are immutable once queued.
type entryPQ []*mappingEntry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].lowerBoundCost != pq[j].lowerBoundCost {
		return pq[i].lowerBoundCost < pq[j].lowerBoundCost
	}

	return pq[i].level > pq[j].level
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(*mappingEntry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
