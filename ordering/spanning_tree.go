package ordering

import (
	"container/heap"

	"github.com/katalvlaran/graphdiff/graphmodel"
)

// BySpanningTree orders a graph's vertices by growing a structural spanning
// forest outward from the first vertex in insertion order, always expanding
// through the cheapest still-reachable edge first. Every candidate edge has
// weight 1 here — the graph carries no weights of its own — so ties break
// on edge-discovery order, which keeps the result deterministic.
//
// Adapted from a Prim-style MST grower: same min-heap-of-candidate-
// edges expansion, generalized from an undirected weighted graph to a
// directed, unweighted graphmodel.Graph (both out- and in-edges are
// followed, since edit distance cares about structural reachability in
// either direction, not flow direction), and extended to cover disconnected
// graphs by restarting from the next unvisited vertex rather than failing.
func BySpanningTree(g *graphmodel.Graph) ([]graphmodel.Vertex, error) {
	verts := g.Vertices()
	if len(verts) == 0 {
		return nil, ErrEmptyGraph
	}

	visited := make(map[graphmodel.VertexID]bool, len(verts))
	order := make([]graphmodel.Vertex, 0, len(verts))
	pq := &candidatePQ{}

	for _, start := range verts {
		if visited[start.ID] {
			continue
		}

		visited[start.ID] = true
		order = append(order, start)
		pushNeighbors(g, start.ID, visited, pq)

		for pq.Len() > 0 {
			c := heap.Pop(pq).(candidate)
			if visited[c.id] {
				continue
			}
			visited[c.id] = true
			v, _ := g.VertexByID(c.id)
			order = append(order, v)
			pushNeighbors(g, c.id, visited, pq)
		}
	}

	return order, nil
}

func pushNeighbors(g *graphmodel.Graph, from graphmodel.VertexID, visited map[graphmodel.VertexID]bool, pq *candidatePQ) {
	for _, e := range g.Adjacent(from) {
		if !visited[e.To] {
			heap.Push(pq, candidate{id: e.To, discoveredAt: e.ID})
		}
	}
	for _, e := range g.AdjacentInverse(from) {
		if !visited[e.From] {
			heap.Push(pq, candidate{id: e.From, discoveredAt: e.ID})
		}
	}
}

// candidate is one pending frontier vertex, ordered by the ID of the edge
// that discovered it — a deterministic stand-in for "edge weight" since
// every structural edge here is worth the same.
type candidate struct {
	id           graphmodel.VertexID
	discoveredAt int
}

// candidatePQ implements heap.Interface for a min-heap of candidate,
// ordered by discoveredAt. Grounded on a Prim-style min-heap of candidate edges.
type candidatePQ []candidate

func (pq candidatePQ) Len() int            { return len(pq) }
func (pq candidatePQ) Less(i, j int) bool  { return pq[i].discoveredAt < pq[j].discoveredAt }
func (pq candidatePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
