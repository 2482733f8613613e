package graphmodel

import "fmt"

// PadIsolated returns copies of src and tgt padded with ISOLATED vertices so
// both have equal size N = max(src.Size(), tgt.Size()), turning the mapping
// search into a total bijection problem over equal-sized vertex sets.
//
// Padding vertices are appended after the existing ones, so the original
// vertex order (and hence any externally supplied allSources/allTargets
// prefix) is preserved.
func PadIsolated(src, tgt *Graph) (*Graph, *Graph) {
	n := src.Size()
	if tgt.Size() > n {
		n = tgt.Size()
	}

	return padTo(src, n, "src"), padTo(tgt, n, "tgt")
}

// padTo returns a copy of g with ISOLATED vertices appended until it has
// exactly n vertices. If g already has >= n vertices, a structural copy is
// still returned (so callers always own an independent Graph).
func padTo(g *Graph, n int, side string) *Graph {
	out := NewGraph()
	for _, v := range g.Vertices() {
		_ = out.AddVertex(v) // cannot fail: IDs were already unique in g
	}
	for i := g.Size(); i < n; i++ {
		id := VertexID(fmt.Sprintf("__isolated_%s_%d", side, i))
		_ = out.AddVertex(Vertex{ID: id, Type: ISOLATED})
	}
	for _, v := range g.Vertices() {
		for _, e := range g.Adjacent(v.ID) {
			_, _ = out.AddEdge(e.From, e.To, e.Label)
		}
	}

	return out
}
