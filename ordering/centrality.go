package ordering

import (
	"sort"

	"github.com/katalvlaran/graphdiff/graphmodel"
	"github.com/katalvlaran/graphdiff/matrix"
	"github.com/katalvlaran/graphdiff/matrix/ops"
)

const (
	eigenTolerance = 1e-9
	eigenMaxSweeps = 100
)

// ByCentrality orders a graph's vertices by eigenvector centrality,
// descending: the vertex most "central" to the graph's structure (by the
// principal eigenvector of its symmetrized adjacency matrix) is visited
// first. This tends to anchor the search's mapping decisions on the
// vertices whose surrounding structure most constrains later choices.
//
// Grounded on matrix/ops.Eigen's Jacobi eigensolver, which graphdiff/matrix
// already carries for exactly this kind of spectral analysis; the adjacency
// matrix is built locally here (symmetrized, since Eigen requires a
// symmetric input) rather than via a graph-to-matrix adapter, since
// graphmodel.Graph has no such adapter type.
func ByCentrality(g *graphmodel.Graph) ([]graphmodel.Vertex, error) {
	verts := g.Vertices()
	n := len(verts)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	idx := make(map[graphmodel.VertexID]int, n)
	for i, v := range verts {
		idx[v.ID] = i
	}

	adj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for _, v := range verts {
		i := idx[v.ID]
		for _, e := range g.Adjacent(v.ID) {
			j := idx[e.To]
			if i == j {
				continue
			}
			_ = adj.Set(i, j, 1)
			_ = adj.Set(j, i, 1)
		}
	}

	eigenvalues, eigenvectors, err := ops.Eigen(adj, eigenTolerance, eigenMaxSweeps)
	if err != nil {
		// Jacobi failed to converge (pathological graph); fall back to a
		// stable, deterministic order rather than erroring the whole search.
		return BySpanningTree(g)
	}

	principal := 0
	for i := 1; i < n; i++ {
		if eigenvalues[i] > eigenvalues[principal] {
			principal = i
		}
	}

	type scored struct {
		v     graphmodel.Vertex
		score float64
	}
	scores := make([]scored, n)
	for i, v := range verts {
		val, _ := eigenvectors.At(i, principal)
		if val < 0 {
			val = -val
		}
		scores[i] = scored{v: v, score: val}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	out := make([]graphmodel.Vertex, n)
	for i, s := range scores {
		out[i] = s.v
	}

	return out, nil
}
