package oracle

import (
	"math"

	"github.com/katalvlaran/graphdiff/bfs"
	"github.com/katalvlaran/graphdiff/graphmodel"
	"github.com/katalvlaran/graphdiff/matrix"
	"github.com/katalvlaran/graphdiff/matrix/ops"
)

// ReachabilityFiltered narrows TypeCompatible further: a pairing is only
// possible if the two vertices' eccentricities (within their own graph)
// differ by no more than a configured tolerance. This prunes pairings
// between a vertex buried deep in one graph and a vertex near the "surface"
// of the other, which true-cost bookkeeping would reject eventually anyway
// but only after spending search effort on it.
type ReachabilityFiltered struct {
	base      PossibleMappings
	eccSource map[graphmodel.VertexID]int
	eccTarget map[graphmodel.VertexID]int
	tolerance int
}

// ReachOption configures NewReachabilityFiltered.
type ReachOption func(*reachOptions)

type reachOptions struct {
	tolerance int
	exact     bool
	base      PossibleMappings
}

func defaultReachOptions() reachOptions {
	return reachOptions{tolerance: 0, base: TypeCompatible{}}
}

// WithTolerance sets the maximum eccentricity difference two vertices may
// have and still be considered possibly-mappable. Default is 0.
func WithTolerance(tol int) ReachOption {
	return func(o *reachOptions) { o.tolerance = tol }
}

// WithExactDistances switches eccentricity computation from a BFS sweep
// (unweighted, O(V*(V+E))) to an all-pairs Floyd-Warshall closure
// (O(V^3), but shares the distance matrix machinery the rest of the module
// uses for weighted graphs). Both produce identical results on an unweighted
// graph; exact is offered for symmetry with weighted extensions.
func WithExactDistances() ReachOption {
	return func(o *reachOptions) { o.exact = true }
}

// WithBase overrides the PossibleMappings consulted before the eccentricity
// filter. Default is TypeCompatible.
func WithBase(base PossibleMappings) ReachOption {
	return func(o *reachOptions) { o.base = base }
}

// NewReachabilityFiltered precomputes eccentricities for src and tgt and
// returns a ready-to-use filter.
func NewReachabilityFiltered(src, tgt *graphmodel.Graph, opts ...ReachOption) (*ReachabilityFiltered, error) {
	ro := defaultReachOptions()
	for _, opt := range opts {
		opt(&ro)
	}

	eccSrc, err := eccentricities(src, ro.exact)
	if err != nil {
		return nil, err
	}
	eccTgt, err := eccentricities(tgt, ro.exact)
	if err != nil {
		return nil, err
	}

	return &ReachabilityFiltered{
		base:      ro.base,
		eccSource: eccSrc,
		eccTarget: eccTgt,
		tolerance: ro.tolerance,
	}, nil
}

// MappingPossible implements PossibleMappings.
func (r *ReachabilityFiltered) MappingPossible(v, u graphmodel.Vertex) bool {
	if v.IsIsolated() || u.IsIsolated() {
		return true
	}
	if !r.base.MappingPossible(v, u) {
		return false
	}

	diff := r.eccSource[v.ID] - r.eccTarget[u.ID]
	if diff < 0 {
		diff = -diff
	}

	return diff <= r.tolerance
}

func eccentricities(g *graphmodel.Graph, exact bool) (map[graphmodel.VertexID]int, error) {
	if exact {
		return exactEccentricities(g)
	}

	return bfsEccentricities(g), nil
}

func bfsEccentricities(g *graphmodel.Graph) map[graphmodel.VertexID]int {
	verts := g.Vertices()
	out := make(map[graphmodel.VertexID]int, len(verts))
	for _, v := range verts {
		res, err := bfs.BFS(g, v.ID)
		if err != nil {
			out[v.ID] = 0
			continue
		}
		out[v.ID] = res.Eccentricity()
	}

	return out
}

func exactEccentricities(g *graphmodel.Graph) (map[graphmodel.VertexID]int, error) {
	verts := g.Vertices()
	n := len(verts)
	idx := make(map[graphmodel.VertexID]int, n)
	for i, v := range verts {
		idx[v.ID] = i
	}

	dm, err := matrix.NewPreparedDense(n, n, matrix.WithAllowInfDistances())
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := dm.Set(i, j, math.Inf(1)); err != nil {
				return nil, err
			}
		}
	}
	for _, v := range verts {
		for _, e := range g.Adjacent(v.ID) {
			if idx[v.ID] == idx[e.To] {
				continue
			}
			if err := dm.Set(idx[v.ID], idx[e.To], 1); err != nil {
				return nil, err
			}
		}
	}
	if err := ops.FloydWarshall(dm); err != nil {
		return nil, err
	}

	out := make(map[graphmodel.VertexID]int, n)
	for _, v := range verts {
		i := idx[v.ID]
		maxDist := 0.0
		for j := 0; j < n; j++ {
			d, _ := dm.At(i, j)
			if !math.IsInf(d, 1) && d > maxDist {
				maxDist = d
			}
		}
		out[v.ID] = int(maxDist)
	}

	return out, nil
}

// FeasibilityCheck reports whether src and tgt admit a perfect matching
// under pm — i.e. whether the partial mapping that froze every other
// vertex could still, in principle, complete. It is a standard Kuhn
// augmenting-path bipartite matcher: the same idea a max-flow-based matcher
// uses, reconstructed directly here since this module carries no flow
// network type.
func FeasibilityCheck(pm PossibleMappings, src, tgt []graphmodel.Vertex) bool {
	n := len(src)
	if n != len(tgt) {
		return false
	}
	if n == 0 {
		return true
	}

	matchOfTarget := make([]int, n)
	for j := range matchOfTarget {
		matchOfTarget[j] = -1
	}

	var tryAugment func(i int, visited []bool) bool
	tryAugment = func(i int, visited []bool) bool {
		for j := 0; j < n; j++ {
			if visited[j] || !pm.MappingPossible(src[i], tgt[j]) {
				continue
			}
			visited[j] = true
			if matchOfTarget[j] == -1 || tryAugment(matchOfTarget[j], visited) {
				matchOfTarget[j] = i

				return true
			}
		}

		return false
	}

	matched := 0
	for i := 0; i < n; i++ {
		visited := make([]bool, n)
		if tryAugment(i, visited) {
			matched++
		}
	}

	return matched == n
}
