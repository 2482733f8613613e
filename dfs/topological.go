// Package dfs provides core algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u->v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"context"

	"github.com/katalvlaran/graphdiff/graphmodel"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *graphmodel.Graph           // the graph being sorted
	opts  topoOptions                 // traversal options (cancellation)
	state map[graphmodel.VertexID]int // visitation state: 0=White,1=Gray,2=Black
	order []graphmodel.VertexID       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// If g is nil, returns ErrGraphNil. If a cycle is detected, returns
// ErrCycleDetected. You may pass WithCancelContext(ctx) to enable
// cancellation.
func TopologicalSort(g *graphmodel.Graph, options ...TopoOption) ([]graphmodel.VertexID, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 3. Initialize sorter state
	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[graphmodel.VertexID]int, len(verts)),
		order: make([]graphmodel.VertexID, 0, len(verts)),
	}

	// 4. Drive DFS from every unvisited vertex, in insertion order
	for _, v := range verts {
		if sorter.state[v.ID] == White {
			if err := sorter.visit(v.ID); err != nil {
				return nil, err
			}
		}
	}

	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
// It respects cancellation and wraps neighbor traversal.
func (t *topoSorter) visit(id graphmodel.VertexID) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}

	// 2. Cycle detection: if already Gray, we found a back-edge
	if t.state[id] == Gray {
		return ErrCycleDetected
	}

	// 3. Already fully processed (Black)? then skip
	if t.state[id] == Black {
		return nil
	}

	// 4. Mark as in-progress (Gray)
	t.state[id] = Gray

	// 5. Explore each outgoing edge
	for _, e := range t.graph.Adjacent(id) {
		if err := t.visit(e.To); err != nil {
			return err
		}
	}

	// 6. Mark as fully explored (Black)
	t.state[id] = Black
	// 7. Record in post-order list
	t.order = append(t.order, id)

	return nil
}
