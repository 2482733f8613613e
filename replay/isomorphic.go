package replay

import (
	"github.com/katalvlaran/graphdiff/dfs"
	"github.com/katalvlaran/graphdiff/graphmodel"
)

// Isomorphic reports whether a and b are isomorphic: there exists a
// bijection between their vertices, consistent with Type, under which every
// edge of a (with its label) has a corresponding edge of b and vice versa.
//
// This is a test helper, not part of the search engine's complexity
// budget: it orders a's vertices by a full-graph DFS discovery order
// (adapted from the dfs package to drive the backtracking search in a
// structurally sensible order rather than brute permutation order) and
// backtracks over b's same-Type candidates at each step,
// pruning on edge consistency with every vertex already placed. Intended
// for the small fixture graphs builder.RandomLabeledGraph produces, not for
// general-purpose isomorphism testing.
func Isomorphic(a, b *graphmodel.Graph) bool {
	if a.Size() != b.Size() {
		return false
	}

	order, err := discoveryOrder(a)
	if err != nil {
		return false
	}

	bVerts := b.Vertices()
	used := make([]bool, len(bVerts))
	assign := make(map[graphmodel.VertexID]graphmodel.VertexID, len(order))

	var backtrack func(i int) bool
	backtrack = func(i int) bool {
		if i == len(order) {
			return true
		}
		av := order[i]

		for j, bv := range bVerts {
			if used[j] || bv.Type != av.Type {
				continue
			}
			if !consistent(a, b, assign, av.ID, bv.ID) {
				continue
			}

			used[j] = true
			assign[av.ID] = bv.ID
			if backtrack(i + 1) {
				return true
			}
			used[j] = false
			delete(assign, av.ID)
		}

		return false
	}

	return backtrack(0)
}

// discoveryOrder returns a.Vertices() in full-graph DFS pre-order, covering
// every connected component.
func discoveryOrder(g *graphmodel.Graph) ([]graphmodel.Vertex, error) {
	order := make([]graphmodel.Vertex, 0, g.Size())
	verts := g.Vertices()
	if len(verts) == 0 {
		return order, nil
	}

	res, err := dfs.DFS(g, verts[0].ID, dfs.WithFullTraversal(), dfs.WithOnVisit(func(id graphmodel.VertexID) error {
		v, _ := g.VertexByID(id)
		order = append(order, v)

		return nil
	}))
	if err != nil {
		return nil, err
	}
	_ = res

	return order, nil
}

// consistent reports whether assigning av->bv would preserve every edge
// (in either direction, with matching label) between av and every
// already-assigned source vertex.
func consistent(a, b *graphmodel.Graph, assign map[graphmodel.VertexID]graphmodel.VertexID, av, bv graphmodel.VertexID) bool {
	for sv, tv := range assign {
		if !edgeEquivalent(a, b, av, sv, bv, tv) {
			return false
		}
		if !edgeEquivalent(a, b, sv, av, tv, bv) {
			return false
		}
	}

	return true
}

// edgeEquivalent reports whether a's edge aFrom->aTo (if any) matches b's
// edge bFrom->bTo (if any): both present with equal labels, or both absent.
func edgeEquivalent(a, b *graphmodel.Graph, aFrom, aTo, bFrom, bTo graphmodel.VertexID) bool {
	aLabel, aHas := findEdgeLabel(a, aFrom, aTo)
	bLabel, bHas := findEdgeLabel(b, bFrom, bTo)
	if aHas != bHas {
		return false
	}
	if !aHas {
		return true
	}

	return graphmodel.LabelsEqual(aLabel, bLabel)
}

func findEdgeLabel(g *graphmodel.Graph, from, to graphmodel.VertexID) (*string, bool) {
	for _, e := range g.Adjacent(from) {
		if e.To == to {
			return e.Label, true
		}
	}

	return nil, false
}
