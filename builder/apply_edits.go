package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphdiff/editorial"
	"github.com/katalvlaran/graphdiff/graphmodel"
	"github.com/katalvlaran/graphdiff/replay"
)

// ApplyRandomEdits draws k edit operations uniformly from the six primitive
// kinds, applying each in turn via replay.Apply against the graph produced
// by the previous step, and returns the final graph plus the edit script
// that produced it. The script is a ground truth: feeding src and the
// returned graph into diffsearch.Diff is expected to recover a GED no
// greater than k (edits can cancel or be subsumed by a shorter equivalent
// script, but never require a longer one).
//
// Used by the "two random graphs related by a known edit script" testable
// property (insertVertex/deleteVertex/relabelVertex/insertEdge/deleteEdge/
// relabelEdge all draw from the same pool RandomLabeledGraph populates).
func ApplyRandomEdits(g *graphmodel.Graph, k int, rng *rand.Rand) (*graphmodel.Graph, []editorial.EditOperation, error) {
	if rng == nil {
		return nil, nil, fmt.Errorf("%s: %w", "ApplyRandomEdits", ErrNeedRandSource)
	}
	if g.Size() == 0 {
		return nil, nil, ErrEmptyGraph
	}

	cur := g
	ops := make([]editorial.EditOperation, 0, k)
	nextNewID := 0

	for step := 0; step < k; step++ {
		op, err := randomEdit(cur, rng, &nextNewID)
		if err != nil {
			continue
		}

		next, err := replay.Apply(cur, []editorial.EditOperation{op})
		if err != nil {
			continue
		}

		cur = next
		ops = append(ops, op)
	}

	return cur, ops, nil
}

func randomEdit(g *graphmodel.Graph, rng *rand.Rand, nextNewID *int) (editorial.EditOperation, error) {
	verts := g.Vertices()
	if len(verts) == 0 {
		return editorial.EditOperation{}, ErrEmptyGraph
	}

	switch rng.Intn(6) {
	case 0:
		id := graphmodel.VertexID(fmt.Sprintf("new%d", *nextNewID))
		*nextNewID++

		return editorial.EditOperation{Kind: editorial.InsertVertex, Target: id, Type: randomType(rng)}, nil

	case 1:
		v := verts[rng.Intn(len(verts))]

		return editorial.EditOperation{Kind: editorial.DeleteVertex, Vertex: v.ID}, nil

	case 2:
		v := verts[rng.Intn(len(verts))]

		return editorial.EditOperation{Kind: editorial.RelabelVertex, Vertex: v.ID, Target: v.ID, Type: randomType(rng)}, nil

	case 3:
		if len(verts) < 2 {
			return editorial.EditOperation{}, ErrEmptyGraph
		}
		from := verts[rng.Intn(len(verts))]
		to := verts[rng.Intn(len(verts))]
		lbl := "e"

		return editorial.EditOperation{Kind: editorial.InsertEdge, Vertex: from.ID, Target: to.ID, Label: &lbl}, nil

	case 4:
		e := randomEdge(g, verts, rng)
		if e == nil {
			return editorial.EditOperation{}, ErrEmptyGraph
		}

		return editorial.EditOperation{Kind: editorial.DeleteEdge, Vertex: e.From, Target: e.To}, nil

	default:
		e := randomEdge(g, verts, rng)
		if e == nil {
			return editorial.EditOperation{}, ErrEmptyGraph
		}
		lbl := "relabeled"

		return editorial.EditOperation{Kind: editorial.RelabelEdge, Vertex: e.From, Target: e.To, Label: &lbl}, nil
	}
}

func randomEdge(g *graphmodel.Graph, verts []graphmodel.Vertex, rng *rand.Rand) *graphmodel.Edge {
	var all []graphmodel.Edge
	for _, v := range verts {
		all = append(all, g.Adjacent(v.ID)...)
	}
	if len(all) == 0 {
		return nil
	}
	e := all[rng.Intn(len(all))]

	return &e
}

func randomType(rng *rand.Rand) string {
	alphabet := []string{"A", "B", "C"}

	return alphabet[rng.Intn(len(alphabet))]
}
