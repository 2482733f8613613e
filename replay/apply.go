package replay

import (
	"fmt"

	"github.com/katalvlaran/graphdiff/editorial"
	"github.com/katalvlaran/graphdiff/graphmodel"
)

// Apply replays ops against src and returns the resulting graph. Every op's
// new attribute values (edge label, vertex type/properties) travel with
// the op itself (editorial.EditOperation.Label/Type/Properties), so Apply
// needs nothing beyond src and the script to reconstruct the edited graph —
// the usual check is that the result comes back Isomorphic to whatever
// target graph the script was computed against.
func Apply(src *graphmodel.Graph, ops []editorial.EditOperation) (*graphmodel.Graph, error) {
	out := graphmodel.NewGraph()
	for _, v := range src.Vertices() {
		_ = out.AddVertex(v)
	}
	for _, v := range src.Vertices() {
		for _, e := range src.Adjacent(v.ID) {
			_, _ = out.AddEdge(e.From, e.To, e.Label)
		}
	}

	for _, op := range ops {
		var err error
		out, err = applyOne(out, op)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func applyOne(out *graphmodel.Graph, op editorial.EditOperation) (*graphmodel.Graph, error) {
	switch op.Kind {
	case editorial.InsertVertex:
		fresh := graphmodel.NewGraph()
		for _, v := range out.Vertices() {
			if err := fresh.AddVertex(v); err != nil {
				return nil, err
			}
		}
		if err := fresh.AddVertex(graphmodel.Vertex{ID: op.Target, Type: op.Type, Properties: op.Properties}); err != nil {
			return nil, err
		}
		if err := copyEdges(fresh, out); err != nil {
			return nil, err
		}

		return fresh, nil

	case editorial.DeleteVertex:
		return removeVertex(out, op.Vertex)

	case editorial.RelabelVertex:
		return replaceVertex(out, op.Vertex, graphmodel.Vertex{ID: op.Vertex, Type: op.Type, Properties: op.Properties})

	case editorial.InsertEdge:
		if _, ok := out.VertexByID(op.Vertex); !ok {
			return nil, fmt.Errorf("%w: %s", ErrReferenceVertexNotFound, op.Vertex)
		}
		if _, ok := out.VertexByID(op.Target); !ok {
			return nil, fmt.Errorf("%w: %s", ErrReferenceVertexNotFound, op.Target)
		}
		if _, err := out.AddEdge(op.Vertex, op.Target, op.Label); err != nil {
			return nil, err
		}

		return out, nil

	case editorial.DeleteEdge:
		return removeEdge(out, op.Vertex, op.Target)

	case editorial.RelabelEdge:
		next, err := removeEdge(out, op.Vertex, op.Target)
		if err != nil {
			return nil, err
		}
		if _, err := next.AddEdge(op.Vertex, op.Target, op.Label); err != nil {
			return nil, err
		}

		return next, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownEditKind, op.Kind)
	}
}

// removeVertex, replaceVertex and removeEdge rebuild the graph from scratch
// minus (or with) the named element, since graphmodel.Graph exposes no
// in-place mutation past construction (see graph.go's read-only-after-build
// design).
func removeVertex(g *graphmodel.Graph, id graphmodel.VertexID) (*graphmodel.Graph, error) {
	fresh := graphmodel.NewGraph()
	for _, v := range g.Vertices() {
		if v.ID == id {
			continue
		}
		if err := fresh.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, v := range g.Vertices() {
		if v.ID == id {
			continue
		}
		for _, e := range g.Adjacent(v.ID) {
			if e.To == id {
				continue
			}
			if _, err := fresh.AddEdge(e.From, e.To, e.Label); err != nil {
				return nil, err
			}
		}
	}

	return fresh, nil
}

func replaceVertex(g *graphmodel.Graph, id graphmodel.VertexID, replacement graphmodel.Vertex) (*graphmodel.Graph, error) {
	fresh := graphmodel.NewGraph()
	for _, v := range g.Vertices() {
		if v.ID == id {
			v = replacement
		}
		if err := fresh.AddVertex(v); err != nil {
			return nil, err
		}
	}
	if err := copyEdges(fresh, g); err != nil {
		return nil, err
	}

	return fresh, nil
}

func removeEdge(g *graphmodel.Graph, from, to graphmodel.VertexID) (*graphmodel.Graph, error) {
	fresh := graphmodel.NewGraph()
	for _, v := range g.Vertices() {
		if err := fresh.AddVertex(v); err != nil {
			return nil, err
		}
	}
	removed := false
	for _, v := range g.Vertices() {
		for _, e := range g.Adjacent(v.ID) {
			if !removed && e.From == from && e.To == to {
				removed = true
				continue
			}
			if _, err := fresh.AddEdge(e.From, e.To, e.Label); err != nil {
				return nil, err
			}
		}
	}

	return fresh, nil
}

// copyEdges copies every edge of src into dst, which must already contain
// every vertex src does.
func copyEdges(dst, src *graphmodel.Graph) error {
	for _, v := range src.Vertices() {
		for _, e := range src.Adjacent(v.ID) {
			if _, err := dst.AddEdge(e.From, e.To, e.Label); err != nil {
				return err
			}
		}
	}

	return nil
}
