package editorial

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphdiff/graphmodel"
	"github.com/katalvlaran/graphdiff/mapping"
)

// EditKind names one of the six primitive edit operations.
type EditKind int

const (
	InsertVertex EditKind = iota
	DeleteVertex
	RelabelVertex
	InsertEdge
	DeleteEdge
	RelabelEdge
)

// String renders a human-readable operation name.
func (k EditKind) String() string {
	switch k {
	case InsertVertex:
		return "insert-vertex"
	case DeleteVertex:
		return "delete-vertex"
	case RelabelVertex:
		return "relabel-vertex"
	case InsertEdge:
		return "insert-edge"
	case DeleteEdge:
		return "delete-edge"
	case RelabelEdge:
		return "relabel-edge"
	default:
		return fmt.Sprintf("EditKind(%d)", int(k))
	}
}

// EditOperation is one primitive step of an edit script. Vertex and Target
// carry the vertex IDs the operation concerns; which field is meaningful,
// and whose ID space (source or target graph) it names, depends on Kind:
// vertex operations always give the source-side ID in Vertex and the
// target-side ID in Target (whichever applies), while InsertEdge names
// both endpoints in the target graph's ID space (the edge being created)
// and DeleteEdge/RelabelEdge name both endpoints in the source graph's ID
// space (the edge being removed or changed). Label, Type and Properties
// carry the new attribute values a Insert/Relabel operation introduces, so
// that replaying an edit script needs no side channel back to either
// graph.
type EditOperation struct {
	Kind       EditKind
	Vertex     graphmodel.VertexID
	Target     graphmodel.VertexID
	Label      *string           // new edge label; InsertEdge, RelabelEdge only
	Type       string            // new vertex type; InsertVertex, RelabelVertex only
	Properties map[string]string // new vertex properties; InsertVertex, RelabelVertex only
}

func (op EditOperation) String() string {
	switch op.Kind {
	case InsertVertex:
		return fmt.Sprintf("insert vertex %s", op.Target)
	case DeleteVertex:
		return fmt.Sprintf("delete vertex %s", op.Vertex)
	case RelabelVertex:
		return fmt.Sprintf("relabel vertex %s -> %s", op.Vertex, op.Target)
	case InsertEdge:
		return fmt.Sprintf("insert edge %s->%s", op.Vertex, op.Target)
	case DeleteEdge:
		return fmt.Sprintf("delete edge %s->%s", op.Vertex, op.Target)
	case RelabelEdge:
		return fmt.Sprintf("relabel edge %s->%s", op.Vertex, op.Target)
	default:
		return op.Kind.String()
	}
}

// OptimalEdit is the search engine's running best (and, at completion,
// final) solution: the mapping that realizes it, the edit script, and the
// total cost. GED starts at math.MaxInt32 so any real mapping improves it.
type OptimalEdit struct {
	Mapping mapping.Mapping
	Edits   []EditOperation
	GED     int
}

// NewOptimalEdit returns an OptimalEdit with no solution found yet.
func NewOptimalEdit() OptimalEdit {
	return OptimalEdit{GED: math.MaxInt32}
}

// Calculator computes the true cost of a completed mapping, as opposed to
// lowerbound.Estimator's admissible estimate of an incomplete one.
type Calculator interface {
	CostForMapping(m mapping.Mapping, src, tgt *graphmodel.Graph, out *[]EditOperation) int
}

// DefaultCalculator walks every committed pair in m and every edge whose
// endpoints are both committed, charging exactly the vertex and edge edits
// implied by the mapping.
type DefaultCalculator struct{}

// CostForMapping implements Calculator. If out is non-nil, the edit
// operations that justify the returned cost are appended to *out.
func (DefaultCalculator) CostForMapping(m mapping.Mapping, src, tgt *graphmodel.Graph, out *[]EditOperation) int {
	cost := 0

	m.ForEachTarget(func(vs, vt graphmodel.VertexID) {
		sv, _ := src.VertexByID(vs)
		tv, _ := tgt.VertexByID(vt)
		switch {
		case sv.IsIsolated() && !tv.IsIsolated():
			cost++
			if out != nil {
				*out = append(*out, EditOperation{Kind: InsertVertex, Target: vt, Type: tv.Type, Properties: tv.Properties})
			}
		case !sv.IsIsolated() && tv.IsIsolated():
			cost++
			if out != nil {
				*out = append(*out, EditOperation{Kind: DeleteVertex, Vertex: vs})
			}
		case !sv.IsIsolated() && !tv.IsIsolated() && !sv.Equal(tv):
			cost++
			if out != nil {
				*out = append(*out, EditOperation{Kind: RelabelVertex, Vertex: vs, Target: vt, Type: tv.Type, Properties: tv.Properties})
			}
		}
	})

	m.ForEachTarget(func(vs, vt graphmodel.VertexID) {
		for _, e := range src.Adjacent(vs) {
			if !m.ContainsSource(e.To) {
				continue
			}
			wt, _ := m.GetTarget(e.To)
			found := false
			for _, te := range tgt.Adjacent(vt) {
				if te.To == wt {
					found = true
					if !graphmodel.LabelsEqual(e.Label, te.Label) {
						cost++
						if out != nil {
							*out = append(*out, EditOperation{Kind: RelabelEdge, Vertex: vs, Target: e.To, Label: te.Label})
						}
					}
					break
				}
			}
			if !found {
				cost++
				if out != nil {
					*out = append(*out, EditOperation{Kind: DeleteEdge, Vertex: vs, Target: e.To})
				}
			}
		}
	})

	m.ForEachTarget(func(vs, vt graphmodel.VertexID) {
		for _, te := range tgt.Adjacent(vt) {
			ws, ok := m.GetSource(te.To)
			if !ok {
				continue
			}
			found := false
			for _, e := range src.Adjacent(vs) {
				if e.To == ws {
					found = true
					break
				}
			}
			if !found {
				cost++
				if out != nil {
					*out = append(*out, EditOperation{Kind: InsertEdge, Vertex: vt, Target: te.To, Label: te.Label})
				}
			}
		}
	})

	return cost
}
