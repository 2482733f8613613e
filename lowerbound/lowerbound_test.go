package lowerbound_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphdiff/graphmodel"
	"github.com/katalvlaran/graphdiff/lowerbound"
	"github.com/katalvlaran/graphdiff/mapping"
)

func vertex(id, typ string) graphmodel.Vertex {
	return graphmodel.Vertex{ID: graphmodel.VertexID(id), Type: typ}
}

func TestCalc_IdenticalVertices_ZeroCost(t *testing.T) {
	src := graphmodel.NewGraph()
	tgt := graphmodel.NewGraph()
	_ = src.AddVertex(vertex("a", "N"))
	_ = tgt.AddVertex(vertex("x", "N"))

	e := lowerbound.Estimator{}
	cost := e.Calc(vertex("a", "N"), vertex("x", "N"), mapping.New(), src, tgt, map[graphmodel.VertexID]float64{})
	assert.Equal(t, 0.0, cost)
}

func TestCalc_RelabelCost(t *testing.T) {
	src := graphmodel.NewGraph()
	tgt := graphmodel.NewGraph()
	_ = src.AddVertex(vertex("a", "N"))
	_ = tgt.AddVertex(vertex("x", "M"))

	e := lowerbound.Estimator{}
	cost := e.Calc(vertex("a", "N"), vertex("x", "M"), mapping.New(), src, tgt, map[graphmodel.VertexID]float64{})
	assert.Equal(t, 1.0, cost)
}

func TestCalc_IsolatedShortcut(t *testing.T) {
	src := graphmodel.NewGraph()
	tgt := graphmodel.NewGraph()
	_ = src.AddVertex(vertex("a", "N"))
	_ = src.AddVertex(vertex("b", "N"))
	_, _ = src.AddEdge("a", "b", nil)
	_ = tgt.AddVertex(vertex("x", "N"))

	e := lowerbound.Estimator{}
	isolated := graphmodel.Vertex{ID: "pad", Type: graphmodel.ISOLATED}
	cache := map[graphmodel.VertexID]float64{}
	cost := e.Calc(vertex("a", "N"), isolated, mapping.New(), src, tgt, cache)
	// 1 (deletion) + 1 (inner out-edge a->b, b unmapped)
	assert.Equal(t, 2.0, cost)

	// cached on second call for the same non-isolated vertex
	cost2 := e.Calc(vertex("a", "N"), isolated, mapping.New(), src, tgt, cache)
	assert.Equal(t, cost, cost2)
}

func TestCalc_PMRejectsPair(t *testing.T) {
	src := graphmodel.NewGraph()
	tgt := graphmodel.NewGraph()
	_ = src.AddVertex(vertex("a", "N"))
	_ = tgt.AddVertex(vertex("x", "M"))

	e := lowerbound.Estimator{PM: rejectAll{}}
	cost := e.Calc(vertex("a", "N"), vertex("x", "M"), mapping.New(), src, tgt, map[graphmodel.VertexID]float64{})
	assert.True(t, math.IsInf(cost, 1))
}

type rejectAll struct{}

func (rejectAll) MappingPossible(graphmodel.Vertex, graphmodel.Vertex) bool { return false }

func TestCalc_AnchoredEdgeMatch_NoExtraCost(t *testing.T) {
	src := graphmodel.NewGraph()
	tgt := graphmodel.NewGraph()
	for _, id := range []string{"a", "b"} {
		_ = src.AddVertex(vertex(id, "N"))
	}
	for _, id := range []string{"x", "y"} {
		_ = tgt.AddVertex(vertex(id, "N"))
	}
	_, _ = src.AddEdge("a", "b", nil)
	_, _ = tgt.AddEdge("x", "y", nil)

	m, _ := mapping.New().Extend("b", "y")
	e := lowerbound.Estimator{}
	cost := e.Calc(vertex("a", "N"), vertex("x", "N"), m, src, tgt, map[graphmodel.VertexID]float64{})
	// edge a->b anchored against mapped b->y, matches x->y, same (nil) label: 0 extra
	assert.Equal(t, 0.0, cost)
}
