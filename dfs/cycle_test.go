package dfs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphdiff/dfs"
	"github.com/katalvlaran/graphdiff/graphmodel"
)

func cycleSigs(cycles [][]graphmodel.VertexID) []string {
	out := make([]string, len(cycles))
	for i, c := range cycles {
		out[i] = strings.Join(idsOf(c), ",")
	}

	return out
}

func TestDetectCycles_NilGraph(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(nil)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

func TestDetectCycles_NoCycle(t *testing.T) {
	g := graphmodel.NewGraph()
	// A -> B -> C -> G
	//     |
	//     D -> E -> F
	for _, id := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		addVertex(g, id)
	}
	addEdge(g, "A", "B")
	addEdge(g, "B", "C")
	addEdge(g, "B", "D")
	addEdge(g, "C", "G")
	addEdge(g, "D", "E")
	addEdge(g, "E", "F")

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cycles)
}

func TestDetectCycles_SelfLoop(t *testing.T) {
	g := graphmodel.NewGraph()
	addVertex(g, "A")
	_, err := g.AddEdge("A", "A", nil)
	assert.NoError(t, err)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, []string{"A"}, cycleSigs(cycles))
}

func TestDetectCycles_TwoNodeCycle(t *testing.T) {
	g := graphmodel.NewGraph()
	addVertex(g, "A")
	addVertex(g, "B")
	addEdge(g, "A", "B")
	addEdge(g, "B", "A")

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, []string{"A,B"}, cycleSigs(cycles))
}

func TestDetectCycles_ThreeNodeCycle(t *testing.T) {
	g := graphmodel.NewGraph()
	addVertex(g, "A")
	addVertex(g, "B")
	addVertex(g, "C")
	addEdge(g, "A", "B")
	addEdge(g, "B", "C")
	addEdge(g, "C", "A")

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, []string{"A,B,C"}, cycleSigs(cycles))
}

func TestDetectCycles_MultipleDisjointCycles(t *testing.T) {
	g := graphmodel.NewGraph()
	cycle1 := []string{"A", "B", "C", "D", "E"}
	for _, id := range cycle1 {
		addVertex(g, id)
	}
	for i := range cycle1 {
		addEdge(g, cycle1[i], cycle1[(i+1)%len(cycle1)])
	}
	cycle2 := []string{"F", "G", "H"}
	for _, id := range cycle2 {
		addVertex(g, id)
	}
	for i := range cycle2 {
		addEdge(g, cycle2[i], cycle2[(i+1)%len(cycle2)])
	}
	addEdge(g, "E", "F")
	addVertex(g, "I")
	addVertex(g, "J")

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Len(t, cycles, 2)
	assert.ElementsMatch(t, []string{"A,B,C,D,E", "F,G,H"}, cycleSigs(cycles))
}
