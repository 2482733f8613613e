package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/graphdiff/bfs"
	"github.com/katalvlaran/graphdiff/graphmodel"
)

// chain builds a directed graphmodel.Graph from a flat list of vertex-ID
// pairs, e.g. chain("A", "B", "B", "C") adds A->B and B->C, creating any
// vertex referenced that wasn't already added.
func chain(pairs ...string) *graphmodel.Graph {
	g := graphmodel.NewGraph()
	seen := map[string]bool{}
	ensure := func(id string) {
		if !seen[id] {
			seen[id] = true
			_ = g.AddVertex(graphmodel.Vertex{ID: graphmodel.VertexID(id), Type: "N"})
		}
	}
	for i := 0; i < len(pairs); i++ {
		ensure(pairs[i])
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		_, _ = g.AddEdge(graphmodel.VertexID(pairs[i]), graphmodel.VertexID(pairs[i+1]), nil)
	}

	return g
}

func ids(vs []graphmodel.VertexID) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}

	return out
}

func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := graphmodel.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g2 := chain("A")
	if _, err := bfs.BFS(g2, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

func TestBFS_SimpleTraversal(t *testing.T) {
	g := chain("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(ids(res.Order), want) {
		t.Errorf("Order = %v; want %v", ids(res.Order), want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

func TestCycleAndDepths(t *testing.T) {
	// A->B->C->D->A directed cycle.
	g := chain("A", "B", "B", "C", "C", "D", "D", "A")

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(ids(res.Order), want) {
		t.Errorf("Order = %v; want %v", ids(res.Order), want)
	}
	for i, v := range []string{"A", "B", "C", "D"} {
		if got, want := res.Depth[graphmodel.VertexID(v)], i; got != want {
			t.Errorf("Depth[%s] = %d; want %d", v, got, want)
		}
	}
}

func TestBFS_Disconnected(t *testing.T) {
	g := chain("X", "Y", "P", "Q")

	resX, _ := bfs.BFS(g, "X")
	if want := []string{"X", "Y"}; !reflect.DeepEqual(ids(resX.Order), want) {
		t.Errorf("From X: got %v; want %v", ids(resX.Order), want)
	}
	resP, _ := bfs.BFS(g, "P")
	if want := []string{"P", "Q"}; !reflect.DeepEqual(ids(resP.Order), want) {
		t.Errorf("From P: got %v; want %v", ids(resP.Order), want)
	}
}

func TestBFS_MaxDepth(t *testing.T) {
	g := chain("A", "B", "B", "C")
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1)); !reflect.DeepEqual(ids(res.Order), []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", ids(res.Order))
	}
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(0)); !reflect.DeepEqual(ids(res.Order), []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", ids(res.Order))
	}
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(10)); !reflect.DeepEqual(ids(res.Order), []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", ids(res.Order))
	}
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g := chain("A", "B", "B", "C")
	res, _ := bfs.BFS(g, "A",
		bfs.WithFilterNeighbor(func(curr, nbr graphmodel.VertexID) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(ids(res.Order), want) {
		t.Errorf("FilterNeighbor: got %v; want %v", ids(res.Order), want)
	}
}

func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := graphmodel.NewGraph()
	_ = g.AddVertex(graphmodel.Vertex{ID: "A", Type: "N"})
	_ = g.AddVertex(graphmodel.Vertex{ID: "B", Type: "N"})
	_, _ = g.AddEdge("A", "A", nil) // self-loop
	_, _ = g.AddEdge("A", "B", nil)
	_, _ = g.AddEdge("A", "B", nil) // parallel
	res, _ := bfs.BFS(g, "A")
	if want := []string{"A", "B"}; !reflect.DeepEqual(ids(res.Order), want) {
		t.Errorf("SelfLoop/Parallel: got %v; want %v", ids(res.Order), want)
	}
}

func TestBFS_Hooks(t *testing.T) {
	g := chain("A", "B", "B", "C")

	var enq, deq, vis []string
	makeEntry := func(prefix string, id graphmodel.VertexID, d int) string {
		return prefix + ":" + string(id) + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		g, "A",
		bfs.WithOnEnqueue(func(id graphmodel.VertexID, d int) { enq = append(enq, makeEntry("e", id, d)) }),
		bfs.WithOnDequeue(func(id graphmodel.VertexID, d int) { deq = append(deq, makeEntry("d", id, d)) }),
		bfs.WithOnVisit(func(id graphmodel.VertexID, d int) error { vis = append(vis, makeEntry("v", id, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	wantDepths := []string{"A@0", "B@1", "C@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

func TestBFS_PathTo(t *testing.T) {
	g := chain("X")
	res, _ := bfs.BFS(g, "X")
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(ids(path), []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", ids(path))
	}
	_, err := res.PathTo("Y")
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

func TestBFS_Cancellation(t *testing.T) {
	pairs := make([]string, 0, 200)
	for i := 0; i < 100; i++ {
		pairs = append(pairs, fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	g := chain(pairs...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "v0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

func TestBFS_ConcurrentSafety(t *testing.T) {
	g := chain("A", "B")
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, "A"); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}

func TestBFS_Eccentricity(t *testing.T) {
	g := chain("A", "B", "B", "C")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Eccentricity(); got != 2 {
		t.Errorf("Eccentricity() = %d; want 2", got)
	}
}
