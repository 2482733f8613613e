// Package dfs implements robust cycle detection over graphmodel.Graph.
// DetectCycles records the cycle closed by each back edge found during a
// depth-first search with three-color marking; cycles that no back edge of
// that search closes are not enumerated. It handles self-loops,
// produces canonical minimal rotations of each cycle via Booth's algorithm
// in O(L) time, and sorts the final cycle list for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (V=#vertices, E=#edges, C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)     (recursion stack + state map + cycle storage)
package dfs

import (
	"sort"

	"github.com/katalvlaran/graphdiff/graphmodel"
)

// DetectCycles inspects graph g for directed cycles, reporting the cycle
// closed by each DFS back edge; a simple cycle that no back edge closes is
// not listed. Returns (true, cycles, nil) if any cycles are found;
// if no cycles, returns (false, nil, nil). A nil graph is cycle-free.
func DetectCycles(g *graphmodel.Graph) (bool, [][]graphmodel.VertexID, error) {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}

	// 2) Prepare visitation state:
	//    White=0 (unvisited), Gray=1 (in recursion stack), Black=2 (completed)
	verts := g.Vertices()
	state := make(map[graphmodel.VertexID]int, len(verts))
	path := make([]graphmodel.VertexID, 0, len(verts))
	seen := make(map[string]struct{}, len(verts)) // dedup set for cycle signatures
	var cycles [][]graphmodel.VertexID             // collected distinct cycles

	// 3) Launch DFS from each unvisited vertex, in insertion order
	for _, v := range verts {
		if state[v.ID] == White {
			dfsVisit(g, v.ID, state, &path, seen, &cycles)
		}
	}

	// 4) Sort cycles lexicographically by their comma-joined signature,
	//    ensuring a deterministic output order.
	sort.Slice(cycles, func(i, j int) bool {
		return joinSigVID(cycles[i]) < joinSigVID(cycles[j])
	})

	// 5) Return whether any cycles were found
	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// dfsVisit performs recursive DFS from vertex id, tracking the current path
// so that any back-edge found closes a cycle against some ancestor on it.
func dfsVisit(
	g *graphmodel.Graph,
	id graphmodel.VertexID,
	state map[graphmodel.VertexID]int,
	path *[]graphmodel.VertexID,
	seen map[string]struct{},
	cycles *[][]graphmodel.VertexID,
) {
	// 1) Mark current vertex as Gray (in progress)
	state[id] = Gray

	// 2) Push id onto the DFS path stack for later cycle reconstruction
	*path = append(*path, id)

	// 3) Explore each out-edge from id
	for _, e := range g.Adjacent(id) {
		nbr := e.To

		// Self-loop is its own trivial cycle
		if nbr == id {
			recordCycle(id, []graphmodel.VertexID{id}, seen, cycles)
			continue
		}

		switch state[nbr] {
		case White:
			dfsVisit(g, nbr, state, path, seen, cycles)
		case Gray:
			// Found a back-edge Gray->Gray: the segment of path from nbr
			// to the top of the stack is a simple cycle.
			idx := indexOfVID(*path, nbr)
			recordCycle(nbr, append([]graphmodel.VertexID(nil), (*path)[idx:]...), seen, cycles)
		}
	}

	// 4) Backtrack: pop id from path stack and mark it Black (fully explored)
	*path = (*path)[:len(*path)-1]
	state[id] = Black
}

// recordCycle canonicalizes the cycle starting at start and, if its
// canonical signature has not been seen before, appends it to cycles.
func recordCycle(
	start graphmodel.VertexID,
	seq []graphmodel.VertexID,
	seen map[string]struct{},
	cycles *[][]graphmodel.VertexID,
) {
	sig, canon := canonicalVID(seq)
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonicalVID computes the lexicographically minimal rotation of cycle,
// returning its comma-joined signature and the rotated vertex sequence.
// The reverse traversal direction is not considered: edges here are
// directed, so a cycle and its reverse are not interchangeable.
func canonicalVID(cycle []graphmodel.VertexID) (string, []graphmodel.VertexID) {
	strs := make([]string, len(cycle))
	for i, v := range cycle {
		strs[i] = string(v)
	}
	rot := MinimalRotation(strs)
	out := make([]graphmodel.VertexID, len(rot))
	for i, s := range rot {
		out[i] = graphmodel.VertexID(s)
	}

	return JoinSig(rot), out
}

// joinSigVID joins a VertexID slice into a comma-separated signature.
func joinSigVID(vs []graphmodel.VertexID) string {
	strs := make([]string, len(vs))
	for i, v := range vs {
		strs[i] = string(v)
	}

	return JoinSig(strs)
}

// indexOfVID returns the first index of val in s, or -1 if not found.
func indexOfVID(s []graphmodel.VertexID, val graphmodel.VertexID) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}
