// Package dfs implements depth-first search traversal, cycle detection,
// and topological sort on a graphmodel.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - DetectCycles: reports the cycle closed by each back edge of a DFS
//     using vertex coloring (White, Gray, Black), with canonical
//     signature deduplication. Cycles that no back edge of that DFS
//     closes are not reported.
//   - TopologicalSort: computes a linear ordering of vertices, returning
//     ErrCycleDetected if the graph is not acyclic.
//
// Why:
//   - replay.Isomorphic orders its backtracking search by the DFS
//     pre-order (discovery order) of a full-graph traversal.
//   - DetectCycles and TopologicalSort are exposed for callers building
//     acyclicity-dependent tooling on top of a graphdiff graph; the search
//     engine itself never assumes acyclicity.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor
//   - DFSResult: collects post-order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E + C*L), Memory O(V+L_max)
//     (C=#cycles, L=avg cycle length; normalization via Booth's algorithm is O(L))
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrCycleDetected        cycle discovered during TopologicalSort
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
