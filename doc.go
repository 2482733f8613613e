// Package graphdiff computes the exact graph edit distance between two
// directed, vertex- and edge-labeled graphs, together with a minimal edit
// script that transforms one into the other.
//
// 🚀 What is graphdiff?
//
// Graph edit distance (GED) is the minimum number of vertex/edge
// insertions, deletions, and relabelings needed to turn a source graph into
// a target graph. Computing it exactly is NP-hard in general; graphdiff
// does it with an A* best-first branch-and-bound search, pruned by an
// admissible lower-bound estimator and a Hungarian-algorithm optimal
// assignment at each node, which keeps real-world graphs with a few dozen
// vertices tractable.
//
// Package layout:
//
//	graphmodel/  — the Graph, Vertex, Edge types every other package builds on
//	mapping/     — the partial bijection a search node carries
//	lowerbound/  — admissible cost estimate between one unmapped vertex pair
//	assignment/  — Hungarian algorithm + Murty k-best enumeration over a cost matrix
//	editorial/   — true edit cost and edit-operation list for a completed mapping
//	oracle/      — pairing feasibility predicates and cancellation checks
//	ordering/    — deterministic source-vertex visitation order heuristics
//	diffsearch/  — the A* search engine itself (Diff, the library entry point)
//	matrix/      — dense matrix substrate shared by assignment and ordering
//	bfs/, dfs/   — traversal primitives (bfs used by oracle, dfs by replay)
//	builder/     — synthetic graph and edit-script generation for tests/fixtures
//	replay/      — apply an edit script to a graph and check isomorphism
//
// Quick start:
//
//	go get github.com/katalvlaran/graphdiff
package graphdiff
