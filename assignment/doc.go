// Package assignment solves the minimum-cost perfect matching over a square
// cost matrix (the Hungarian algorithm), and enumerates successively more
// expensive matchings via Murty's algorithm so the search engine can try
// the second-best, third-best, ... assignment at a node once the best one
// has been explored.
//
// Driver mirrors a branch-and-bound engine's pristine-cost-buffer pattern:
// the caller's cost matrix is kept untouched and each Murty partition is
// solved on a sub-matrix copied out of it. The working copy Driver makes at
// construction is not consulted by the solver.
package assignment
