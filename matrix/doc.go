// Package matrix provides a graph-agnostic dense linear algebra toolkit:
// the Dense matrix type, elementwise and statistical operations, and the
// ops subpackage (Floyd–Warshall all-pairs shortest paths, LU/QR
// decomposition, matrix inverse, eigen decomposition).
//
// The package provides:
//
//   - Dense, a row-major dense matrix with O(1) element access and fast-path
//     flat-slice loops for common kernels.
//   - Elementwise and statistical helpers (ops_elementwise.go,
//     impl_statistics.go) for building cost matrices and score tables.
//   - FloydWarshall (this package) and the ops subpackage for the heavier
//     numerical kernels consumers of cost/adjacency matrices need.
//
// assignment uses *Dense as its cost-matrix storage; ordering uses
// ops.Eigen for centrality-based vertex ordering; oracle uses
// ops.FloydWarshall for exact-distance reachability filtering.
//
// Matrices are best for dense or small inputs where O(n^2) memory and
// O(n^3) kernels are acceptable — which is the regime cost matrices and
// small graph orderings live in.
package matrix
