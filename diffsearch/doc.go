// Package diffsearch drives the A* best-first branch-and-bound search that
// computes exact graph edit distance. It consumes a pair of graphmodel
// graphs (already padded to equal size with graphmodel.ISOLATED vertices),
// a fixed visitation order over each side's vertices, and the lowerbound/
// assignment/editorial/oracle collaborators, and produces an
// editorial.OptimalEdit.
//
// Diff is the package's (and the module's) entry point.
package diffsearch
