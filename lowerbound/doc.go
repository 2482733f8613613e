// Package lowerbound computes an admissible per-pair cost estimate between
// one unmapped source vertex and one unmapped target vertex, given the
// partial mapping committed so far. The search engine feeds these estimates
// into the assignment package's cost matrix to get a lower bound on the
// remaining, unmapped portion of the graph.
package lowerbound
