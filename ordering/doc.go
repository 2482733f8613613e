// Package ordering computes the order in which the search engine visits
// unmapped source vertices at each node. A good order finds a tight initial
// solution quickly, which makes branch-and-bound pruning effective sooner.
package ordering
