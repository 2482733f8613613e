// Package mapping implements the partial bijection between a source and a
// target graph that the search engine builds one vertex at a time.
//
// Mapping is copy-on-extend, the same posture a Clone-style graph copy
// takes: Extend and RemoveLast never mutate the receiver, they return a
// new value with its own map pair. A branch of the search therefore holds
// its own Mapping without needing to undo a shared one when backtracking.
package mapping
