// Package editorial turns a completed Mapping into the true edit cost and
// the concrete list of edit operations that realize it, and carries the
// search engine's running best solution (OptimalEdit).
package editorial
