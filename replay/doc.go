// Package replay applies an editorial.EditOperation script to a graph and
// checks the result against an expected graph, for verifying that
// diffsearch's edit list actually transforms source into target. It is
// test/fixture infrastructure, not part of the search engine itself.
package replay
