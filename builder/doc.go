// Package builder generates synthetic labeled graphs and randomized-edit
// fixtures for exercising diffsearch end to end. It keeps the
// functional-options configuration shape (BuilderOption mutating a
// builderConfig before construction) but trades a large family of
// unweighted topology constructors (Cycle/Star/Wheel/Grid/Platonic/...)
// for the two generators the edit-distance search actually needs:
// RandomLabeledGraph (a vertex- and edge-labeled Erdős–Rényi graph) and
// ApplyRandomEdits (a known-edit-script mutator used to build fixtures with
// a verifiable ground-truth GED).
package builder
