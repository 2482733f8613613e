// Package oracle supplies the pruning predicates the search engine consults
// before and during vertex-pair expansion: whether a pairing is admissible
// at all (PossibleMappings), whether a partial mapping can still complete
// into a perfect matching (FeasibilityCheck), and whether the caller has
// asked the search to stop (RunningCheck).
package oracle
