package diffsearch

import "errors"

// ErrCancelled wraps the error returned by the search's RunningCheck when
// the caller aborts an in-progress search (cancellation or deadline).
var ErrCancelled = errors.New("diffsearch: search cancelled")

// ErrInvariantViolation marks a condition the algorithm's invariants say
// can never happen — allSources and allTargets of different lengths, or a
// vertex pair that mapping.Extend refuses to commit while building a child,
// sibling or completion. It is never expected to trigger outside of a bug.
var ErrInvariantViolation = errors.New("diffsearch: invariant violation")

// ErrInfeasibleMapping is returned up front when no perfect matching exists
// between allSources and allTargets under the supplied oracle.PossibleMappings
// — the search would otherwise run to exhaustion without ever completing a
// mapping.
var ErrInfeasibleMapping = errors.New("diffsearch: no feasible total mapping exists under the supplied oracle")
