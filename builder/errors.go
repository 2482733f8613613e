package builder

import "errors"

// ErrTooFewVertices indicates n is smaller than the allowed minimum for the
// requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability value lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (set via WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrEmptyGraph indicates ApplyRandomEdits was asked to edit a graph with no
// vertices to anchor insertions/relabels against.
var ErrEmptyGraph = errors.New("builder: graph has no vertices")
