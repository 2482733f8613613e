package replay

import "errors"

// ErrReferenceVertexNotFound is returned when an InsertEdge operation names
// an endpoint the graph being built does not (yet) contain.
var ErrReferenceVertexNotFound = errors.New("replay: referenced vertex not found")

// ErrUnknownEditKind is returned when an EditOperation carries a Kind this
// package does not know how to apply.
var ErrUnknownEditKind = errors.New("replay: unknown edit kind")
