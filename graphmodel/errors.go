package graphmodel

import "errors"

// Sentinel errors for graphmodel construction and queries.
var (
	// ErrEmptyVertexID indicates a Vertex was added with an empty ID.
	ErrEmptyVertexID = errors.New("graphmodel: vertex ID is empty")

	// ErrDuplicateVertex indicates a Vertex ID was added more than once.
	ErrDuplicateVertex = errors.New("graphmodel: duplicate vertex ID")

	// ErrVertexNotFound indicates an edge referenced a vertex not present in the graph.
	ErrVertexNotFound = errors.New("graphmodel: vertex not found")

	// ErrIndexOutOfRange indicates VertexAt was called with an out-of-range position.
	ErrIndexOutOfRange = errors.New("graphmodel: vertex index out of range")
)
