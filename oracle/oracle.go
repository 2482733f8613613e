package oracle

import (
	"context"

	"github.com/katalvlaran/graphdiff/graphmodel"
)

// PossibleMappings decides, independent of the running search, whether
// source vertex v is ever allowed to map onto target vertex u. Implementors
// must treat ISOLATED vertices (padding) as compatible with anything — the
// lower-bound estimator and the cost calculator are what actually price an
// insertion/deletion through a padding vertex.
type PossibleMappings interface {
	MappingPossible(v, u graphmodel.Vertex) bool
}

// RunningCheck lets the search engine poll for external cancellation between
// node expansions without importing context itself into every collaborator.
type RunningCheck interface {
	Check(ctx context.Context) error
}

// ContextRunningCheck is the default RunningCheck: it simply forwards
// ctx.Err().
type ContextRunningCheck struct{}

// Check reports ctx.Err(). A nil ctx is treated as never-cancelled.
func (ContextRunningCheck) Check(ctx context.Context) error {
	if ctx == nil {
		return nil
	}

	return ctx.Err()
}

// TypeCompatible is the default PossibleMappings: any ISOLATED vertex maps
// freely, and two non-isolated vertices may map onto each other only if
// their Type fields match exactly.
type TypeCompatible struct{}

// MappingPossible implements PossibleMappings.
func (TypeCompatible) MappingPossible(v, u graphmodel.Vertex) bool {
	if v.IsIsolated() || u.IsIsolated() {
		return true
	}

	return v.Type == u.Type
}
