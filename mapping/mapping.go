package mapping

import (
	"fmt"

	"github.com/katalvlaran/graphdiff/graphmodel"
)

// pair records one committed (source, target) decision in insertion order.
type pair struct {
	src graphmodel.VertexID
	tgt graphmodel.VertexID
}

// Mapping is a partial bijection between source vertex IDs and target vertex
// IDs, built one level at a time. The zero value is the empty mapping.
type Mapping struct {
	order    []pair
	srcToTgt map[graphmodel.VertexID]graphmodel.VertexID
	tgtToSrc map[graphmodel.VertexID]graphmodel.VertexID
}

// New returns the empty Mapping.
func New() Mapping {
	return Mapping{}
}

// Level returns the number of committed pairs. A search node's depth in the
// tree equals its mapping's Level.
func (m Mapping) Level() int { return len(m.order) }

// Size is a synonym for Level.
func (m Mapping) Size() int { return len(m.order) }

// ContainsSource reports whether v already has an image under m.
func (m Mapping) ContainsSource(v graphmodel.VertexID) bool {
	_, ok := m.srcToTgt[v]

	return ok
}

// ContainsTarget reports whether u already has a preimage under m.
func (m Mapping) ContainsTarget(u graphmodel.VertexID) bool {
	_, ok := m.tgtToSrc[u]

	return ok
}

// GetTarget returns the image of v, if any.
func (m Mapping) GetTarget(v graphmodel.VertexID) (graphmodel.VertexID, bool) {
	u, ok := m.srcToTgt[v]

	return u, ok
}

// GetSource returns the preimage of u, if any.
func (m Mapping) GetSource(u graphmodel.VertexID) (graphmodel.VertexID, bool) {
	v, ok := m.tgtToSrc[u]

	return v, ok
}

// ForEachTarget visits every committed (source, target) pair in the order it
// was added.
func (m Mapping) ForEachTarget(fn func(src, tgt graphmodel.VertexID)) {
	for _, p := range m.order {
		fn(p.src, p.tgt)
	}
}

// ForEachNonFixedTarget visits every vertex of allTargets that has no
// preimage yet under m.
func (m Mapping) ForEachNonFixedTarget(allTargets []graphmodel.Vertex, fn func(u graphmodel.VertexID)) {
	for _, t := range allTargets {
		if !m.ContainsTarget(t.ID) {
			fn(t.ID)
		}
	}
}

// Copy returns a deep copy of m. Extend and RemoveLast call this internally
// so that their receiver is left untouched.
func (m Mapping) Copy() Mapping {
	out := Mapping{
		order:    append([]pair(nil), m.order...),
		srcToTgt: make(map[graphmodel.VertexID]graphmodel.VertexID, len(m.srcToTgt)),
		tgtToSrc: make(map[graphmodel.VertexID]graphmodel.VertexID, len(m.tgtToSrc)),
	}
	for k, v := range m.srcToTgt {
		out.srcToTgt[k] = v
	}
	for k, v := range m.tgtToSrc {
		out.tgtToSrc[k] = v
	}

	return out
}

// Extend returns a new Mapping with (src, tgt) committed as the next level.
// The receiver is left untouched.
func (m Mapping) Extend(src, tgt graphmodel.VertexID) (Mapping, error) {
	if m.ContainsSource(src) {
		return Mapping{}, fmt.Errorf("%w: %q", ErrDuplicateSource, src)
	}
	if m.ContainsTarget(tgt) {
		return Mapping{}, fmt.Errorf("%w: %q", ErrDuplicateTarget, tgt)
	}

	out := m.Copy()
	out.order = append(out.order, pair{src: src, tgt: tgt})
	if out.srcToTgt == nil {
		out.srcToTgt = make(map[graphmodel.VertexID]graphmodel.VertexID, 1)
	}
	if out.tgtToSrc == nil {
		out.tgtToSrc = make(map[graphmodel.VertexID]graphmodel.VertexID, 1)
	}
	out.srcToTgt[src] = tgt
	out.tgtToSrc[tgt] = src

	return out, nil
}

// RemoveLast returns a new Mapping with the most recently committed pair
// undone. The receiver is left untouched.
func (m Mapping) RemoveLast() (Mapping, error) {
	if len(m.order) == 0 {
		return Mapping{}, fmt.Errorf("%w: mapping is empty", ErrLevelMismatch)
	}

	out := m.Copy()
	last := out.order[len(out.order)-1]
	out.order = out.order[:len(out.order)-1]
	delete(out.srcToTgt, last.src)
	delete(out.tgtToSrc, last.tgt)

	return out, nil
}
