package lowerbound

import (
	"math"

	"github.com/katalvlaran/graphdiff/graphmodel"
	"github.com/katalvlaran/graphdiff/mapping"
	"github.com/katalvlaran/graphdiff/oracle"
)

const noLabelKey = "\x00"

// Estimator computes the admissible lower-bound cost of mapping v onto u.
// The zero value uses no pairing filter at all; construct with an explicit
// PM to get fast-reject pruning.
type Estimator struct {
	// PM rejects outright-impossible pairs before any cost arithmetic runs.
	// Nil means every pair is considered possible.
	PM oracle.PossibleMappings
}

// Calc returns the admissible lower-bound cost of extending m with (v, u).
// cache memoizes the isolated-vertex shortcut (see isolatedCost) across
// repeated calls within the same node expansion; callers should pass a
// fresh cache per node and reuse it across the row of candidate pairs for
// that node's assignment-matrix build.
func (e Estimator) Calc(v, u graphmodel.Vertex, m mapping.Mapping, src, tgt *graphmodel.Graph, cache map[graphmodel.VertexID]float64) float64 {
	if e.PM != nil && !e.PM.MappingPossible(v, u) {
		return math.Inf(1)
	}

	if v.IsIsolated() || u.IsIsolated() {
		return e.isolatedShortcut(v, u, m, src, tgt, cache)
	}

	equalNodes := 0
	if !v.Equal(u) {
		equalNodes = 1
	}

	innerV := innerMultiset(src.Adjacent(v.ID), m.ContainsSource)
	innerU := innerMultiset(tgt.Adjacent(u.ID), m.ContainsTarget)
	multisetEdit := multisetDistance(innerV, innerU)

	anchored := anchoredCost(v, u, m, src, tgt)

	return float64(equalNodes + multisetEdit + anchored)
}

// isolatedShortcut handles the case where v or u is the ISOLATED padding
// vertex: one side of the pair contributes nothing but insertion/deletion
// cost, so the estimate collapses to a count of the non-isolated vertex's
// edges that fall outside the already-committed mapping.
func (e Estimator) isolatedShortcut(v, u graphmodel.Vertex, m mapping.Mapping, src, tgt *graphmodel.Graph, cache map[graphmodel.VertexID]float64) float64 {
	var x graphmodel.Vertex
	var g *graphmodel.Graph
	var xIsSource bool

	if v.IsIsolated() {
		x, g, xIsSource = u, tgt, false
	} else {
		x, g, xIsSource = v, src, true
	}

	if cache != nil {
		if cost, ok := cache[x.ID]; ok {
			return cost
		}
	}

	cost := float64(isolatedCost(x, g, m, xIsSource))
	if cache != nil {
		cache[x.ID] = cost
	}

	return cost
}

// isolatedCost is 1 (the vertex insertion/deletion itself) plus one unit for
// every out-edge of x whose destination is still unmapped, plus one more unit
// for every edge of x (either direction) whose other endpoint IS mapped and carries a label
// (an unlabeled edge to an already-anchored vertex costs nothing extra here;
// its fate is priced exactly once the anchored-vertex bookkeeping runs).
func isolatedCost(x graphmodel.Vertex, g *graphmodel.Graph, m mapping.Mapping, xIsSource bool) int {
	mapped := func(other graphmodel.VertexID) bool {
		if xIsSource {
			return m.ContainsSource(other)
		}

		return m.ContainsTarget(other)
	}

	innerEdges := 0
	labeledAnchored := 0

	for _, ed := range g.Adjacent(x.ID) {
		if !mapped(ed.To) {
			innerEdges++
		} else if ed.HasLabel() {
			labeledAnchored++
		}
	}
	for _, ed := range g.AdjacentInverse(x.ID) {
		if mapped(ed.From) && ed.HasLabel() {
			labeledAnchored++
		}
	}

	return 1 + innerEdges + labeledAnchored
}

// innerMultiset returns the multiset of labels of out-edges of a vertex
// whose destination has no image yet under m ("inner" = not yet anchored).
func innerMultiset(edges []graphmodel.Edge, mapped func(graphmodel.VertexID) bool) map[string]int {
	out := make(map[string]int, len(edges))
	for _, ed := range edges {
		if mapped(ed.To) {
			continue
		}
		key := noLabelKey
		if ed.Label != nil {
			key = *ed.Label
		}
		out[key]++
	}

	return out
}

// multisetDistance is max(|a|,|b|) - |a ∩ b| over label multisets.
func multisetDistance(a, b map[string]int) int {
	inter := 0
	for k, ca := range a {
		if cb, ok := b[k]; ok {
			if ca < cb {
				inter += ca
			} else {
				inter += cb
			}
		}
	}

	total := func(ms map[string]int) int {
		n := 0
		for _, c := range ms {
			n += c
		}

		return n
	}

	totalA, totalB := total(a), total(b)
	maxTotal := totalA
	if totalB > maxTotal {
		maxTotal = totalB
	}

	return maxTotal - inter
}

// anchoredCost prices the edges of v and u that touch an already-mapped
// vertex ("anchored" edges), matching each out-edge of v against the
// corresponding out-edge of u (same for in-edges), and charging one unit
// for every unmatched or label-mismatched edge on either side.
func anchoredCost(v, u graphmodel.Vertex, m mapping.Mapping, src, tgt *graphmodel.Graph) int {
	cost := 0
	outMatched := make(map[int]bool)
	inMatched := make(map[int]bool)

	for _, ev := range src.Adjacent(v.ID) {
		w := ev.To
		if !m.ContainsSource(w) {
			continue
		}
		wPrime, _ := m.GetTarget(w)
		matched := false
		for _, eu := range tgt.Adjacent(u.ID) {
			if eu.To == wPrime {
				matched = true
				outMatched[eu.ID] = true
				if !graphmodel.LabelsEqual(ev.Label, eu.Label) {
					cost++
				}
				break
			}
		}
		if !matched {
			cost++
		}
	}

	for _, ev := range src.AdjacentInverse(v.ID) {
		w := ev.From
		if !m.ContainsSource(w) {
			continue
		}
		wPrime, _ := m.GetTarget(w)
		matched := false
		for _, eu := range tgt.AdjacentInverse(u.ID) {
			if eu.From == wPrime {
				matched = true
				inMatched[eu.ID] = true
				if !graphmodel.LabelsEqual(ev.Label, eu.Label) {
					cost++
				}
				break
			}
		}
		if !matched {
			cost++
		}
	}

	for _, eu := range tgt.Adjacent(u.ID) {
		if m.ContainsTarget(eu.To) && !outMatched[eu.ID] {
			cost++
		}
	}
	for _, eu := range tgt.AdjacentInverse(u.ID) {
		if m.ContainsTarget(eu.From) && !inMatched[eu.ID] {
			cost++
		}
	}

	return cost
}
