package builder

import (
	"fmt"

	"github.com/katalvlaran/graphdiff/graphmodel"
)

const (
	methodRandomLabeledGraph      = "RandomLabeledGraph"
	minRandomLabeledGraphVertices = 1
	probMin                       = 0.0
	probMax                       = 1.0
)

// RandomLabeledGraph builds a directed, vertex- and edge-labeled
// Erdős–Rényi-style graph over n vertices with independent edge inclusion
// probability p: every ordered pair (i, j), i != j, is trialed independently.
// Each vertex is assigned a Type drawn from the configured alphabet (default
// a single type, so every vertex is mutually mappable unless
// WithTypeAlphabet narrows/widens the pool) and, if WithProperties was
// supplied, one property. Each included edge gets a label via the
// configured edge-label generator (default: a coin flip between nil and a
// fixed label).
//
// Grounded in the Erdős–Rényi RandomSparse generator style: same
// ordered-pair Bernoulli-trial structure over a directed graph, adapted from
// a weighted-edge AddEdge to graphmodel.Graph's labeled AddEdge and from
// pure topology to vertex/edge attribute assignment.
func RandomLabeledGraph(n int, p float64, opts ...BuilderOption) (*graphmodel.Graph, error) {
	if n < minRandomLabeledGraphVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomLabeledGraph, n, minRandomLabeledGraphVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomLabeledGraph, p, probMin, probMax, ErrInvalidProbability)
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && p > 0.0 && p < 1.0 {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomLabeledGraph, ErrNeedRandSource)
	}

	g := graphmodel.NewGraph()
	for i := 0; i < n; i++ {
		v := graphmodel.Vertex{ID: graphmodel.VertexID(cfg.idFn(i)), Type: pickType(&cfg, i)}
		if len(cfg.propKeys) > 0 {
			k, val := pickProperty(&cfg, i)
			v.Properties = map[string]string{k: val}
		}
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodRandomLabeledGraph, v.ID, err)
		}
	}

	for i := 0; i < n; i++ {
		u := graphmodel.VertexID(cfg.idFn(i))
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			include := cfg.rng == nil && p == 1.0
			if cfg.rng != nil {
				include = cfg.rng.Float64() <= p
			}
			if !include {
				continue
			}
			v := graphmodel.VertexID(cfg.idFn(j))
			if _, err := g.AddEdge(u, v, cfg.edgeLabel(cfg.rng)); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%s->%s): %w", methodRandomLabeledGraph, u, v, err)
			}
		}
	}

	return g, nil
}

func pickType(cfg *builderConfig, i int) string {
	if cfg.rng == nil {
		return cfg.types[i%len(cfg.types)]
	}

	return cfg.types[cfg.rng.Intn(len(cfg.types))]
}

func pickProperty(cfg *builderConfig, i int) (string, string) {
	idx := i % len(cfg.propKeys)
	if cfg.rng != nil {
		idx = cfg.rng.Intn(len(cfg.propKeys))
	}

	return cfg.propKeys[idx], cfg.propVals[idx]
}
