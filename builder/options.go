package builder

import "math/rand"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Prefer WithSeed
// for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithTypeAlphabet restricts the vertex Type values RandomLabeledGraph draws
// from. A vertex's Type is picked uniformly from the alphabet, independent
// of its ID.
func WithTypeAlphabet(types ...string) BuilderOption {
	return func(c *builderConfig) { c.types = types }
}

// WithProperties gives RandomLabeledGraph a pool of (key, value) pairs to
// sample a single property from for each vertex. Parallel slices: propKeys[i]
// pairs with propVals[i].
func WithProperties(keys, vals []string) BuilderOption {
	return func(c *builderConfig) { c.propKeys, c.propVals = keys, vals }
}

// WithEdgeLabelFn overrides the per-edge label generator.
func WithEdgeLabelFn(fn func(*rand.Rand) *string) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeLabelFn(nil)")
	}

	return func(c *builderConfig) { c.edgeLabel = fn }
}
