package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates the knobs RandomLabeledGraph draws on. It is
// resolved once by newBuilderConfig and passed by value, per
// an immutable-config convention.
type builderConfig struct {
	idFn      func(int) string
	rng       *rand.Rand
	types     []string
	propKeys  []string
	propVals  []string
	edgeLabel func(*rand.Rand) *string
}

const (
	defaultType = "T"
)

func defaultEdgeLabel(rng *rand.Rand) *string {
	if rng == nil || rng.Intn(2) == 0 {
		return nil
	}
	s := "e"

	return &s
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      decimalID,
		rng:       nil,
		types:     []string{defaultType},
		propKeys:  nil,
		propVals:  nil,
		edgeLabel: defaultEdgeLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.types) == 0 {
		cfg.types = []string{defaultType}
	}

	return cfg
}

// decimalID renders an index as "v0", "v1", ... .
func decimalID(i int) string {
	return "v" + strconv.Itoa(i)
}
