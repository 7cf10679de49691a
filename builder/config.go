// Package builder provides internal helper functions and types
// for configuring edge‐weight distributions in graph constructors.
//
// config.go — the resolved builderConfig type and its constructor.
// BuilderOption values close over *builderConfig (see options.go); this
// file defines the struct they mutate and the defaults applied before
// any option runs.
package builder

import (
	"math/rand"
)

// builderConfig holds the fully resolved, immutable-after-construction
// state consumed by every Constructor and sequence builder. It is built
// once per BuildGraph/BuildPulse/... call via newBuilderConfig and then
// passed by value, so constructors never observe option mutation after
// the fact.
type builderConfig struct {
	idFn IDFn // vertex ID scheme; defaults to DefaultIDFn.

	rng      *rand.Rand           // RNG source for stochastic builders; nil unless WithRand/WithSeed is set.
	weightFn func(*rand.Rand) int64 // per-edge weight generator; defaults to a constant weight.

	leftPrefix, rightPrefix string // bipartite partition label prefixes; default "L"/"R".

	amplitude, frequency, trendK, noiseSigma float64 // sequence dataset knobs (Pulse/Chirp/OHLC).
}

// newBuilderConfig resolves a builderConfig from zero or more BuilderOption
// values, applying package defaults first so every field is always valid.
//
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		weightFn:   asInt64WeightFn(DefaultWeightFn),
		leftPrefix: "L",
		rightPrefix: "R",
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	// Empty prefixes mean "use defaults", not "clear the default" (see
	// WithPartitionPrefix's contract in options.go).
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = "L"
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = "R"
	}

	return cfg
}
