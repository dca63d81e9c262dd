// SPDX-License-Identifier: MIT
// Package: stepwise/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn     = DefaultIDFn ("0","1","2",...)
//   - rng      = nil (stochastic constructors then fail with ErrNeedRandSource)
//   - weightFn = DefaultWeightFn (constant DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Weight generator for edges; results are always >= 1.
	weightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight, clamped to the positive range core accepts.
func (c builderConfig) weight() int64 {
	w := c.weightFn(c.rng)
	if w < 1 {
		return DefaultEdgeWeight
	}

	return w
}
