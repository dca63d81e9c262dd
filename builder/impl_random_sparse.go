// SPDX-License-Identifier: MIT
// Package: stepwise/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like sampling.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices), 0 <= p <= 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Unordered pairs {i,j}, i<j, are tried in ascending (i, j) order; the
//     weight is drawn only for accepted pairs.
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

// RandomSparse returns a Constructor that samples a graph over n vertices
// with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateRandom(MethodRandomSparse, n, p, cfg); err != nil {
			return err
		}
		ids, err := addVertices(MethodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}

		return samplePairs(MethodRandomSparse, g, cfg, ids, p)
	}
}

// validateRandom checks the shared preconditions of the stochastic constructors.
func validateRandom(method string, n int, p float64, cfg builderConfig) error {
	if n < MinRandomNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, MinRandomNodes, ErrTooFewVertices)
	}
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > MinProbability && p < MaxProbability {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// samplePairs adds each pair {ids[i], ids[j]} with probability p.
func samplePairs(method string, g *core.Graph, cfg builderConfig, ids []string, p float64) error {
	if p == MinProbability {
		return nil
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if p < MaxProbability && cfg.rng.Float64() >= p {
				continue
			}
			if err := addEdge(method, g, cfg, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
