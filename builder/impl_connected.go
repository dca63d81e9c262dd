// SPDX-License-Identifier: MIT
// Package: stepwise/builder
//
// impl_connected.go - Connected(n, p): a random sparse graph guaranteed to
// be connected.
//
// Pairs are sampled exactly as in RandomSparse; afterwards every missing
// link i-(i+1) of the index chain is added, so the chain spans the graph.

package builder

import (
	"github.com/katalvlaran/stepwise/core"
)

// Connected returns a Constructor that samples a connected graph over n
// vertices: random extra edges with probability p plus a spanning chain.
func Connected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateRandom(MethodConnected, n, p, cfg); err != nil {
			return err
		}
		ids, err := addVertices(MethodConnected, g, cfg, n)
		if err != nil {
			return err
		}
		if err = samplePairs(MethodConnected, g, cfg, ids, p); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if g.HasEdge(ids[i-1], ids[i]) {
				continue
			}
			if err = addEdge(MethodConnected, g, cfg, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
