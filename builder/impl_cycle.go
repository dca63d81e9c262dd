// SPDX-License-Identifier: MIT
// Package: stepwise/builder
//
// impl_cycle.go - Cycle(n): n >= 3, vertices 0..n-1, edges i-(i+1)%n in
// ascending i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(MethodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		// Close the ring on the last step.
		for i := 0; i < n; i++ {
			if err = addEdge(MethodCycle, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
