// SPDX-License-Identifier: MIT
// Package: stepwise/builder
//
// impl_path.go - Path(n): n >= 2, edges 0-1-2-...-(n-1) in stable order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(MethodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(MethodPath, g, cfg, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
