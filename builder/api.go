// SPDX-License-Identifier: MIT
// Package: stepwise/builder
//
// api.go - public entry point for the builder package.
//
// One orchestrator: BuildGraph(bopts, cons...) creates g, resolves cfg and
// runs cons in order. Factories live in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return wrapped sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts and applies all constructors in order. The first constructor
// error is wrapped as "BuildGraph: %w" and returned; no partial graph is
// returned.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts n vertices named by cfg.idFn and returns their IDs in index order.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge connects u and v with the next configured weight.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	w := cfg.weight()
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
