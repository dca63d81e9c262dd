// Package prim_kruskal provides an instrumented implementation of Kruskal's
// minimum spanning forest algorithm.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/trace"
	"github.com/katalvlaran/stepwise/unionfind"
)

// Kruskal sorts all edges by weight, keeping insertion order among equal
// weights, and processes them in that order. Each edge emits edge-explore,
// then mst-add if its endpoints lie in different components (they are
// merged) or mst-reject if it would close a cycle. Value on both carries the
// running cost.
//
// The scan stops once |V|−1 edges are committed unless WithExhaustiveScan is
// given, in which case every remaining edge is examined and rejected. A
// disconnected graph yields a forest; this is not an error. A completed run
// ends with done (Value = total cost).
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal(graph *core.Graph, tr *trace.Trace, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	release, err := begin(graph, tr, "mst/kruskal")
	if err != nil {
		return nil, err
	}
	defer release()

	res := &Result{Edges: []core.Edge{}}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return finish(tr, res, 0, nil)
	}

	return finish(tr, res, len(vertices), kruskal(graph, tr, vertices, o.ExhaustiveScan, res))
}

func kruskal(graph *core.Graph, tr *trace.Trace, vertices []string, exhaustive bool, res *Result) error {
	// 1. Stable sort keeps insertion order among equal weights.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 2. Every vertex starts as its own component.
	uf := unionfind.New(vertices...)
	target := len(vertices) - 1

	// 3. Greedy scan.
	for _, e := range edges {
		if !exhaustive && len(res.Edges) >= target {
			break
		}
		if err := tr.Emit(trace.EdgeExplore(e.From, e.To, e.ID, e.Weight)); err != nil {
			return err
		}

		var err error
		if uf.Connected(e.From, e.To) {
			err = tr.Commit(trace.MSTReject(e.From, e.To, e.ID, e.Weight, res.TotalCost), func() {
				res.Rejected = append(res.Rejected, e)
			})
		} else {
			err = tr.Commit(trace.MSTAdd(e.From, e.To, e.ID, e.Weight, res.TotalCost+e.Weight), func() {
				uf.Union(e.From, e.To)
				res.Edges = append(res.Edges, e)
				res.TotalCost += e.Weight
			})
		}
		if err != nil {
			return err
		}
	}

	return nil
}
