// Package prim_kruskal provides an instrumented implementation of Prim's
// minimum spanning forest algorithm in its naive O(V·E) form.
package prim_kruskal

import (
	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/trace"
)

// Prim grows a spanning tree from the first vertex in insertion order.
//
// Each round scans every edge in insertion order, emits edge-explore for
// each edge crossing the cut (exactly one endpoint in the tree) and keeps
// the lightest one; ties go to the edge seen first. After the scan that edge
// is committed with mst-add (Value = running cost). When no crossing edge
// exists but vertices remain, a new tree is seeded at the first vertex still
// outside, so a disconnected graph yields a spanning forest. A completed run
// ends with done (Value = total cost).
//
// There is deliberately no priority queue: the full rescan fixes the
// tie-breaking and the event order of the textbook formulation.
//
// Complexity: O(V·E) time, O(V) memory.
func Prim(graph *core.Graph, tr *trace.Trace) (*Result, error) {
	release, err := begin(graph, tr, "mst/prim")
	if err != nil {
		return nil, err
	}
	defer release()

	res := &Result{Edges: []core.Edge{}}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return finish(tr, res, 0, nil)
	}

	return finish(tr, res, len(vertices), prim(graph, tr, vertices, res))
}

func prim(graph *core.Graph, tr *trace.Trace, vertices []string, res *Result) error {
	edges := graph.Edges()
	inTree := make(map[string]bool, len(vertices))
	inTree[vertices[0]] = true
	added := 1

	for added < len(vertices) {
		var (
			best  core.Edge
			found bool
		)
		for _, e := range edges {
			if inTree[e.From] == inTree[e.To] {
				continue
			}
			// orient from the tree side
			cand := e
			if !inTree[e.From] {
				cand.From, cand.To = e.To, e.From
			}
			if err := tr.Emit(trace.EdgeExplore(cand.From, cand.To, cand.ID, cand.Weight)); err != nil {
				return err
			}
			if !found || cand.Weight < best.Weight {
				best, found = cand, true
			}
		}

		if !found {
			// component exhausted: seed the next tree
			for _, v := range vertices {
				if !inTree[v] {
					inTree[v] = true
					added++
					break
				}
			}
			continue
		}

		err := tr.Commit(trace.MSTAdd(best.From, best.To, best.ID, best.Weight, res.TotalCost+best.Weight), func() {
			inTree[best.To] = true
			added++
			res.Edges = append(res.Edges, best)
			res.TotalCost += best.Weight
		})
		if err != nil {
			return err
		}
	}

	return nil
}
