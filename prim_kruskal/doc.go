// Package prim_kruskal provides two instrumented algorithms for computing the
// minimum spanning forest of an undirected, weighted *core.Graph: Prim's
// algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//     For a disconnected graph both algorithms return a minimum spanning forest,
//     one tree per connected component; this is a normal outcome, not an error.
//
//   - Why two algorithms?
//     They reach the same total cost by different routes: Prim grows one tree
//     across a cut, Kruskal merges components greedily. Replaying their event
//     streams side by side is the point of this package.
//
// Algorithms Provided
//
//   - Prim(g, tr) (*Result, error)
//
//   - Strategy: start from the first vertex in insertion order. Every round
//     rescans all edges, emits edge-explore for each edge crossing the cut
//     and commits the lightest one (first seen wins ties) with mst-add.
//
//   - Complexity: O(V·E) time. No heap is used on purpose; a heap-based Prim
//     would change tie-breaking and therefore the event order.
//
//   - Kruskal(g, tr, opts...) (*Result, error)
//
//   - Strategy: stable sort of all edges by weight, then per edge emit
//     edge-explore followed by mst-add (endpoints in different components,
//     merged with unionfind) or mst-reject (would close a cycle).
//     Stops once |V|−1 edges are committed; WithExhaustiveScan keeps going and
//     rejects every remaining edge.
//
//   - Complexity: O(E log E + E·α(V)) time, O(V + E) space.
//
// Events carry the running cost in Value; a completed run ends with
// done (Value = total cost). An empty graph completes without events.
//
// Usage
//
//	res, err := prim_kruskal.Kruskal(g, trace.New(trace.WithSink(sink)))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.TotalCost, len(res.Edges))
package prim_kruskal
