// Package dijkstra provides an instrumented implementation of Dijkstra's
// shortest-path algorithm on undirected graphs with positive edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Every step is reported on a trace.Trace so a renderer can replay the run.
//
// Frontier discipline:
//
//   - The frontier is ordered by (distance, admission order): among equal
//     distances the entry inserted earlier wins.
//   - Lazy decrease-key: an improved distance pushes a new entry; the old
//     one stays in the heap and is discarded as stale when popped after its
//     vertex was finalized. Entries are never mutated in place, which keeps
//     the event order identical to the textbook formulation.
//
// Events per finalized vertex u:
//
//	visit(u, dist[u])
//	edge-commit(prev[u], u)            unless u is the source
//	edge-explore(u, v)                 for every neighbor v
//	distance-update(v, via u, newDist) when dist[u]+w < dist[v]
//
// A completed run ends with done (Value = number of finalized vertices).
// Unreachable vertices keep distance Infinity; this is not an error.
//
// Key features:
//
//   - MaxDistance: stops exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, "A", trace.New(trace.WithSink(sink)))
//	if err != nil {
//	    return err
//	}
//	path, _ := res.PathTo("D")
package dijkstra
