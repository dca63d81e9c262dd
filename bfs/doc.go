// Package bfs provides an instrumented breadth-first traversal over a
// core.Graph, returning unweighted shortest-path depths, parent links, and
// visit order while reporting every step on a trace.Trace.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Status: completed or aborted
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Emits, per popped vertex:
//     visit(node, depth), edge-commit(parent, node) for non-root vertices,
//     then edge-explore(node, nb) for each unvisited neighbor as it is pushed.
//   - Frontier hooks OnEnqueue / OnDequeue expose the queue to renderers.
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Frontier discipline
//
//	The FIFO frontier may hold the same vertex several times: a neighbor is
//	pushed whenever it is still unvisited at exploration time. A pop of an
//	already visited vertex is skipped silently. Unreachable vertices are
//	never visited; this is a normal outcome.
//
// Determinism
//
//	core.Graph.Neighbors yields neighbors in edge-insertion order and BFS
//	pushes them in that order, so the event sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (the frontier may hold one entry per explored edge)
//
// Usage
//
//	rec := &trace.Recorder{}
//	res, err := bfs.BFS(g, "A", trace.New(trace.WithSink(rec.Sink())),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnEnqueue(func(id string, depth int) { /* ... */ }),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrNilTrace, ErrStartVertexNotFound, ErrOptionViolation,
//	    // or trace.ErrRunInProgress
//	}
//	path, _ := res.PathTo("D")
package bfs
