// Package dfs provides an instrumented depth-first traversal over an
// undirected core.Graph, plus a trace-free cycle check.
//
// What
//
//   - DFS(g, start, tr, opts...) walks g recursively from start and returns a
//     DFSResult with:
//   - Status: completed or aborted
//   - Order: pre-order visit sequence
//   - Finish: post-order (vertex finished after all its descendants)
//   - Depth, Parent: DFS tree depth and predecessor per visited vertex
//   - MaxStack: the deepest active path seen during the run
//   - HasCycle(g) reports an undirected cycle and one witness, e.g. [A B C A].
//
// Events
//
//	For each vertex entered: visit(node, depth), then edge-commit(parent, node)
//	unless node is a tree root, then edge-explore(node, nb) for every
//	unvisited neighbor right before recursing into it. A completed non-empty
//	run ends with done(number of visited vertices).
//
// Active path
//
//	WithOnPush / WithOnPop mirror the recursion exactly: the root is pushed
//	on entry, each neighbor is pushed right before the recursive call, and
//	every vertex is popped when its call returns, including on abort.
//
// Options
//
//   - WithMaxDepth(d): d >= 0 stops descending below depth d (0 visits only start).
//   - WithFilterNeighbor(fn): skip neighbors for which fn returns false.
//   - WithFullTraversal(): after the start tree, restart from every unvisited
//     vertex in insertion order (forest traversal).
//
// Errors
//
//	ErrGraphNil, ErrNilTrace, ErrStartVertexNotFound (also matches
//	*core.NotFoundError), trace.ErrRunInProgress while the graph or handle is
//	busy. A missing start emits no event; an empty graph completes at once.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for visited state and the recursion
//
// Usage
//
//	res, err := dfs.DFS(g, "A", trace.New(trace.WithSink(sink)),
//	    dfs.WithOnPush(func(id string, depth int) { /* highlight */ }),
//	    dfs.WithOnPop(func(id string) { /* unhighlight */ }),
//	)
package dfs
