// Package engine is the boundary surface of stepwise: it selects an
// algorithm by name, wires a trace from caller options and returns a
// collaborator-friendly outcome.
//
//	out, err := engine.RunSort(ctx, "bubble", []int64{5, 3, 8, 1},
//		engine.WithSink(func(ev trace.Event) { fmt.Println(ev) }),
//	)
//
// Three entry points cover the three engine families:
//
//   - RunSort(ctx, kind, input, opts...) for bubble, selection, insertion, merge and heap.
//   - RunTraversal(ctx, kind, g, start, opts...) for bfs, dfs and dijkstra.
//   - RunMST(ctx, kind, g, opts...) for prim and kruskal.
//
// Kinds are matched case-insensitively; unknown names fail with
// ErrUnknownKind before anything runs. Cancelling ctx or the RunHandle
// passed through WithHandle aborts the run at its next suspension point:
// the outcome then carries StatusAborted and a nil error.
//
// Every run is logged at info level on the configured logger and, when
// WithMetrics is given, counted in Prometheus.
package engine
