// Package stepwise is a set of instrumented algorithm engines: classic
// sorting, graph traversal and minimum spanning tree algorithms that narrate
// every elementary step they take, so a renderer can replay the run.
//
// 🚀 What is stepwise?
//
//	Each engine mutates its data only through a trace.Trace, which
//		• delivers one Event per compare, swap, visit, relaxation or MST decision
//		• paces the run with an optional per-event delay
//		• stops the run cooperatively when its RunHandle is cancelled
//
// Engines:
//
//	sorting/       bubble, selection, insertion, merge, heap
//	bfs/, dfs/     breadth- and depth-first traversal
//	dijkstra/      single-source shortest paths
//	prim_kruskal/  minimum spanning tree/forest (Prim, Kruskal)
//
// Supporting packages:
//
//	core/          thread-safe undirected weighted Graph
//	trace/         Event vocabulary, Trace, RunHandle
//	unionfind/     disjoint sets for Kruskal
//	builder/       deterministic graph and array generators
//	engine/        kind-dispatching facade with logging and metrics
//
// The cmd/stepwise binary drives all of the above from the command line:
//
//	go install github.com/katalvlaran/stepwise/cmd/stepwise@latest
//	stepwise sort merge 5 3 8 1 --delay 100ms
//	stepwise traverse dijkstra --preset random:8 --start A -o json
package stepwise
