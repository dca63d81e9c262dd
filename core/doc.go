// Package core defines the two models every stepwise engine operates on:
// an undirected weighted Graph and a mutable integer Array.
//
// Graph G = (V,E):
//
//   - Vertex IDs are non-empty strings kept in insertion order.
//   - Edges are unordered pairs of distinct vertices with a positive int64 weight.
//   - At most one edge per unordered pair; no self-loops.
//   - Neighbors(id) is a derived, read-only adjacency view that preserves
//     edge-insertion order, so every traversal over the same Graph value is
//     reproducible step by step.
//
// Array:
//
//   - Wraps a finite []int64. Engines only ever exchange two slots (Swap), so
//     the multiset of values is invariant at every instant of a run, aborted
//     runs included.
//   - Origins() reports, for every slot, the input index of the element that
//     currently occupies it. This makes sort stability observable.
//
// Run exclusion:
//
//	Both models embed a Guard. An engine claims the guard for the whole run and
//	a second engine invocation on the same model is rejected instead of being
//	interleaved. While a Graph is claimed its topology is frozen: AddVertex and
//	AddEdge return ErrGraphBusy.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist (see NotFoundError).
//	ErrBadWeight           - edge weight is not strictly positive.
//	ErrLoopNotAllowed      - edge endpoints are equal.
//	ErrMultiEdgeNotAllowed - an edge for the same unordered pair already exists.
//	ErrGraphBusy           - topology mutation attempted during a run.
//	ErrArrayBusy           - Array.Reset attempted during a run.
//	ErrIndexOutOfRange     - array index outside [0, Len()).
package core
