// Package builder produces deterministic fixtures for the engines: undirected
// weighted graphs (cycle, path, complete, random sparse, random connected) and
// random integer arrays.
//
// Graphs are assembled by BuildGraph from an ordered list of Constructors and
// functional BuilderOptions:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithLetterIDs(), builder.WithWeightRange(1, 9)},
//		builder.Connected(6, 0.3),
//	)
//
// Vertex IDs come from an IDFn (decimal by default, letters with
// WithLetterIDs). Edge weights come from a WeightFn and are always positive,
// as required by core.Graph.
//
// Determinism: the same options, seed and constructor order always produce the
// same vertices, edges, edge IDs and weights. Stochastic constructors require
// a seeded RNG (WithSeed or WithRand) and report ErrNeedRandSource otherwise.
//
// Option constructors panic on meaningless input (nil schemes, inverted
// ranges). Constructors never panic; they return sentinel errors wrapped with
// the constructor name.
package builder
