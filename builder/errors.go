package builder

import "errors"

// Sentinel errors. Constructors wrap them with the constructor name, so
// callers branch with errors.Is.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or a graph that refused a mutation.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrBadSize indicates an invalid array length or value bound.
	ErrBadSize = errors.New("builder: invalid size/length")
)
