// Package dijkstra defines core types and configuration options
// for the instrumented Dijkstra shortest-path engine.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/stepwise/trace"
)

// Infinity is the distance reported for vertices not reached from the source.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilTrace indicates that a nil trace was passed to Dijkstra.
	ErrNilTrace = errors.New("dijkstra: trace is nil")

	// ErrStartVertexNotFound indicates that the source vertex does not exist
	// in the provided graph.
	ErrStartVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is Infinity (no obstacles).
type Options struct {
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped
// entirely and produce no edge-explore event.
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no distance cap and no
// impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// Result holds the outcome of a Dijkstra run.
type Result struct {
	// Status is completed, or aborted if cancellation was observed.
	Status trace.Status

	// Order lists vertices in finalization order.
	Order []string

	// Dist maps every vertex to its best known distance; Infinity if unreached.
	// On a completed run the distances of finalized vertices are exact.
	Dist map[string]int64

	// Prev maps each reached non-source vertex to its shortest-path predecessor.
	Prev map[string]string
}

// PathTo reconstructs the shortest path from the source to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if d, ok := r.Dist[dest]; !ok || d == Infinity {
		return nil, fmt.Errorf("dijkstra: no path to %q", dest)
	}
	path := []string{dest}
	for cur := dest; ; {
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
