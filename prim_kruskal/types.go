// Package prim_kruskal defines configuration options and sentinel errors for
// instrumented minimum-spanning-forest computation.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/trace"
)

// ErrNilGraph indicates that a nil graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrNilTrace indicates that a nil trace was passed.
var ErrNilTrace = errors.New("prim_kruskal: trace is nil")

// ErrUnknownMethod indicates a Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow a tree by scanning every edge).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs and how Kruskal
// finishes.
//
// Fields:
//
//	Method         string  one of MethodPrim or MethodKruskal.
//	ExhaustiveScan bool    Kruskal keeps examining the remaining edges after
//	                       |V|−1 commits, rejecting each of them. Ignored by Prim.
type MSTOptions struct {
	Method         string
	ExhaustiveScan bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithExhaustiveScan makes Kruskal examine every edge, even after the tree
// is complete.
func WithExhaustiveScan() Option {
	return func(opts *MSTOptions) {
		opts.ExhaustiveScan = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal, stopping at
// |V|−1 committed edges.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Result is the outcome of an MST run.
type Result struct {
	// Status is completed, or aborted if cancellation was observed.
	Status trace.Status

	// Edges lists committed edges in commit order. For a disconnected graph
	// it is a spanning forest with fewer than |V|−1 edges.
	Edges []core.Edge

	// TotalCost is the sum of committed edge weights.
	TotalCost int64

	// Rejected lists edges Kruskal refused because they would close a cycle.
	Rejected []core.Edge
}

// Compute selects and runs the MST algorithm configured by opts.
//
//	– MethodKruskal: Kruskal(graph, tr, opts...).
//	– MethodPrim:    Prim(graph, tr).
//	– Otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, tr *trace.Trace, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph, tr, opts...)
	case MethodPrim:
		return Prim(graph, tr)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// begin validates inputs and claims the graph and trace for a run.
// The returned release must be called once the run ends.
func begin(graph *core.Graph, tr *trace.Trace, name string) (func(), error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	if tr == nil {
		return nil, ErrNilTrace
	}
	if !graph.TryAcquire() {
		return nil, fmt.Errorf("%w: %w", trace.ErrRunInProgress, core.ErrGraphBusy)
	}
	if err := tr.Begin(name); err != nil {
		graph.Release()
		return nil, err
	}

	return graph.Release, nil
}

// finish closes the run and stamps the status on res. Runs over an empty
// vertex set end without a done event.
func finish(tr *trace.Trace, res *Result, vertices int, err error) (*Result, error) {
	if err == nil && vertices > 0 {
		err = tr.Emit(trace.Done(res.TotalCost))
	}
	status, err := trace.Outcome(err)
	tr.End(status)
	if err != nil {
		return nil, err
	}
	res.Status = status

	return res, nil
}
