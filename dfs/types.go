package dfs

import (
	"errors"

	"github.com/katalvlaran/stepwise/trace"
)

// Vertex visitation states used by cycle detection.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the active path.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or HasCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNilTrace is returned when a nil trace is passed to DFS.
	ErrNilTrace = errors.New("dfs: trace is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, tr, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnPush, if non-nil, is invoked when a vertex is pushed on the active
	// path: the root on entry, every other vertex right before recursing.
	OnPush func(id string, depth int)

	// OnPop, if non-nil, is invoked when a vertex leaves the active path.
	OnPop func(id string)

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before recurse.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(id string) bool

	// FullTraversal, if true, restarts DFS from every unvisited vertex in
	// insertion order after the start tree is exhausted (forest traversal).
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - No active-path hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{MaxDepth: -1}
}

// WithOnPush installs fn as the active-path push hook.
func WithOnPush(fn func(id string, depth int)) Option {
	return func(o *DFSOptions) {
		o.OnPush = fn
	}
}

// WithOnPop installs fn as the active-path pop hook.
func WithOnPop(fn func(id string)) Option {
	return func(o *DFSOptions) {
		o.OnPop = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that sets a neighbor filter.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a DFS traversal.
type DFSResult struct {
	// Status is completed, or aborted if cancellation was observed.
	Status trace.Status

	// Order lists vertices in discovery (pre-order) sequence.
	Order []string

	// Finish lists vertices in completion (post-order) sequence.
	Finish []string

	// Depth maps each visited vertex to its depth in its DFS tree.
	Depth map[string]int

	// Parent maps each non-root visited vertex to its DFS tree parent.
	Parent map[string]string

	// MaxStack is the deepest the active path grew.
	MaxStack int
}
