package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core model operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a zero or negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrGraphBusy indicates a topology mutation while an engine run holds the graph.
	ErrGraphBusy = errors.New("core: graph is in use by an active run")

	// ErrArrayBusy indicates a Reset while an engine run holds the array.
	ErrArrayBusy = errors.New("core: array is in use by an active run")

	// ErrIndexOutOfRange indicates an array index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("core: index out of range")
)

// NotFoundError reports a vertex ID that is absent from a Graph.
// errors.Is(err, ErrVertexNotFound) holds for every *NotFoundError.
type NotFoundError struct {
	ID string
}

// Error implements error.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("core: vertex %q not found", e.ID)
}

// Is lets errors.Is match NotFoundError against ErrVertexNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrVertexNotFound
}

// Edge is an undirected weighted connection between two distinct vertices.
//
// From and To keep the orientation the edge was inserted with; it carries no
// direction semantics. ID is unique within its Graph ("e1", "e2", ...).
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string `json:"id"`

	// From is the first endpoint as inserted.
	From string `json:"from"`

	// To is the second endpoint as inserted.
	To string `json:"to"`

	// Weight is the strictly positive edge cost.
	Weight int64 `json:"weight"`
}

// Other returns the endpoint of e opposite to id.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// String renders e as "From-To(Weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%s-%s(%d)", e.From, e.To, e.Weight)
}

// Neighbor is one entry of the derived adjacency view: the vertex reached,
// the weight of the connecting edge and the edge itself.
type Neighbor struct {
	ID     string
	Weight int64
	Edge   Edge
}

// Graph is the undirected weighted GraphModel.
//
// mu guards every field. Vertex and edge slices keep insertion order; adj
// maps a vertex to indices into edges, also in insertion order.
type Graph struct {
	Guard

	mu sync.RWMutex

	nextEdgeID uint64
	order      []string            // vertex IDs, insertion order
	vertices   map[string]struct{} // membership
	edges      []Edge              // insertion order
	pairs      map[pairKey]struct{}
	adj        map[string][]int // vertex ID → indices into edges
}

// pairKey is the canonical unordered endpoint pair used to reject parallel edges.
type pairKey struct{ a, b string }

func newPairKey(u, v string) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{a: u, b: v}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]struct{}),
		pairs:    make(map[pairKey]struct{}),
		adj:      make(map[string][]int),
	}
}
