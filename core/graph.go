package core

import (
	"fmt"
)

// edgeIDPrefix is prepended to the mu-guarded nextEdgeID counter for Edge.ID generation.
const edgeIDPrefix = "e"

// AddVertex inserts a vertex with the given id. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID for an empty id, ErrGraphBusy during a run.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Busy() {
		return ErrGraphBusy
	}
	g.addVertexLocked(id)

	return nil
}

// TryAcquire claims the graph for a run. It takes mu so a claim cannot land
// between a mutator's busy check and its write.
func (g *Graph) TryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.Guard.TryAcquire()
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.order = append(g.order, id)
}

// AddEdge connects from and to with the given weight, adding missing endpoints.
// It returns the new edge ID.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight (weight <= 0),
// ErrMultiEdgeNotAllowed (pair already connected), ErrGraphBusy.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", fmt.Errorf("%w: %s-%s", ErrLoopNotAllowed, from, to)
	}
	if weight <= 0 {
		return "", fmt.Errorf("%w: %s-%s weight=%d", ErrBadWeight, from, to, weight)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Busy() {
		return "", ErrGraphBusy
	}

	// 2) One edge per unordered pair
	key := newPairKey(from, to)
	if _, dup := g.pairs[key]; dup {
		return "", fmt.Errorf("%w: %s-%s", ErrMultiEdgeNotAllowed, from, to)
	}

	// 3) Ensure both endpoints exist (idempotent)
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 4) Append edge and index it under both endpoints
	g.nextEdgeID++
	e := Edge{
		ID:     fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID),
		From:   from,
		To:     to,
		Weight: weight,
	}
	idx := len(g.edges)
	g.edges = append(g.edges, e)
	g.pairs[key] = struct{}{}
	g.adj[from] = append(g.adj[from], idx)
	g.adj[to] = append(g.adj[to], idx)

	return e.ID, nil
}

// HasVertex reports whether id exists in the graph.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// HasEdge reports whether u and v are connected (in either orientation).
// Complexity: O(1)
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.pairs[newPairKey(u, v)]

	return ok
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns all edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the adjacency view of id: every incident edge, in
// edge-insertion order, paired with the vertex on its other side.
// Returns *NotFoundError if id is absent.
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, &NotFoundError{ID: id}
	}
	idxs := g.adj[id]
	out := make([]Neighbor, 0, len(idxs))
	for _, i := range idxs {
		e := g.edges[i]
		out = append(out, Neighbor{ID: e.Other(id), Weight: e.Weight, Edge: e})
	}

	return out, nil
}

// NeighborIDs returns the IDs of the vertices adjacent to id, in adjacency order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(nbs))
	for i, nb := range nbs {
		ids[i] = nb.ID
	}

	return ids, nil
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Clone returns an independent copy with identical vertex order, edge order
// and edge IDs. The clone starts with a free Guard.
// Complexity: O(V+E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := NewGraph()
	c.nextEdgeID = g.nextEdgeID
	c.order = append([]string(nil), g.order...)
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	c.edges = append([]Edge(nil), g.edges...)
	for k := range g.pairs {
		c.pairs[k] = struct{}{}
	}
	for id, idxs := range g.adj {
		c.adj[id] = append([]int(nil), idxs...)
	}

	return c
}
