// Package dijkstra implements an instrumented Dijkstra shortest-path engine
// on weighted undirected graphs.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/trace"
)

// Dijkstra computes shortest distances from start to every vertex of g,
// reporting each step on tr.
//
// Per finalized vertex u it emits visit(u, dist), edge-commit(prev, u) when
// u is not the source, then for every neighbor v edge-explore(u, v) and, if
// the edge improves v, distance-update(v, via u). A completed run ends with
// done (Value = number of finalized vertices).
//
// Validation (in order): ErrNilGraph, ErrNilTrace, then an error matching
// both ErrStartVertexNotFound and *core.NotFoundError if g is non-empty and
// lacks start. An empty graph completes immediately with no events.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, start string, tr *trace.Trace, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if tr == nil {
		return nil, ErrNilTrace
	}
	vertices := g.Vertices()
	if len(vertices) > 0 && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, &core.NotFoundError{ID: start})
	}
	if !g.TryAcquire() {
		return nil, fmt.Errorf("%w: %w", trace.ErrRunInProgress, core.ErrGraphBusy)
	}
	defer g.Release()
	if err := tr.Begin("traverse/dijkstra"); err != nil {
		return nil, err
	}

	// 3) Prepare runner state
	V := len(vertices)
	r := &runner{
		g:       g,
		tr:      tr,
		options: cfg,
		visited: make(map[string]bool, V),
		via:     make(map[string]core.Edge, V),
		pq:      make(nodePQ, 0, V),
		res: &Result{
			Order: make([]string, 0, V),
			Dist:  make(map[string]int64, V),
			Prev:  make(map[string]string, V),
		},
	}
	for _, v := range vertices {
		r.res.Dist[v] = Infinity
	}

	// 4) Run
	var err error
	if V > 0 {
		r.init(start)
		if err = r.process(); err == nil {
			err = tr.Emit(trace.Done(int64(len(r.res.Order))))
		}
	}
	status, err := trace.Outcome(err)
	tr.End(status)
	if err != nil {
		return nil, err
	}
	r.res.Status = status

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	tr      *trace.Trace
	options Options
	visited map[string]bool      // finalized vertices
	via     map[string]core.Edge // edge to the current predecessor
	pq      nodePQ               // lazy frontier, may hold stale entries
	seq     uint64               // admission counter for FIFO tie-breaks
	res     *Result
}

// init seeds the frontier with the source at distance zero.
func (r *runner) init(source string) {
	r.res.Dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)
}

func (r *runner) push(id string, d int64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
}

// process repeatedly finalizes the nearest vertex until the frontier empties
// or its minimum exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// stale entry: u was finalized by an earlier, smaller pop
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}

		err := r.tr.Commit(trace.Visit(u, d), func() {
			r.visited[u] = true
			r.res.Order = append(r.res.Order, u)
		})
		if err != nil {
			return err
		}
		if p, ok := r.res.Prev[u]; ok {
			e := r.via[u]
			if err := r.tr.Emit(trace.EdgeCommit(p, u, e.ID, e.Weight)); err != nil {
				return err
			}
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax explores every neighbor of the finalized vertex u and pushes a new
// frontier entry for each improved distance. Existing entries are never
// updated in place.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	du := r.res.Dist[u]
	for _, nb := range neighbors {
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if err = r.tr.Emit(trace.EdgeExplore(u, nb.ID, nb.Edge.ID, nb.Weight)); err != nil {
			return err
		}
		newDist := du + nb.Weight
		if newDist > r.options.MaxDistance || newDist >= r.res.Dist[nb.ID] {
			continue
		}
		err = r.tr.Commit(trace.DistanceUpdate(nb.ID, u, newDist), func() {
			r.res.Dist[nb.ID] = newDist
			r.res.Prev[nb.ID] = u
			r.via[nb.ID] = nb.Edge
			r.push(nb.ID, newDist)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// nodeItem is a frontier entry.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source when admitted
	seq  uint64 // admission order
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq): among equal
// distances the entry admitted first wins.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by admission.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
