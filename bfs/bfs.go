// Package bfs provides breadth-first traversal over a core.Graph,
// reporting each step on a trace.Trace and returning unweighted
// shortest-path depths, parent links, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/trace"
)

// queueItem is one frontier entry. The same vertex may be queued several
// times; only the first pop visits it.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
	edge   core.Edge
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	tr      *trace.Trace
	opts    BFSOptions
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first traversal on g starting from startID, reporting
// visit, edge-commit and edge-explore events on tr and closing a completed
// run with done (Value = number of visited vertices).
//
// Returns ErrGraphNil, ErrNilTrace, ErrOptionViolation, or an error matching
// both ErrStartVertexNotFound and *core.NotFoundError for invalid input; no
// event is emitted in those cases. An empty graph completes immediately.
// A graph or handle already driving a run yields trace.ErrRunInProgress.
func BFS(g *core.Graph, startID string, tr *trace.Trace, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if tr == nil {
		return nil, ErrNilTrace
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if n > 0 && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, &core.NotFoundError{ID: startID})
	}
	if !g.TryAcquire() {
		return nil, fmt.Errorf("%w: %w", trace.ErrRunInProgress, core.ErrGraphBusy)
	}
	defer g.Release()
	if err := tr.Begin("traverse/bfs"); err != nil {
		return nil, err
	}

	w := &walker{
		graph:   g,
		tr:      tr,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	var err error
	if n > 0 {
		w.enqueue(queueItem{id: startID})
		if err = w.loop(); err == nil {
			err = tr.Emit(trace.Done(int64(len(w.res.Order))))
		}
	}
	status, err := trace.Outcome(err)
	tr.End(status)
	if err != nil {
		return nil, err
	}
	w.res.Status = status

	return w.res, nil
}

// enqueue pushes item to the frontier tail and calls OnEnqueue.
func (w *walker) enqueue(item queueItem) {
	w.opts.OnEnqueue(item.id, item.depth)
	w.queue = append(w.queue, item)
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if w.visited[item.id] {
			// duplicate frontier entry
			continue
		}
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit marks the vertex, records it, and emits visit then edge-commit for
// non-root vertices.
func (w *walker) visit(item queueItem) error {
	err := w.tr.Commit(trace.Visit(item.id, int64(item.depth)), func() {
		w.visited[item.id] = true
		w.res.Order = append(w.res.Order, item.id)
		w.res.Depth[item.id] = item.depth
	})
	if err != nil || item.parent == "" {
		return err
	}

	return w.tr.Commit(trace.EdgeCommit(item.parent, item.id, item.edge.ID, item.edge.Weight), func() {
		w.res.Parent[item.id] = item.parent
	})
}

// enqueueNeighbors emits edge-explore and enqueues each unvisited neighbor,
// honoring FilterNeighbor and MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return err
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nb := range neighbors {
		if w.visited[nb.ID] || !w.opts.FilterNeighbor(item.id, nb.ID) {
			continue
		}
		if err = w.tr.Emit(trace.EdgeExplore(item.id, nb.ID, nb.Edge.ID, nb.Weight)); err != nil {
			return err
		}
		w.enqueue(queueItem{id: nb.ID, depth: nextDepth, parent: item.id, edge: nb.Edge})
	}

	return nil
}
