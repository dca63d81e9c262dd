package trace

import (
	"context"
	"sync"
)

// RunHandle is the caller's grip on a run: it requests cancellation and
// reports whether a run is in progress. Cancel may be called from any
// goroutine, before or during a run; a handle cancelled before its run
// starts makes that run abort before its first step.
type RunHandle struct {
	mu        sync.Mutex
	running   bool
	cancelled bool
	cancel    context.CancelFunc
}

// NewRunHandle returns an idle, uncancelled handle.
func NewRunHandle() *RunHandle {
	return &RunHandle{}
}

// Cancel requests cancellation. The engine observes it at its next
// suspension point, including while it waits out the pacing delay.
func (h *RunHandle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cancelled = true
	if h.cancel != nil {
		h.cancel()
	}
}

// Cancelled reports whether Cancel was called since the last Reset.
func (h *RunHandle) Cancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.cancelled
}

// Running reports whether a run currently holds the handle.
func (h *RunHandle) Running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.running
}

// Reset clears a previous cancellation so the handle can drive another run.
// It returns ErrRunInProgress while a run holds the handle.
func (h *RunHandle) Reset() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.running {
		return ErrRunInProgress
	}
	h.cancelled = false

	return nil
}

// begin marks the handle running and derives the run context from parent.
func (h *RunHandle) begin(parent context.Context) (context.Context, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.running {
		return nil, ErrRunInProgress
	}
	ctx, cancel := context.WithCancel(parent)
	if h.cancelled {
		cancel()
	}
	h.running = true
	h.cancel = cancel

	return ctx, nil
}

// end releases the handle and the run context.
func (h *RunHandle) end() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.running = false
}
