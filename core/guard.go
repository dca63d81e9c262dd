package core

import "sync/atomic"

// Guard is a non-blocking run lock. The zero value is unlocked.
//
// Engines call TryAcquire before their first step and Release when the run
// ends; a failed TryAcquire means another run owns the model.
type Guard struct {
	busy atomic.Bool
}

// TryAcquire claims the guard and reports whether it was free.
func (g *Guard) TryAcquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

// Release frees the guard. Releasing a free guard is a no-op.
func (g *Guard) Release() {
	g.busy.Store(false)
}

// Busy reports whether a run currently holds the guard.
func (g *Guard) Busy() bool {
	return g.busy.Load()
}
