// Package trace is the StepTrace shared by every stepwise engine: the typed
// step events, the channel that delivers them to a single consumer, the
// pacing clock, and the RunHandle that carries cooperative cancellation.
//
// What
//
//   - Event: one elementary operation (compare, swap, set-final, visit,
//     edge-explore, edge-commit, distance-update, mst-add, mst-reject, done)
//     with the operands it touched and any updated scalar.
//   - Trace: delivers events synchronously, in emission order, to one Sink.
//     After every delivery the run is suspended for the configured pacing
//     delay and the cancellation flag is re-checked.
//   - RunHandle: caller-owned cancellation flag plus in-progress flag. A
//     handle accepts one run at a time.
//
// Suspension points
//
//	Emit(ev)            check cancel → deliver → pace
//	Commit(ev, mutate)  check cancel → mutate → deliver → pace
//
// Engines route every mutation through Commit, so once cancellation is
// observed no further mutation happens and no delivered event ever
// describes a mutation that did not take place. Both return ErrAborted when
// the run must stop; engines translate it into StatusAborted.
//
// Determinism
//
//	Pacing is a pure timing parameter. A run replayed with delay 0 produces
//	the identical event sequence, only compressed in time.
//
// Usage
//
//	rec := &trace.Recorder{}
//	h := trace.NewRunHandle()
//	tr := trace.New(
//	    trace.WithSink(rec.Sink()),
//	    trace.WithHandle(h),
//	    trace.WithDelay(200*time.Millisecond),
//	)
//	res, err := sorting.Sort(core.NewArray(values), sorting.Bubble, tr)
//	// from another goroutine: h.Cancel()
package trace
