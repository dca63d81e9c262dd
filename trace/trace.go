package trace

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// Trace delivers the events of one run. A Trace is not reusable: create a
// new one per run.
type Trace struct {
	opts    Options
	handle  *RunHandle
	ctx     context.Context
	limiter *rate.Limiter
	logger  *slog.Logger

	name    string
	seq     int
	started time.Time
	begun   bool
}

// New builds a Trace from opts. Nothing runs until Begin.
func New(opts ...Option) *Trace {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	h := o.Handle
	if h == nil {
		h = NewRunHandle()
	}

	return &Trace{opts: o, handle: h, logger: o.Logger}
}

// Handle returns the RunHandle driving this trace.
func (t *Trace) Handle() *RunHandle { return t.handle }

// Delay returns the configured pacing delay.
func (t *Trace) Delay() time.Duration { return t.opts.Delay }

// Begin claims the handle for a run named name. It fails with
// ErrRunInProgress if the handle already drives a run.
func (t *Trace) Begin(name string) error {
	if t.opts.err != nil {
		return t.opts.err
	}
	ctx, err := t.handle.begin(t.opts.Ctx)
	if err != nil {
		return err
	}
	t.ctx = ctx
	t.name = name
	t.seq = 0
	t.started = time.Now()
	t.begun = true
	if t.opts.Delay > 0 {
		// Drain the initial token so the first delivered event is paced too.
		t.limiter = rate.NewLimiter(rate.Every(t.opts.Delay), 1)
		t.limiter.Allow()
	}
	t.logger.Debug("run started", "run", name, "delay", t.opts.Delay)

	return nil
}

// End releases the handle and logs the terminal status.
func (t *Trace) End(status Status) {
	if !t.begun {
		return
	}
	t.begun = false
	t.handle.end()
	t.logger.Debug("run finished",
		"run", t.name,
		"status", string(status),
		"events", t.seq,
		"elapsed", time.Since(t.started),
	)
}

// ShouldCancel reports whether the run must stop.
func (t *Trace) ShouldCancel() bool {
	if t.ctx != nil && t.ctx.Err() != nil {
		return true
	}

	return t.handle.Cancelled() || t.opts.Ctx.Err() != nil
}

// Count returns the number of events delivered so far.
func (t *Trace) Count() int { return t.seq }

// Emit delivers a non-mutating event: check cancel, deliver, pace.
func (t *Trace) Emit(ev Event) error {
	return t.Commit(ev, nil)
}

// Commit performs mutate and delivers ev describing it. If cancellation
// is already requested, neither happens and ErrAborted is returned.
func (t *Trace) Commit(ev Event, mutate func()) error {
	if t.ShouldCancel() {
		return ErrAborted
	}
	if mutate != nil {
		mutate()
	}
	t.deliver(ev)
	if ev.Kind == KindDone {
		return nil
	}

	return t.pace()
}

func (t *Trace) deliver(ev Event) {
	t.seq++
	ev.Seq = t.seq
	if t.opts.Sink != nil {
		t.opts.Sink(ev)
	}
	for _, obs := range t.opts.Observers {
		obs.ObserveEvent(ev)
	}
}

// pace blocks for the pacing delay; cancellation interrupts the wait.
func (t *Trace) pace() error {
	if t.limiter != nil {
		ctx := t.ctx
		if ctx == nil {
			ctx = t.opts.Ctx
		}
		if err := t.limiter.Wait(ctx); err != nil {
			return ErrAborted
		}
	}
	if t.ShouldCancel() {
		return ErrAborted
	}

	return nil
}
