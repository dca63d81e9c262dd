package trace

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Sentinel errors for trace execution.
var (
	// ErrAborted is returned by Emit and Commit once cancellation is observed.
	ErrAborted = errors.New("trace: run aborted")

	// ErrRunInProgress is returned by Begin when the handle already drives a run.
	ErrRunInProgress = errors.New("trace: run already in progress")

	// ErrNegativeDelay is returned by Begin when WithDelay received a negative value.
	ErrNegativeDelay = errors.New("trace: negative pacing delay")
)

// Status is the terminal state of a run.
type Status string

const (
	// StatusCompleted means the algorithm reached its natural end.
	StatusCompleted Status = "completed"

	// StatusAborted means the run observed cancellation and stopped early.
	StatusAborted Status = "aborted"
)

// Option configures a Trace.
type Option func(*Options)

// Options holds the collaborators and parameters of a Trace.
type Options struct {
	// Ctx is the parent context; its cancellation aborts the run.
	Ctx context.Context

	// Sink consumes every delivered event. Nil discards events.
	Sink Sink

	// Handle carries cancellation. Nil means a private handle is created.
	Handle *RunHandle

	// Delay is the pacing interval after each delivered event; 0 disables pacing.
	Delay time.Duration

	// Logger receives run lifecycle records at debug level.
	Logger *slog.Logger

	// Observers are notified after the Sink, in registration order.
	Observers []Observer

	err error
}

// DefaultOptions returns Options with a background context, no sink, no
// pacing and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithContext sets the parent context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSink sets the event consumer.
func WithSink(s Sink) Option {
	return func(o *Options) { o.Sink = s }
}

// WithHandle attaches a caller-owned RunHandle.
func WithHandle(h *RunHandle) Option {
	return func(o *Options) {
		if h != nil {
			o.Handle = h
		}
	}
}

// WithDelay sets the pacing delay. A negative delay is reported by Begin.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = ErrNegativeDelay
			return
		}
		o.Delay = d
	}
}

// WithLogger sets the lifecycle logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an additional event observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observers = append(o.Observers, obs)
		}
	}
}

// Outcome maps the error that ended an engine loop to the run status.
// ErrAborted becomes StatusAborted with a nil error; any other error is
// returned unchanged with StatusAborted.
func Outcome(err error) (Status, error) {
	switch {
	case err == nil:
		return StatusCompleted, nil
	case errors.Is(err, ErrAborted):
		return StatusAborted, nil
	default:
		return StatusAborted, err
	}
}
