package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/stepwise/internal/metrics"
	"github.com/katalvlaran/stepwise/trace"
)

// ErrUnknownKind is returned for an algorithm name outside the family.
var ErrUnknownKind = errors.New("engine: unknown algorithm")

// Family groups algorithms sharing a result shape.
type Family string

// Engine families.
const (
	FamilySort     Family = "sort"
	FamilyTraverse Family = "traverse"
	FamilyMST      Family = "mst"
)

// Options holds the collaborators of a run.
type Options struct {
	// Sink receives every event; nil discards them.
	Sink trace.Sink

	// Handle carries cancellation; nil means a private handle.
	Handle *trace.RunHandle

	// Delay paces the run after every event.
	Delay time.Duration

	// Logger receives run outcomes at info level and trace lifecycle at debug.
	Logger *slog.Logger

	// Metrics, if set, counts events and runs.
	Metrics *metrics.Metrics

	// ExhaustiveScan lets Kruskal reject every remaining edge after the tree is complete.
	ExhaustiveScan bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger and nothing else.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler)}
}

// WithSink sets the event consumer.
func WithSink(s trace.Sink) Option {
	return func(o *Options) { o.Sink = s }
}

// WithHandle attaches a caller-owned RunHandle.
func WithHandle(h *trace.RunHandle) Option {
	return func(o *Options) { o.Handle = h }
}

// WithDelay sets the pacing delay. Negative delays make the run fail with
// trace.ErrNegativeDelay.
func WithDelay(d time.Duration) Option {
	return func(o *Options) { o.Delay = d }
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics enables Prometheus accounting.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithExhaustiveScan keeps Kruskal scanning after |V|-1 commits.
func WithExhaustiveScan() Option {
	return func(o *Options) { o.ExhaustiveScan = true }
}
