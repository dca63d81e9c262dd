// Package metrics exports run and event counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/stepwise/trace"
)

// DefaultListen is the address the CLI serves on when --metrics-addr is
// given without a value.
const DefaultListen = "127.0.0.1:9233"

// Metrics holds the stepwise collectors. It implements trace.Observer so a
// single value can be attached to every run.
type Metrics struct {
	eventsTotal *prometheus.CounterVec   // delivered events by kind
	runsTotal   *prometheus.CounterVec   // finished runs by family, algorithm and status
	runSeconds  *prometheus.HistogramVec // wall time of finished runs by family
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		eventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepwise_events_total",
				Help: "Number of trace events delivered.",
			},
			// kind: compare, swap, visit, mst-add, ...
			[]string{"kind"},
		),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepwise_runs_total",
				Help: "Number of finished runs.",
			},
			// family: sort, traverse, mst
			// algorithm: bubble, bfs, prim, ...
			// status: completed or aborted
			[]string{"family", "algorithm", "status"},
		),
		runSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stepwise_run_seconds",
				Help:    "Wall time of finished runs, pacing included.",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"family"},
		),
	}
	for _, c := range []prometheus.Collector{m.eventsTotal, m.runsTotal, m.runSeconds} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveEvent counts ev by kind.
func (m *Metrics) ObserveEvent(ev trace.Event) {
	m.eventsTotal.WithLabelValues(string(ev.Kind)).Inc()
}

// RunFinished records the outcome and duration of a run.
func (m *Metrics) RunFinished(family, algorithm string, status trace.Status, elapsed time.Duration) {
	m.runsTotal.WithLabelValues(family, algorithm, string(status)).Inc()
	m.runSeconds.WithLabelValues(family).Observe(elapsed.Seconds())
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
