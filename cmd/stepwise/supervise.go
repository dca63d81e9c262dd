package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stepwise/engine"
	"github.com/katalvlaran/stepwise/internal/metrics"
	"github.com/katalvlaran/stepwise/trace"
)

const shutdownTimeout = 2 * time.Second

// supervise runs fn with a RunHandle that Ctrl-C cancels. When metrics are
// enabled, the Prometheus endpoint is served for the duration of the run.
func (a *app) supervise(ctx context.Context, fn func(ctx context.Context, opts ...engine.Option) error) error {
	h := trace.NewRunHandle()
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		select {
		case <-sigCtx.Done():
			a.logger.Info("interrupt received, cancelling run")
			h.Cancel()
		case <-done:
		}
		return nil
	})

	if a.metrics != nil {
		srv := &http.Server{
			Addr:              a.cfg.Metrics.Addr,
			Handler:           metrics.Handler(a.registry),
			ReadHeaderTimeout: shutdownTimeout,
		}
		g.Go(func() error {
			a.logger.Info("serving metrics", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			select {
			case <-done:
			case <-gctx.Done():
			}
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(sctx)
		})
	}

	g.Go(func() error {
		defer close(done)
		return fn(gctx, engine.WithHandle(h))
	})

	return g.Wait()
}
