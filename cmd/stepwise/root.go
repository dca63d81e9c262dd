package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwise/engine"
	"github.com/katalvlaran/stepwise/internal/config"
	"github.com/katalvlaran/stepwise/internal/logging"
	"github.com/katalvlaran/stepwise/internal/metrics"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath  string
	delay       time.Duration
	output      string
	logLevel    string
	metricsAddr string
}

// app is the state resolved once per invocation by the root PersistentPreRunE.
type app struct {
	flags    rootFlags
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "stepwise",
		Short: "Replay sorting, traversal and MST algorithms step by step",
		Long: "stepwise runs instrumented algorithm engines and streams every elementary\n" +
			"operation (compare, swap, visit, edge commit, ...) to the terminal.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.Version = version

	f := root.PersistentFlags()
	f.StringVar(&a.flags.configPath, "config", config.FileName, "Path to the YAML configuration file")
	f.DurationVar(&a.flags.delay, "delay", 0, "Pause after every event, e.g. 200ms (overrides config)")
	f.StringVarP(&a.flags.output, "output", "o", "", "Event format: text or json (overrides config)")
	f.StringVar(&a.flags.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	f.StringVar(&a.flags.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address during the run (bare flag: "+metrics.DefaultListen+")")
	f.Lookup("metrics-addr").NoOptDefVal = metrics.DefaultListen

	root.AddCommand(newSortCmd(a))
	root.AddCommand(newTraverseCmd(a))
	root.AddCommand(newMSTCmd(a))
	root.AddCommand(newGraphCmd(a))

	return root
}

// init loads the configuration, applies flag overrides and prepares logging
// and metrics.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("delay") {
		cfg.Delay = config.Duration(a.flags.delay)
	}
	if flags.Changed("output") {
		cfg.Output = a.flags.output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = a.flags.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.Init(level, "text", cmd.ErrOrStderr())
	a.logger = logging.New("cli")
	a.logger.Debug("configuration loaded",
		"path", a.flags.configPath,
		"delay", cfg.DelayDuration(),
		"output", cfg.Output,
		"metrics", cfg.Metrics.Addr,
	)
	a.cfg = cfg

	if cfg.Metrics.Addr != "" {
		a.registry = prometheus.NewRegistry()
		if a.metrics, err = metrics.New(a.registry); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	return nil
}

// engineOptions translates the resolved configuration into engine options.
func (a *app) engineOptions(p *printer, extra ...engine.Option) []engine.Option {
	opts := []engine.Option{
		engine.WithSink(p.event),
		engine.WithDelay(a.cfg.DelayDuration()),
		engine.WithLogger(logging.New("engine")),
	}
	if a.metrics != nil {
		opts = append(opts, engine.WithMetrics(a.metrics))
	}

	return append(opts, extra...)
}
