package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwise/builder"
	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/internal/graphfile"
)

// graphFlags select the graph a traversal or MST run works on.
type graphFlags struct {
	file   string
	preset string
}

func (f *graphFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.file, "graph", "", "YAML graph document")
	fl.StringVar(&f.preset, "preset", "", "Generated graph: cycle:N, path:N, complete:N or random:N[:density[:seed]]")
	cmd.MarkFlagsMutuallyExclusive("graph", "preset")
}

// load reads the document, expands the preset, or falls back to a random
// connected graph sized by the configuration.
func (f *graphFlags) load(a *app) (*core.Graph, error) {
	if f.file != "" {
		return graphfile.Load(f.file)
	}
	preset := f.preset
	if preset == "" {
		preset = fmt.Sprintf("random:%d", a.cfg.Graph.Nodes)
	}

	return graphfile.Preset(preset,
		graphfile.WithDensity(a.cfg.Graph.Density),
		graphfile.WithSeed(a.cfg.Graph.Seed),
		graphfile.WithMaxWeight(a.cfg.Graph.MaxWeight),
	)
}

// parseValues reads "5,3,8,1" (spaces allowed) into int64 values.
func parseValues(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int64, 0, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d (%q): not an integer", i+1, strings.TrimSpace(p))
		}
		out = append(out, v)
	}

	return out, nil
}

// randomValues draws n values in 1..hi with the given seed.
func randomValues(n int, hi, seed int64) ([]int64, error) {
	return builder.RandomArray(n, hi, seed)
}
