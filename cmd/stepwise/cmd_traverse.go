package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwise/engine"
)

func newTraverseCmd(a *app) *cobra.Command {
	var (
		gf    graphFlags
		start string
	)
	kinds := []string{engine.KindBFS, engine.KindDFS, engine.KindDijkstra}

	cmd := &cobra.Command{
		Use:       "traverse <" + strings.Join(kinds, "|") + ">",
		Short:     "Walk a graph from a start vertex step by step",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gf.load(a)
			if err != nil {
				return err
			}
			from := start
			if from == "" && g.VertexCount() > 0 {
				from = g.Vertices()[0]
			}

			p := newPrinter(cmd.OutOrStdout(), a.cfg.Output)
			return a.supervise(cmd.Context(), func(ctx context.Context, opts ...engine.Option) error {
				out, err := engine.RunTraversal(ctx, args[0], g, from, a.engineOptions(p, opts...)...)
				if err != nil {
					return err
				}
				return p.outcome(out, traversalTable(strings.ToLower(args[0]), out))
			})
		},
	}
	gf.register(cmd)
	cmd.Flags().StringVar(&start, "start", "", "Start vertex (default: first vertex of the graph)")

	return cmd
}
