package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwise/engine"
)

func newMSTCmd(a *app) *cobra.Command {
	var (
		gf         graphFlags
		exhaustive bool
	)
	kinds := []string{engine.KindPrim, engine.KindKruskal}

	cmd := &cobra.Command{
		Use:       "mst <" + strings.Join(kinds, "|") + ">",
		Short:     "Build a minimum spanning forest step by step",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gf.load(a)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), a.cfg.Output)
			return a.supervise(cmd.Context(), func(ctx context.Context, opts ...engine.Option) error {
				if exhaustive {
					opts = append(opts, engine.WithExhaustiveScan())
				}
				out, err := engine.RunMST(ctx, args[0], g, a.engineOptions(p, opts...)...)
				if err != nil {
					return err
				}
				return p.outcome(out, mstTable(strings.ToLower(args[0]), out))
			})
		},
	}
	gf.register(cmd)
	cmd.Flags().BoolVar(&exhaustive, "exhaustive", false, "Kruskal: keep rejecting edges after the tree is complete")

	return cmd
}
