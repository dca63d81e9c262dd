package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwise/engine"
	"github.com/katalvlaran/stepwise/sorting"
)

func newSortCmd(a *app) *cobra.Command {
	var flags struct {
		random int
		seed   int64
		max    int64
	}
	kinds := make([]string, 0, len(sorting.Kinds()))
	for _, k := range sorting.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:       "sort <" + strings.Join(kinds, "|") + "> [values]",
		Short:     "Sort comma-separated values, or a random array, step by step",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				input []int64
				err   error
			)
			fl := cmd.Flags()
			switch {
			case len(args) == 2:
				if fl.Changed("random") {
					return fmt.Errorf("give either values or --random, not both")
				}
				input, err = parseValues(args[1])
			default:
				n, seed, hi := a.cfg.Array.Size, a.cfg.Array.Seed, a.cfg.Array.Max
				if fl.Changed("random") {
					n = flags.random
				}
				if fl.Changed("seed") {
					seed = flags.seed
				}
				if fl.Changed("max") {
					hi = flags.max
				}
				input, err = randomValues(n, hi, seed)
			}
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), a.cfg.Output)
			return a.supervise(cmd.Context(), func(ctx context.Context, opts ...engine.Option) error {
				out, err := engine.RunSort(ctx, args[0], input, a.engineOptions(p, opts...)...)
				if err != nil {
					return err
				}
				return p.outcome(out, sortTable(strings.ToLower(args[0]), out))
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.random, "random", 0, "Sort N random values (default from config array.size)")
	f.Int64Var(&flags.seed, "seed", 0, "Seed for --random (default from config array.seed)")
	f.Int64Var(&flags.max, "max", 0, "Largest random value (default from config array.max)")

	return cmd
}
