package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepwise/internal/graphfile"
)

func newGraphCmd(a *app) *cobra.Command {
	var gf graphFlags

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print a graph document, e.g. to save and edit a preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := gf.load(a)
			if err != nil {
				return err
			}
			return graphfile.Encode(cmd.OutOrStdout(), g)
		},
	}
	gf.register(cmd)

	return cmd
}
