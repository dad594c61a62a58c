package commands

import (
	"github.com/katalvlaran/simplegraph/core"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print size, density, degree and connectivity figures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			g, err := core.FromFile(path, core.WithLogger(a.logger))
			if err != nil {
				return err
			}
			a.logger.Info("graph loaded", "path", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

			out := cmd.OutOrStdout()
			heading(out, "GRAPH %s", path)
			printStats(out, g)

			return nil
		},
	}
}
