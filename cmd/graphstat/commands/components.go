package commands

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
	"github.com/spf13/cobra"
)

func newComponentsCmd(a *app) *cobra.Command {
	var (
		limit  int
		labels bool
	)

	cmd := &cobra.Command{
		Use:   "components FILE",
		Short: "List connected components, smallest vertex first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must be ≥ 0, got %d", limit)
			}

			var table []uint64
			g, err := core.FromFile(args[0], core.WithLogger(a.logger), core.WithLabels(&table))
			if err != nil {
				return err
			}

			comps := g.ConnectedComponents()
			out := cmd.OutOrStdout()
			heading(out, "COMPONENTS %d", len(comps))

			shown := comps
			if limit > 0 && len(comps) > limit {
				shown = comps[:limit]
			}
			for i, comp := range shown {
				if labels {
					fmt.Fprintf(out, "  #%d size %d %v\n", i, len(comp), relabel(comp, table))
				} else {
					fmt.Fprintf(out, "  #%d size %d %v\n", i, len(comp), comp)
				}
			}
			if rest := len(comps) - len(shown); rest > 0 {
				fmt.Fprintf(out, "  ... %d more\n", rest)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "print at most N components (0 = all)")
	cmd.Flags().BoolVar(&labels, "labels", false, "print original labels instead of compact ids")

	return cmd
}

// relabel maps compact ids back to the labels read from the file.
func relabel(ids []int, table []uint64) []uint64 {
	out := make([]uint64, len(ids))
	for i, id := range ids {
		out[i] = table[id]
	}

	return out
}
