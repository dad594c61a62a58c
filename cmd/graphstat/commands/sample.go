package commands

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/builder"
	"github.com/spf13/cobra"
)

// Sampling models.
const (
	modelSparse  = "sparse"
	modelRegular = "regular"
)

func newSampleCmd(a *app) *cobra.Command {
	var (
		n      int
		p      float64
		model  string
		degree int
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample a random graph and print its statistics",
		Long: `sample draws G(n, p) (--model sparse) or a random d-regular graph
(--model regular) from worker 0 of the rng set. Pass --seed to reproduce a run;
the master seed used is always printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ctor builder.Constructor
			switch model {
			case modelSparse:
				ctor = builder.RandomSparse(n, p)
			case modelRegular:
				ctor = builder.RandomRegular(n, degree)
			default:
				return fmt.Errorf("--model must be %s or %s, got %q", modelSparse, modelRegular, model)
			}

			set, err := a.rngSet(1)
			if err != nil {
				return err
			}
			w, err := set.Worker(0)
			if err != nil {
				return err
			}

			g, err := builder.BuildGraph([]builder.BuilderOption{
				builder.WithWorker(w),
				builder.WithLogger(a.logger),
			}, ctor)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading(out, "SAMPLE %s n=%d", model, n)
			field(out, "seed", "%d", set.MasterSeed())
			printStats(out, g)

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&n, "n", 100, "number of vertices")
	f.Float64Var(&p, "p", 0.05, "edge probability (sparse model)")
	f.StringVar(&model, "model", modelSparse, "random model: sparse|regular")
	f.IntVar(&degree, "degree", 3, "vertex degree (regular model)")

	return cmd
}
