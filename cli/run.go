package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gammapath"
)

func runCmd(a *app) *cobra.Command {
	var j jobFlags

	c := &cobra.Command{
		Use:   "run",
		Short: "Reconstruct decay paths and write one annotated file per path",
		Example: `  gammapath run -i 97rb_b-.ens -d 97SR -n 97Sr -o paths
  gammapath run -c job.yaml --tolerance 0.5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := j.resolve(cmd)
			if err != nil {
				return err
			}

			rep, err := gammapath.Run(cmd.Context(), cfg, a.log)
			if rep != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%d path file(s) written to %s, %d path(s) skipped\n",
					rep.Written, cfg.OutputDir, len(rep.Outcome.Failures))
			}

			return err
		},
	}

	j.bind(c)
	c.Flags().StringVarP(&j.cfg.OutputDir, "out", "o", j.cfg.OutputDir, "output directory")
	c.Flags().BoolVar(&j.cfg.FailOnError, "fail-on-error", false, "exit non-zero if any record or path was skipped")

	return c
}
