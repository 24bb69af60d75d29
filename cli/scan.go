package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gammapath"
	"github.com/katalvlaran/gammapath/decay"
	"github.com/katalvlaran/gammapath/pathfile"
)

func scanCmd(a *app) *cobra.Command {
	var j jobFlags

	c := &cobra.Command{
		Use:   "scan",
		Short: "Print levels, gammas, paths, failures and cycles without writing files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := j.resolve(cmd)
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			dopts, err := cfg.DecayOptions()
			if err != nil {
				return err
			}

			lines, err := gammapath.ReadLines(cfg.Input)
			if err != nil {
				return err
			}
			out, err := gammapath.FindPaths(lines, cfg.Daughter, cfg.Tolerance,
				append(dopts, decay.WithContext(cmd.Context()))...)
			if err != nil {
				return err
			}
			_, cycles, err := decay.DetectCycles(out.Scheme, dopts...)
			if err != nil {
				return err
			}
			a.log.Debug("scan complete",
				zap.Int("paths", len(out.Paths)),
				zap.Int("failures", len(out.Failures)),
				zap.Int("cycles", len(cycles)),
			)

			return printScan(cmd.OutOrStdout(), cfg.OutputNuclide(), out, cycles)
		},
	}
	j.bind(c)

	return c
}

// printScan renders a scan report as aligned columns.
func printScan(w io.Writer, nuclide string, out *gammapath.Outcome, cycles [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "LEVELS\t%d\n", len(out.Levels))
	for _, l := range out.Scheme.Levels() {
		var gs []string
		for _, g := range out.Scheme.GammasFrom(l.Index) {
			gs = append(gs, g.Energy.Text)
		}
		fmt.Fprintf(tw, "  %s\t%s\n", l.Energy.Text, strings.Join(gs, " "))
	}

	fmt.Fprintf(tw, "PATHS\t%d\n", len(out.Paths))
	names := pathfile.Filenames(nuclide, out.Paths)
	for i, p := range out.Paths {
		fmt.Fprintf(tw, "  %s\t%s\n", names[i], p)
	}

	fmt.Fprintf(tw, "FAILURES\t%d\n", len(out.Failures))
	for _, f := range out.Failures {
		fmt.Fprintf(tw, "  %s/%s\t%v\n", f.Start.Energy.Text, f.Anchor.Energy.Text, f.Err)
	}
	for _, sk := range out.Extraction.Skipped {
		fmt.Fprintf(tw, "  line %d\t%v\n", sk.Line+1, sk.Err)
	}

	fmt.Fprintf(tw, "CYCLES\t%d\n", len(cycles))
	for _, cy := range cycles {
		fmt.Fprintf(tw, "  %s\t\n", strings.Join(cy, " -> "))
	}

	return tw.Flush()
}
