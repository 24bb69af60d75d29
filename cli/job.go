package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gammapath/config"
)

// jobFlags binds the flags shared by run and scan.
type jobFlags struct {
	configPath string
	cfg        config.Config
}

func (j *jobFlags) bind(c *cobra.Command) {
	j.cfg = config.Default()
	f := c.Flags()
	f.StringVarP(&j.configPath, "config", "c", "", "YAML job file; flags override its values")
	f.StringVarP(&j.cfg.Input, "input", "i", "", "ENSDF input file")
	f.StringVarP(&j.cfg.Daughter, "daughter", "d", "", "daughter record identifier, e.g. 97SR")
	f.StringVarP(&j.cfg.Nuclide, "nuclide", "n", "", "output filename prefix, e.g. 97Sr (defaults to --daughter)")
	f.Float64VarP(&j.cfg.Tolerance, "tolerance", "e", j.cfg.Tolerance, "energy tolerance ε for successor matching")
	f.StringVar(&j.cfg.TieBreak, "tie-break", j.cfg.TieBreak, "level choice inside ε: closest|first")
	f.IntVar(&j.cfg.MaxSteps, "max-steps", 0, "transition cap per path (0 = number of levels)")
	f.IntVar(&j.cfg.Workers, "workers", j.cfg.Workers, "concurrent path walks and file writes")
	f.BoolVar(&j.cfg.Strict, "strict", false, "fail on the first malformed record")
}

// resolve loads the job file, if any, and overlays explicitly set flags.
func (j *jobFlags) resolve(c *cobra.Command) (config.Config, error) {
	if j.configPath == "" {
		return j.cfg, nil
	}
	file, err := config.Load(j.configPath)
	if err != nil {
		return config.Config{}, err
	}

	f := c.Flags()
	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}
	set("input", func() { file.Input = j.cfg.Input })
	set("daughter", func() { file.Daughter = j.cfg.Daughter })
	set("nuclide", func() { file.Nuclide = j.cfg.Nuclide })
	set("tolerance", func() { file.Tolerance = j.cfg.Tolerance })
	set("tie-break", func() { file.TieBreak = j.cfg.TieBreak })
	set("max-steps", func() { file.MaxSteps = j.cfg.MaxSteps })
	set("workers", func() { file.Workers = j.cfg.Workers })
	set("strict", func() { file.Strict = j.cfg.Strict })
	set("out", func() { file.OutputDir = j.cfg.OutputDir })
	set("fail-on-error", func() { file.FailOnError = j.cfg.FailOnError })

	return file, nil
}
