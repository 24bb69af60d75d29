// Package cli is the cobra command tree of the gammapath binary.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gammapath/logging"
)

// Version is stamped at build time with -ldflags "-X".
var Version = "dev"

// app carries state shared by all commands.
type app struct {
	verbose   bool
	logFormat string
	log       *zap.Logger
}

// Execute runs the command line and exits 1 on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "gammapath",
		Short: "Split an ENSDF decay scheme into one file per gamma decay path",
		Long: `gammapath reads the level and gamma records of a daughter nuclide from an
ENSDF file, follows every gamma cascade down to the ground state, and writes
one copy of the file per cascade with all other records commented out.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := logging.New(logging.Options{Verbose: a.verbose, Format: a.logFormat})
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.log.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every transition at debug level")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "console", "log encoding: console|json")

	cmd.AddCommand(runCmd(a), scanCmd(a), versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gammapath version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write([]byte("gammapath " + Version + "\n"))
			return err
		},
	}
}
