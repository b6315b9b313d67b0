// Command gradviz derives surface, contour, gradient and slice data for a
// multivariable scalar function and prints it for an external plotter.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gradviz/internal/config"
	"github.com/katalvlaran/gradviz/internal/logging"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "gradviz",
		Short: "Gradient & steepest-ascent data for scalar fields",
		Long: `gradviz evaluates one of a fixed set of scalar fields f(x,y) over a
50×50 grid, at a selected point, and along the two axis slices through it.

The output (surface, gradient arrow, slices and tangent segments) is printed
as text, JSON or YAML for an external plotting tool.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := logging.New(cfg.Logging.Level, a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			a.logger.Debug("Configuration loaded",
				zap.String("path", a.configPath),
				zap.String("function", cfg.Selection.Function),
				zap.Int("resolution", cfg.Grid.Resolution))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newListCmd(), newEvalCmd(a), newCheckCmd(a))

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
