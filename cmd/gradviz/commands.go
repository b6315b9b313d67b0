package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gradviz/field"
	"github.com/katalvlaran/gradviz/frame"
	"github.com/katalvlaran/gradviz/internal/config"
	"github.com/katalvlaran/gradviz/slice"
)

// newListCmd prints the registered functions.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range field.Specs() {
				fmt.Fprintf(w, "%s\t%s\n", s.ID, s.Label)
			}

			return w.Flush()
		},
	}
}

// newEvalCmd computes one frame and prints it.
func newEvalCmd(a *app) *cobra.Command {
	var (
		function string
		x, y     float64
		scale    float64
		format   string
		saveTo   string
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Compute the frame for a function and point",
		Long: `Computes the surface grid, the value and gradient at (x, y), the scaled
gradient arrow and both axis slices with their tangent segments.

Flags override the config file and GRADVIZ_* environment variables.
Coordinates snap to 0.1 and the arrow scale to 0.05. --save-config writes
the effective settings back as YAML for later --config runs.

Example:
  gradviz eval --func saddle --x 1 --y 1 --format json
  gradviz eval --func wave --save-config ~/.config/gradviz.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("func") {
				a.cfg.Selection.Function = function
			}
			if flags.Changed("x") {
				a.cfg.Selection.X = x
			}
			if flags.Changed("y") {
				a.cfg.Selection.Y = y
			}
			if flags.Changed("scale") {
				a.cfg.Selection.ArrowScale = scale
			}
			if flags.Changed("format") {
				a.cfg.Output.Format = format
			}

			in, err := a.cfg.Input()
			if err != nil {
				return err
			}
			// Validate after snapping so 4.04 → 4.0 is accepted like the slider would.
			a.cfg.Selection.X, a.cfg.Selection.Y, a.cfg.Selection.ArrowScale = in.Point.X, in.Point.Y, in.ArrowScale
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			f, err := frame.Compute(in, a.cfg.FrameOptions())
			if err != nil {
				return err
			}
			a.logger.Debug("Frame computed",
				zap.String("function", string(in.Function)),
				zap.Float64("x", in.Point.X),
				zap.Float64("y", in.Point.Y),
				zap.Float64("z", f.Probe.Z))

			if saveTo != "" {
				if err := a.cfg.Save(saveTo); err != nil {
					return err
				}
				a.logger.Info("Configuration saved", zap.String("path", saveTo))
			}

			return writeFrame(cmd.OutOrStdout(), a.cfg.Output.Format, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&function, "func", "f", "", "function id (paraboloid, saddle, wave, gaussian)")
	flags.Float64Var(&x, "x", 0, "x coordinate in [-4, 4]")
	flags.Float64Var(&y, "y", 0, "y coordinate in [-4, 4]")
	flags.Float64VarP(&scale, "scale", "s", 0, "gradient arrow scale in [0.1, 1.0]")
	flags.StringVarP(&format, "format", "o", "", "output format: text, json or yaml")
	flags.StringVar(&saveTo, "save-config", "", "write the effective configuration to this YAML file")

	return cmd
}

// writeFrame encodes f in the requested format.
func writeFrame(w io.Writer, format string, f *frame.Frame) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f.Export())
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f.Export()); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, f)
	}
}

// writeText prints the info row with |∇f|, arrow, slices and colour-scale range.
func writeText(w io.Writer, f *frame.Frame) error {
	m := f.Metrics()
	zmin, zmax := f.Grid.ZRange()
	rows, cols := f.Grid.Shape()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Function\t%s\n", f.Label)
	fmt.Fprintf(tw, "Current Point\t%s\n", m.Point)
	fmt.Fprintf(tw, "Function Value\t%s\n", m.Value)
	fmt.Fprintf(tw, "Gradient\t%s\n", m.Gradient)
	fmt.Fprintf(tw, "Gradient Magnitude\t%s\n", m.Magnitude)
	fmt.Fprintf(tw, "Arrow\t(%.2f, %.2f) -> (%.2f, %.2f)\n",
		f.Arrow.Tail.X, f.Arrow.Tail.Y, f.Arrow.Head.X, f.Arrow.Head.Y)
	fmt.Fprintf(tw, "Grid\t%d×%d, z in [%.3f, %.3f]\n", rows, cols, zmin, zmax)
	for _, s := range []slice.Slice{f.XSlice, f.YSlice} {
		fmt.Fprintf(tw, "%s\ttangent (%.2f, %.2f) -> (%.2f, %.2f)\n", s.Title(),
			s.Tangent.From.T, s.Tangent.From.Z, s.Tangent.To.T, s.Tangent.To.Z)
	}

	return tw.Flush()
}

// newCheckCmd verifies every hand-coded gradient against finite differences.
func newCheckCmd(a *app) *cobra.Command {
	opts := field.DefaultCheckOptions()

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify each gradient against central finite differences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FUNCTION\tSAMPLES\tMAX ERR X\tMAX ERR Y\tSTATUS")

			var errs []error
			for _, spec := range field.Specs() {
				rep, err := field.CheckGradient(spec, opts)
				status := "ok"
				if err != nil {
					if !errors.Is(err, field.ErrGradientMismatch) {
						return err
					}
					status = "MISMATCH"
					errs = append(errs, err)
					a.logger.Warn("Gradient mismatch", zap.String("function", string(spec.ID)), zap.Error(err))
				}
				fmt.Fprintf(tw, "%s\t%d\t%.3g\t%.3g\t%s\n", spec.ID, rep.Samples, rep.MaxErrX, rep.MaxErrY, status)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			return errors.Join(errs...)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.Tolerance, "tol", opts.Tolerance, "maximum absolute error per component")
	flags.IntVar(&opts.Samples, "samples", opts.Samples, "lattice points per axis")
	flags.Float64Var(&opts.Step, "step", opts.Step, "central-difference step h")

	return cmd
}
