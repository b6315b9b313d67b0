package frame

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gradviz/field"
	"github.com/katalvlaran/gradviz/grid"
	"github.com/katalvlaran/gradviz/probe"
	"github.com/katalvlaran/gradviz/slice"
)

var (
	// ErrBadHalfWidth indicates a non-positive tangent half-width.
	ErrBadHalfWidth = errors.New("frame: tangent half-width must be > 0")

	// ErrGridCoverage indicates a grid that does not span the point domain,
	// so the marked point and slice anchors could fall off the surface.
	ErrGridCoverage = errors.New("frame: grid must cover the point domain")
)

// Validate checks every input field and joins all violations.
func (in Input) Validate() error {
	var errs []error
	if _, err := field.Lookup(in.Function); err != nil {
		errs = append(errs, err)
	}
	if err := in.Point.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := probe.ValidateArrowScale(in.ArrowScale); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks the tangent half-width and that the grid bounds contain
// [probe.MinCoord, probe.MaxCoord] on both axes. Resolution and bound
// ordering are left to grid.Linspace.
func (o Options) Validate() error {
	if !(o.HalfWidth > 0) {
		return fmt.Errorf("%w: got %g", ErrBadHalfWidth, o.HalfWidth)
	}
	if o.Grid.Min > probe.MinCoord || o.Grid.Max < probe.MaxCoord {
		return fmt.Errorf("%w: [%g, %g] does not contain [%g, %g]",
			ErrGridCoverage, o.Grid.Min, o.Grid.Max, probe.MinCoord, probe.MaxCoord)
	}

	return nil
}

// Compute derives a complete Frame from in.
//
// Implementation:
//   - Stage 1: validate input and options.
//   - Stage 2: look up the spec and sample the grid.
//   - Stage 3: evaluate the probe and its arrow.
//   - Stage 4: sample both slices over the grid axes.
//
// Nothing is cached between calls: equal inputs give equal frames.
//
// Errors:
//   - errors.Join of field.ErrUnknownFunction, probe.ErrOutOfDomain,
//     probe.ErrBadArrowScale for invalid input.
//   - ErrBadHalfWidth, ErrGridCoverage or grid errors for invalid options.
func Compute(in Input, opts Options) (*Frame, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("frame: invalid input: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	spec, err := field.Lookup(in.Function)
	if err != nil {
		return nil, err
	}
	g, err := grid.Sample(spec, opts.Grid)
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}

	pr := probe.Evaluate(spec, in.Point)

	return &Frame{
		Input:  in,
		Label:  spec.Label,
		Grid:   g,
		Probe:  pr,
		Arrow:  pr.Arrow(in.ArrowScale),
		XSlice: slice.Sample(spec, slice.AxisX, g.Xs, pr, opts.HalfWidth),
		YSlice: slice.Sample(spec, slice.AxisY, g.Ys, pr, opts.HalfWidth),
	}, nil
}

// Metrics formats point, value, gradient and its magnitude for the info row.
func (f *Frame) Metrics() Metrics {
	return Metrics{
		Point:     fmt.Sprintf("(%.1f, %.1f)", f.Probe.Point.X, f.Probe.Point.Y),
		Value:     fmt.Sprintf("%.3f", f.Probe.Z),
		Gradient:  fmt.Sprintf("(%.2f, %.2f)", f.Probe.Gradient.X, f.Probe.Gradient.Y),
		Magnitude: fmt.Sprintf("%.3f", f.Probe.Gradient.Norm()),
	}
}
