package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// CheckOptions configures CheckGradient.
//
// Fields:
//   - Min, Max   — lattice bounds on both axes (Min < Max).
//   - Samples    — lattice points per axis (≥ 2); endpoints included.
//   - Step       — central-difference step h (> 0).
//   - Tolerance  — maximum absolute error per component (> 0).
type CheckOptions struct {
	Min, Max  float64
	Samples   int
	Step      float64
	Tolerance float64
}

// DefaultCheckOptions returns a 21×21 lattice over [-5,5]², h=1e-5, tol=1e-6.
func DefaultCheckOptions() CheckOptions {
	return CheckOptions{
		Min:       -5,
		Max:       5,
		Samples:   21,
		Step:      1e-5,
		Tolerance: 1e-6,
	}
}

func (o CheckOptions) validate() error {
	switch {
	case !(o.Min < o.Max), math.IsInf(o.Min, 0), math.IsInf(o.Max, 0):
		return fmt.Errorf("%w: bounds [%g, %g]", ErrBadCheckOptions, o.Min, o.Max)
	case o.Samples < 2:
		return fmt.Errorf("%w: samples %d < 2", ErrBadCheckOptions, o.Samples)
	case !(o.Step > 0):
		return fmt.Errorf("%w: step %g", ErrBadCheckOptions, o.Step)
	case !(o.Tolerance > 0):
		return fmt.Errorf("%w: tolerance %g", ErrBadCheckOptions, o.Tolerance)
	}

	return nil
}

// Report summarizes one gradient sweep.
type Report struct {
	ID      ID
	Samples int     // lattice points visited
	MaxErrX float64 // max |gx − ∂f/∂x (numeric)|
	MaxErrY float64 // max |gy − ∂f/∂y (numeric)|
	WorstX  float64 // coordinates of the largest single-component error
	WorstY  float64
}

// MaxErr returns the larger of the two component errors.
func (r Report) MaxErr() float64 { return math.Max(r.MaxErrX, r.MaxErrY) }

// NumericGradient estimates (∂f/∂x, ∂f/∂y) at (x, y) with the fd.Central
// stencil and step h:
//
//	∂f/∂x ≈ (f(x+h, y) − f(x−h, y)) / 2h
//
// Truncation error is O(h²).
func NumericGradient(f ScalarFunc, x, y, h float64) (gx, gy float64) {
	g := fd.Gradient(make([]float64, 2),
		func(p []float64) float64 { return f(p[0], p[1]) },
		[]float64{x, y},
		&fd.Settings{Formula: fd.Central, Step: h})

	return g[0], g[1]
}

// CheckGradient compares spec.Grad against NumericGradient on a uniform
// Samples×Samples lattice.
//
// Returns the full Report even on mismatch so callers can print it.
// Errors:
//   - ErrBadCheckOptions for invalid opts.
//   - ErrGradientMismatch, wrapped with id and worst coordinates, when
//     Report.MaxErr() exceeds opts.Tolerance.
//
// Complexity: O(Samples²) evaluations of f and Grad.
func CheckGradient(spec Spec, opts CheckOptions) (Report, error) {
	rep := Report{ID: spec.ID}
	if err := opts.validate(); err != nil {
		return rep, err
	}

	step := (opts.Max - opts.Min) / float64(opts.Samples-1)
	worst := -1.0
	var i, j int
	for i = 0; i < opts.Samples; i++ {
		y := opts.Min + float64(i)*step
		for j = 0; j < opts.Samples; j++ {
			x := opts.Min + float64(j)*step
			gx, gy := spec.Grad(x, y)
			nx, ny := NumericGradient(spec.F, x, y, opts.Step)
			ex, ey := math.Abs(gx-nx), math.Abs(gy-ny)

			rep.MaxErrX = math.Max(rep.MaxErrX, ex)
			rep.MaxErrY = math.Max(rep.MaxErrY, ey)
			if e := math.Max(ex, ey); e > worst {
				worst = e
				rep.WorstX, rep.WorstY = x, y
			}
			rep.Samples++
		}
	}

	if rep.MaxErr() > opts.Tolerance {
		return rep, fmt.Errorf("%s at (%g, %g): error %.3g > %.3g: %w",
			spec.ID, rep.WorstX, rep.WorstY, rep.MaxErr(), opts.Tolerance, ErrGradientMismatch)
	}

	return rep, nil
}
