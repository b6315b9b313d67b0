package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gradviz/field"
	"github.com/katalvlaran/gradviz/matrix"
)

// Linspace returns n evenly spaced values over [lo, hi], endpoints included.
// The last element is exactly hi.
//
// Errors:
//   - ErrBadResolution if n < 2.
//   - ErrBadBounds if lo or hi is not finite, or lo >= hi.
//
// Complexity: O(n).
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadResolution, n)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrBadBounds, lo, hi)
	}

	out := floats.Span(make([]float64, n), lo, hi)
	// Span computes the last node as lo + (n-1)·step; pin it to hi.
	out[n-1] = hi

	return out, nil
}

// Mesh expands axis vectors into coordinate matrices of shape len(ys)×len(xs):
// X repeats xs along every row, Y repeats ys along every column.
//
// Errors: matrix.ErrInvalidDimensions for an empty axis.
// Complexity: O(len(xs)·len(ys)).
func Mesh(xs, ys []float64) (X, Y *matrix.Dense, err error) {
	if X, err = matrix.NewDense(len(ys), len(xs)); err != nil {
		return nil, nil, fmt.Errorf("grid: mesh X: %w", err)
	}
	if Y, err = matrix.NewDense(len(ys), len(xs)); err != nil {
		return nil, nil, fmt.Errorf("grid: mesh Y: %w", err)
	}
	if err = X.Fill(func(_, j int) float64 { return xs[j] }); err != nil {
		return nil, nil, fmt.Errorf("grid: mesh X: %w", err)
	}
	if err = Y.Fill(func(i, _ int) float64 { return ys[i] }); err != nil {
		return nil, nil, fmt.Errorf("grid: mesh Y: %w", err)
	}

	return X, Y, nil
}

// Sample builds the mesh described by opts and evaluates spec.F at every node.
//
// Implementation:
//   - Stage 1: Linspace both axes (square domain, same resolution).
//   - Stage 2: Mesh the axes.
//   - Stage 3: Fill Z with f(Xs[j], Ys[i]) in row-major order.
//
// Errors:
//   - ErrBadResolution / ErrBadBounds from Linspace.
//   - matrix.ErrNaNInf if f is not finite at some node.
//   - errors from Validate if the assembled grid is inconsistent.
//
// Complexity: O(N²) evaluations of f.
func Sample(spec field.Spec, opts Options) (*Grid, error) {
	xs, err := Linspace(opts.Min, opts.Max, opts.Resolution)
	if err != nil {
		return nil, err
	}
	ys := make([]float64, len(xs))
	copy(ys, xs)

	X, Y, err := Mesh(xs, ys)
	if err != nil {
		return nil, err
	}
	Z, err := matrix.NewDense(len(ys), len(xs))
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	if err = Z.Fill(func(i, j int) float64 { return spec.F(xs[j], ys[i]) }); err != nil {
		return nil, fmt.Errorf("grid: sample %s: %w", spec.ID, err)
	}

	g := &Grid{Function: spec.ID, Xs: xs, Ys: ys, X: X, Y: Y, Z: Z}
	if err = g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Validate checks that X, Y and Z share one shape and that Xs and Ys match
// its columns and rows.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func (g *Grid) Validate() error {
	if err := matrix.ValidateSameShape(g.X, g.Z); err != nil {
		return fmt.Errorf("grid: X vs Z: %w", err)
	}
	if err := matrix.ValidateSameShape(g.Y, g.Z); err != nil {
		return fmt.Errorf("grid: Y vs Z: %w", err)
	}
	if err := matrix.ValidateVecLen(g.Xs, g.Z.Cols()); err != nil {
		return fmt.Errorf("grid: Xs: %w", err)
	}
	if err := matrix.ValidateVecLen(g.Ys, g.Z.Rows()); err != nil {
		return fmt.Errorf("grid: Ys: %w", err)
	}

	return nil
}

// Shape returns the (rows, cols) shape shared by X, Y and Z.
func (g *Grid) Shape() (rows, cols int) { return g.Z.Shape() }

// ZRange returns the minimum and maximum sampled value, the colour-scale
// bounds for surface and contour plots.
func (g *Grid) ZRange() (lo, hi float64) {
	// Z is a non-nil Dense by construction, so Range cannot fail.
	lo, hi, _ = matrix.Range(g.Z)

	return lo, hi
}

// Rows returns Z as independent row slices (row i is y = Ys[i]).
func (g *Grid) Rows() [][]float64 { return g.Z.ToRows() }
