// Package grid defines the sampling mesh, options and sentinel errors for
// evaluating a scalar field over a rectangular domain.
package grid

import (
	"errors"

	"github.com/katalvlaran/gradviz/field"
	"github.com/katalvlaran/gradviz/matrix"
)

// Sentinel errors for grid operations.
var (
	// ErrBadResolution indicates fewer than two samples per axis.
	ErrBadResolution = errors.New("grid: resolution must be at least 2")
	// ErrBadBounds indicates non-finite or empty axis bounds (lo >= hi).
	ErrBadBounds = errors.New("grid: bounds must be finite with lo < hi")
)

const (
	// DefaultMin is the lower bound of both axes.
	DefaultMin = -5.0
	// DefaultMax is the upper bound of both axes.
	DefaultMax = 5.0
	// DefaultResolution is the number of samples per axis.
	DefaultResolution = 50
)

// Options contains tunable parameters for grid sampling.
type Options struct {
	// Min and Max bound both axes (inclusive).
	Min, Max float64
	// Resolution is the number of samples per axis.
	Resolution int
}

// DefaultOptions returns Options for a 50×50 mesh over [-5,5]².
func DefaultOptions() Options {
	return Options{
		Min:        DefaultMin,
		Max:        DefaultMax,
		Resolution: DefaultResolution,
	}
}

// Grid is a sampled scalar field. It is immutable once built.
//
// Xs and Ys are the axis vectors; X, Y and Z are Resolution×Resolution
// meshes with rows along y and columns along x:
//
//	X[i][j] = Xs[j], Y[i][j] = Ys[i], Z[i][j] = f(Xs[j], Ys[i]).
type Grid struct {
	Function field.ID
	Xs, Ys   []float64
	X, Y, Z  *matrix.Dense
}
