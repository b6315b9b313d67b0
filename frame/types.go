// Package frame runs the full derivation pipeline for one input: registry
// lookup, grid sampling, point evaluation, gradient arrow and both slices.
// A Frame carries everything a presentation layer needs for one redraw.
package frame

import (
	"github.com/katalvlaran/gradviz/field"
	"github.com/katalvlaran/gradviz/grid"
	"github.com/katalvlaran/gradviz/probe"
	"github.com/katalvlaran/gradviz/slice"
)

// Input is the user-controlled state of one redraw.
type Input struct {
	Function   field.ID
	Point      probe.Point
	ArrowScale float64
}

// DefaultInput returns the initial selector state: paraboloid at (1.5, 1.5)
// with arrow scale 0.4.
func DefaultInput() Input {
	return Input{
		Function:   field.Paraboloid,
		Point:      probe.Point{X: 1.5, Y: 1.5},
		ArrowScale: probe.DefaultArrowScale,
	}
}

// Options configures the non-interactive parts of the pipeline.
type Options struct {
	Grid      grid.Options
	HalfWidth float64 // tangent half-width, > 0
}

// DefaultOptions returns the 50×50 [-5,5]² grid and half-width 1.5.
func DefaultOptions() Options {
	return Options{
		Grid:      grid.DefaultOptions(),
		HalfWidth: slice.DefaultHalfWidth,
	}
}

// Frame is the output of one pass. Frames hold no references to previous
// passes; every field is derived from the Input that produced it.
type Frame struct {
	Input  Input
	Label  string
	Grid   *grid.Grid
	Probe  probe.Probe
	Arrow  probe.Arrow
	XSlice slice.Slice
	YSlice slice.Slice
}

// Metrics are the display strings of the info row.
type Metrics struct {
	Point     string `json:"point" yaml:"point"`         // "(1.5, 1.5)"
	Value     string `json:"value" yaml:"value"`         // "4.500"
	Gradient  string `json:"gradient" yaml:"gradient"`   // "(3.00, 3.00)"
	Magnitude string `json:"magnitude" yaml:"magnitude"` // "4.243", |∇f|
}
