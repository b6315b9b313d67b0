// Package slice samples the 1D restrictions of a scalar field along the
// two axis-aligned lines through a probe point, each with the tangent
// segment whose slope is the matching gradient component.
package slice

import (
	"fmt"

	"github.com/katalvlaran/gradviz/field"
	"github.com/katalvlaran/gradviz/probe"
)

// DefaultHalfWidth is the distance from the point to each tangent endpoint.
const DefaultHalfWidth = 1.5

// Axis selects the varying coordinate of a slice.
type Axis int

const (
	// AxisX varies x with y fixed at py: z = f(x, py), slope gx.
	AxisX Axis = iota
	// AxisY varies y with x fixed at px: z = f(px, y), slope gy.
	AxisY
)

// String returns "X" or "Y".
func (a Axis) String() string {
	if a == AxisY {
		return "Y"
	}

	return "X"
}

// Endpoint is a (coordinate, value) pair in slice space.
type Endpoint struct {
	T, Z float64
}

// Segment is the tangent line y = Z0 + Slope·(t − T0) restricted to [From.T, To.T].
type Segment struct {
	From, To Endpoint
	T0, Z0   float64
	Slope    float64
}

// At evaluates the tangent line at t.
func (s Segment) At(t float64) float64 { return s.Z0 + s.Slope*(t-s.T0) }

// Slice is one axis restriction of the field plus its tangent.
type Slice struct {
	Axis    Axis
	Fixed   float64   // the held coordinate (py for AxisX, px for AxisY)
	Coords  []float64 // the varying coordinate samples
	Values  []float64 // f along the line, len == len(Coords)
	Slope   float64
	Tangent Segment
}

// Sample restricts spec.F to the line through pr.Point along axis and
// builds the tangent segment of half-width h anchored at (p, pz).
//
// Implementation:
//   - Stage 1: pick the anchor, fixed coordinate and slope for the axis.
//   - Stage 2: evaluate f over coords with the other coordinate held.
//   - Stage 3: endpoints (p−h, pz−slope·h), (p+h, pz+slope·h).
//
// Complexity: O(len(coords)).
func Sample(spec field.Spec, axis Axis, coords []float64, pr probe.Probe, h float64) Slice {
	anchor, fixed, slope := pr.Point.X, pr.Point.Y, pr.Gradient.X
	eval := func(t float64) float64 { return spec.F(t, fixed) }
	if axis == AxisY {
		anchor, fixed, slope = pr.Point.Y, pr.Point.X, pr.Gradient.Y
		eval = func(t float64) float64 { return spec.F(fixed, t) }
	}

	ts := make([]float64, len(coords))
	copy(ts, coords)
	values := make([]float64, len(ts))
	for i, t := range ts {
		values[i] = eval(t)
	}

	return Slice{
		Axis:   axis,
		Fixed:  fixed,
		Coords: ts,
		Values: values,
		Slope:  slope,
		Tangent: Segment{
			From:  Endpoint{T: anchor - h, Z: pr.Z - slope*h},
			To:    Endpoint{T: anchor + h, Z: pr.Z + slope*h},
			T0:    anchor,
			Z0:    pr.Z,
			Slope: slope,
		},
	}
}

// Title captions the slice the way the slice charts do, e.g.
// "X-Slice (y=1.5), Slope=3.00".
func (s Slice) Title() string {
	held := "y"
	if s.Axis == AxisY {
		held = "x"
	}

	return fmt.Sprintf("%s-Slice (%s=%.1f), Slope=%.2f", s.Axis, held, s.Fixed, s.Slope)
}
