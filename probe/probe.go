// Package probe evaluates a scalar field and its gradient at a single
// user-selected point, and derives the scaled gradient arrow drawn on the
// contour map.
package probe

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/gradviz/field"
)

// Sentinel errors for probe inputs.
var (
	// ErrOutOfDomain indicates a coordinate outside [MinCoord, MaxCoord] or not finite.
	ErrOutOfDomain = errors.New("probe: point outside domain")
	// ErrBadArrowScale indicates an arrow scale outside [MinArrowScale, MaxArrowScale].
	ErrBadArrowScale = errors.New("probe: arrow scale outside range")
)

// Input domain of the point selector and arrow slider.
const (
	MinCoord  = -4.0
	MaxCoord  = 4.0
	CoordStep = 0.1

	MinArrowScale     = 0.1
	MaxArrowScale     = 1.0
	ArrowScaleStep    = 0.05
	DefaultArrowScale = 0.4
)

// Point is a selected location (X, Y).
type Point struct {
	X, Y float64
}

// Vec is a 2D vector; for a probe it holds (∂f/∂x, ∂f/∂y).
type Vec struct {
	X, Y float64
}

// Norm returns the Euclidean length |v|.
func (v Vec) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Probe is the set of quantities derived at one point.
type Probe struct {
	Function field.ID
	Point    Point
	Z        float64 // f(px, py)
	Gradient Vec     // grad(px, py)
}

// Arrow is the gradient arrow drawn from Tail to Head.
type Arrow struct {
	Tail, Head Point
	Scale      float64
}

// within reports lo <= v <= hi; NaN is never within.
func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// NewPoint validates (x, y) against the domain.
// Errors: ErrOutOfDomain (wrapped with the offending coordinates).
func NewPoint(x, y float64) (Point, error) {
	if !within(x, MinCoord, MaxCoord) || !within(y, MinCoord, MaxCoord) {
		return Point{}, fmt.Errorf("%w: (%g, %g) not in [%g, %g]²", ErrOutOfDomain, x, y, MinCoord, MaxCoord)
	}

	return Point{X: x, Y: y}, nil
}

// Validate reports whether p lies in the domain.
func (p Point) Validate() error {
	_, err := NewPoint(p.X, p.Y)

	return err
}

// ValidateArrowScale checks s against [MinArrowScale, MaxArrowScale].
func ValidateArrowScale(s float64) error {
	if !within(s, MinArrowScale, MaxArrowScale) {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrBadArrowScale, s, MinArrowScale, MaxArrowScale)
	}

	return nil
}

// Snap rounds v to the nearest multiple of step, so raw input lands on the
// same lattice as the UI sliders. Snapping 1.4999 with step 0.1 yields 1.5.
// A non-positive step returns v unchanged.
func Snap[T constraints.Float](v, step T) T {
	if step <= 0 {
		return v
	}
	n := T(math.Round(float64(v / step)))
	// Re-round through the decimal grid to drop n*step representation noise.
	return T(math.Round(float64(n*step)*1e9) / 1e9)
}

// Evaluate computes f and grad at p. The point is assumed to be in domain;
// no bounds check is performed here.
func Evaluate(spec field.Spec, p Point) Probe {
	gx, gy := spec.Grad(p.X, p.Y)

	return Probe{
		Function: spec.ID,
		Point:    p,
		Z:        spec.F(p.X, p.Y),
		Gradient: Vec{X: gx, Y: gy},
	}
}

// Arrow returns the gradient arrow from (px, py) to (px + gx·s, py + gy·s).
func (pr Probe) Arrow(scale float64) Arrow {
	return Arrow{
		Tail:  pr.Point,
		Head:  Point{X: pr.Point.X + pr.Gradient.X*scale, Y: pr.Point.Y + pr.Gradient.Y*scale},
		Scale: scale,
	}
}
