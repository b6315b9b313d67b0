package slice_test

import (
	"testing"

	"github.com/katalvlaran/gradviz/field"
	"github.com/katalvlaran/gradviz/grid"
	"github.com/katalvlaran/gradviz/probe"
	"github.com/katalvlaran/gradviz/slice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func axis(t *testing.T) []float64 {
	t.Helper()
	xs, err := grid.Linspace(grid.DefaultMin, grid.DefaultMax, grid.DefaultResolution)
	require.NoError(t, err)

	return xs
}

// TestSample_Values checks both restrictions against direct evaluation.
func TestSample_Values(t *testing.T) {
	spec := field.MustLookup(field.Wave)
	pr := probe.Evaluate(spec, probe.Point{X: 1.2, Y: -0.4})
	coords := axis(t)

	xs := slice.Sample(spec, slice.AxisX, coords, pr, slice.DefaultHalfWidth)
	ys := slice.Sample(spec, slice.AxisY, coords, pr, slice.DefaultHalfWidth)

	require.Len(t, xs.Values, len(coords))
	require.Len(t, ys.Values, len(coords))
	for i, c := range coords {
		assert.Equal(t, spec.F(c, -0.4), xs.Values[i])
		assert.Equal(t, spec.F(1.2, c), ys.Values[i])
	}
	assert.Equal(t, -0.4, xs.Fixed)
	assert.Equal(t, 1.2, ys.Fixed)
	assert.Equal(t, pr.Gradient.X, xs.Slope)
	assert.Equal(t, pr.Gradient.Y, ys.Slope)
}

// TestSample_TangentThroughPoint verifies each segment passes through (p, pz) exactly.
func TestSample_TangentThroughPoint(t *testing.T) {
	coords := axis(t)
	p := probe.Point{X: 1.5, Y: 1.5}
	for _, spec := range field.Specs() {
		t.Run(string(spec.ID), func(t *testing.T) {
			pr := probe.Evaluate(spec, p)
			for _, ax := range []slice.Axis{slice.AxisX, slice.AxisY} {
				s := slice.Sample(spec, ax, coords, pr, slice.DefaultHalfWidth)
				tan := s.Tangent

				assert.Equal(t, pr.Z, tan.At(tan.T0), "%s: tangent at anchor", ax)
				assert.Equal(t, 1.5, tan.T0)
				assert.InDelta(t, tan.T0-1.5, tan.From.T, 1e-12)
				assert.InDelta(t, tan.T0+1.5, tan.To.T, 1e-12)
				// Midpoint of the two endpoints is the anchor.
				assert.InDelta(t, pr.Z, (tan.From.Z+tan.To.Z)/2, 1e-12)
				assert.InDelta(t, tan.From.Z, tan.At(tan.From.T), 1e-12)
				assert.InDelta(t, tan.To.Z, tan.At(tan.To.T), 1e-12)
			}
		})
	}
}

// TestSample_ParaboloidEndpoints pins the endpoints for a known case.
func TestSample_ParaboloidEndpoints(t *testing.T) {
	spec := field.MustLookup(field.Paraboloid)
	pr := probe.Evaluate(spec, probe.Point{X: 1.5, Y: 1.5}) // z=4.5, grad=(3,3)

	s := slice.Sample(spec, slice.AxisX, axis(t), pr, slice.DefaultHalfWidth)
	assert.Equal(t, slice.Endpoint{T: 0, Z: 0}, s.Tangent.From)
	assert.Equal(t, slice.Endpoint{T: 3, Z: 9}, s.Tangent.To)
	assert.Equal(t, "X-Slice (y=1.5), Slope=3.00", s.Title())
}

// TestSample_CopiesCoords ensures the slice does not alias its input.
func TestSample_CopiesCoords(t *testing.T) {
	spec := field.MustLookup(field.Saddle)
	coords := []float64{-1, 0, 1}
	s := slice.Sample(spec, slice.AxisY, coords, probe.Evaluate(spec, probe.Point{X: 0.5, Y: 1}), 1)

	coords[0] = 99
	assert.Equal(t, -1.0, s.Coords[0])
	assert.Equal(t, "Y-Slice (x=0.5), Slope=-2.00", s.Title())
}
