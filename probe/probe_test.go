package probe_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gradviz/field"
	"github.com/katalvlaran/gradviz/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		ok   bool
	}{
		{"Origin", 0, 0, true},
		{"Corner", -4, 4, true},
		{"XTooLarge", 4.1, 0, false},
		{"YTooSmall", 0, -4.05, false},
		{"NaN", math.NaN(), 0, false},
		{"Inf", 0, math.Inf(1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := probe.NewPoint(tc.x, tc.y)
			if !tc.ok {
				assert.ErrorIs(t, err, probe.ErrOutOfDomain)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, probe.Point{X: tc.x, Y: tc.y}, p)
			assert.NoError(t, p.Validate())
		})
	}
}

func TestValidateArrowScale(t *testing.T) {
	assert.NoError(t, probe.ValidateArrowScale(probe.MinArrowScale))
	assert.NoError(t, probe.ValidateArrowScale(probe.DefaultArrowScale))
	assert.NoError(t, probe.ValidateArrowScale(probe.MaxArrowScale))
	assert.ErrorIs(t, probe.ValidateArrowScale(0.05), probe.ErrBadArrowScale)
	assert.ErrorIs(t, probe.ValidateArrowScale(1.5), probe.ErrBadArrowScale)
	assert.ErrorIs(t, probe.ValidateArrowScale(math.NaN()), probe.ErrBadArrowScale)
}

func TestSnap(t *testing.T) {
	assert.Equal(t, 1.5, probe.Snap(1.4999, probe.CoordStep))
	assert.Equal(t, -0.3, probe.Snap(-0.26, probe.CoordStep))
	assert.Equal(t, 0.45, probe.Snap(0.46, probe.ArrowScaleStep))
	assert.Equal(t, 0.7, probe.Snap(0.7, 0.0), "non-positive step is identity")
	assert.Equal(t, float32(2.5), probe.Snap(float32(2.52), float32(0.1)))
}

// TestEvaluate_KnownPoints covers the hand-checked values.
func TestEvaluate_KnownPoints(t *testing.T) {
	pr := probe.Evaluate(field.MustLookup(field.Paraboloid), probe.Point{})
	assert.Equal(t, 0.0, pr.Z)
	assert.Equal(t, probe.Vec{}, pr.Gradient)
	assert.Equal(t, field.Paraboloid, pr.Function)

	pr = probe.Evaluate(field.MustLookup(field.Saddle), probe.Point{X: 1, Y: 1})
	assert.Equal(t, 0.0, pr.Z)
	assert.Equal(t, probe.Vec{X: 2, Y: -2}, pr.Gradient)
	assert.InDelta(t, 2*math.Sqrt2, pr.Gradient.Norm(), 1e-12)
}

func TestArrow(t *testing.T) {
	pr := probe.Evaluate(field.MustLookup(field.Paraboloid), probe.Point{X: 1.5, Y: -1})
	a := pr.Arrow(0.5)

	assert.Equal(t, probe.Point{X: 1.5, Y: -1}, a.Tail)
	assert.InDelta(t, 3.0, a.Head.X, 1e-12)  // 1.5 + 3·0.5
	assert.InDelta(t, -2.0, a.Head.Y, 1e-12) // -1 + (-2)·0.5
	assert.Equal(t, 0.5, a.Scale)
}

// TestEvaluate_Idempotent checks repeated evaluation yields identical output.
func TestEvaluate_Idempotent(t *testing.T) {
	p := probe.Point{X: -2.3, Y: 0.7}
	for _, spec := range field.Specs() {
		assert.Equal(t, probe.Evaluate(spec, p), probe.Evaluate(spec, p), string(spec.ID))
	}
}
