package field_test

import (
	"testing"

	"github.com/katalvlaran/gradviz/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheckGradient_AllRegistered sweeps every registered gradient against
// central differences over the full sampling domain.
func TestCheckGradient_AllRegistered(t *testing.T) {
	opts := field.DefaultCheckOptions()
	for _, spec := range field.Specs() {
		t.Run(string(spec.ID), func(t *testing.T) {
			rep, err := field.CheckGradient(spec, opts)
			require.NoError(t, err)
			assert.Equal(t, opts.Samples*opts.Samples, rep.Samples)
			assert.LessOrEqual(t, rep.MaxErr(), opts.Tolerance)
		})
	}
}

// TestCheckGradient_DetectsWrongGradient feeds a deliberately broken gradient.
func TestCheckGradient_DetectsWrongGradient(t *testing.T) {
	broken := field.MustLookup(field.Saddle)
	broken.Grad = func(x, y float64) (float64, float64) { return 2 * x, 2 * y } // sign error on y

	rep, err := field.CheckGradient(broken, field.DefaultCheckOptions())
	require.ErrorIs(t, err, field.ErrGradientMismatch)
	assert.Contains(t, err.Error(), "saddle")
	assert.InDelta(t, 0.0, rep.MaxErrX, 1e-6)
	assert.InDelta(t, 20.0, rep.MaxErrY, 1e-6, "|2y - (-2y)| peaks at |y|=5")
}

// TestCheckGradient_BadOptions rejects each invalid option.
func TestCheckGradient_BadOptions(t *testing.T) {
	spec := field.MustLookup(field.Paraboloid)
	mutate := map[string]func(*field.CheckOptions){
		"Bounds":    func(o *field.CheckOptions) { o.Min, o.Max = 1, 1 },
		"Samples":   func(o *field.CheckOptions) { o.Samples = 1 },
		"Step":      func(o *field.CheckOptions) { o.Step = 0 },
		"Tolerance": func(o *field.CheckOptions) { o.Tolerance = -1 },
	}
	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			opts := field.DefaultCheckOptions()
			fn(&opts)
			_, err := field.CheckGradient(spec, opts)
			assert.ErrorIs(t, err, field.ErrBadCheckOptions)
		})
	}
}

func TestNumericGradient_Quadratic(t *testing.T) {
	spec := field.MustLookup(field.Paraboloid)
	gx, gy := field.NumericGradient(spec.F, 1.5, -0.5, 1e-4)
	assert.InDelta(t, 3.0, gx, 1e-9)
	assert.InDelta(t, -1.0, gy, 1e-9)
}

func TestNumericGradient_HonoursStep(t *testing.T) {
	// Central differences on x³ and y³ are off by exactly h², so the
	// estimate shows which step was used.
	cube := func(x, y float64) float64 { return x*x*x + 2*y*y*y }
	cases := []struct {
		h      float64
		wx, wy float64
	}{
		{0.1, 3 + 0.01, 6*4 + 2*0.01},
		{0.5, 3 + 0.25, 6*4 + 2*0.25},
	}
	for _, tc := range cases {
		gx, gy := field.NumericGradient(cube, 1, 2, tc.h)
		assert.InDelta(t, tc.wx, gx, 1e-9, "h=%g", tc.h)
		assert.InDelta(t, tc.wy, gy, 1e-9, "h=%g", tc.h)
	}
}
