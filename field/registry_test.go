package field_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gradviz/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestLookup_KnownValues pins the closed forms at hand-checked points.
func TestLookup_KnownValues(t *testing.T) {
	cases := []struct {
		id        field.ID
		x, y      float64
		z, gx, gy float64
	}{
		{field.Paraboloid, 0, 0, 0, 0, 0},
		{field.Paraboloid, 1.5, -2, 6.25, 3, -4},
		{field.Saddle, 1, 1, 0, 2, -2},
		{field.Saddle, 2, 1, 3, 4, -2},
		{field.Wave, 0, 0, 1, 1, 0},
		{field.Wave, math.Pi / 2, math.Pi / 2, 1, 0, -1},
		{field.Gaussian, 0, 0, 1, 0, 0},
		{field.Gaussian, 2, 0, math.Exp(-1), -math.Exp(-1), 0},
	}
	for _, tc := range cases {
		t.Run(string(tc.id), func(t *testing.T) {
			spec, err := field.Lookup(tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.id, spec.ID)

			assert.InDelta(t, tc.z, spec.F(tc.x, tc.y), eps, "f(%g,%g)", tc.x, tc.y)
			gx, gy := spec.Grad(tc.x, tc.y)
			assert.InDelta(t, tc.gx, gx, eps, "gx(%g,%g)", tc.x, tc.y)
			assert.InDelta(t, tc.gy, gy, eps, "gy(%g,%g)", tc.x, tc.y)
		})
	}
}

// TestLookup_Unknown verifies identifiers outside the set are rejected.
func TestLookup_Unknown(t *testing.T) {
	_, err := field.Lookup("rosenbrock")
	assert.ErrorIs(t, err, field.ErrUnknownFunction)

	assert.Panics(t, func() { field.MustLookup("rosenbrock") })
	assert.NotPanics(t, func() { field.MustLookup(field.Wave) })
}

// TestIDs_DisplayOrder checks order and that callers get a copy.
func TestIDs_DisplayOrder(t *testing.T) {
	ids := field.IDs()
	require.Equal(t, []field.ID{field.Paraboloid, field.Saddle, field.Wave, field.Gaussian}, ids)

	ids[0] = "mutated"
	assert.Equal(t, field.Paraboloid, field.IDs()[0])
	assert.Len(t, field.Specs(), 4)
}

// TestParseID accepts ids and labels regardless of case and padding.
func TestParseID(t *testing.T) {
	cases := []struct {
		in   string
		want field.ID
		err  error
	}{
		{"saddle", field.Saddle, nil},
		{"  GAUSSIAN ", field.Gaussian, nil},
		{"Wave Surface", field.Wave, nil},
		{"Paraboloid (x² + y²)", field.Paraboloid, nil},
		{"", "", field.ErrUnknownFunction},
		{"cone", "", field.ErrUnknownFunction},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := field.ParseID(tc.in)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
