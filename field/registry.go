package field

import (
	"fmt"
	"math"
	"strings"
)

// registry holds the fixed set in display order.
var registry = []Spec{
	{
		ID:    Paraboloid,
		Label: "Paraboloid (x² + y²)",
		F:     func(x, y float64) float64 { return x*x + y*y },
		Grad:  func(x, y float64) (float64, float64) { return 2 * x, 2 * y },
	},
	{
		ID:    Saddle,
		Label: "Saddle (x² - y²)",
		F:     func(x, y float64) float64 { return x*x - y*y },
		Grad:  func(x, y float64) (float64, float64) { return 2 * x, -2 * y },
	},
	{
		ID:    Wave,
		Label: "Wave Surface",
		F:     func(x, y float64) float64 { return math.Sin(x) + math.Cos(y) },
		Grad:  func(x, y float64) (float64, float64) { return math.Cos(x), -math.Sin(y) },
	},
	{
		ID:    Gaussian,
		Label: "Gaussian",
		F:     gaussian,
		Grad: func(x, y float64) (float64, float64) {
			e := gaussian(x, y)
			return -x / 2 * e, -y / 2 * e
		},
	},
}

func gaussian(x, y float64) float64 { return math.Exp(-(x*x + y*y) / 4) }

// Lookup returns the Spec registered under id.
// Errors: ErrUnknownFunction for identifiers outside the set.
// Complexity: O(k), k = number of registered functions.
func Lookup(id ID) (Spec, error) {
	for _, s := range registry {
		if s.ID == id {
			return s, nil
		}
	}

	return Spec{}, fmt.Errorf("%w: %q", ErrUnknownFunction, string(id))
}

// MustLookup is Lookup for identifiers known at compile time.
// It panics on an unknown id (programmer error).
func MustLookup(id ID) Spec {
	s, err := Lookup(id)
	if err != nil {
		panic(err)
	}

	return s
}

// IDs returns the registered identifiers in display order.
// The returned slice is a fresh copy.
func IDs() []ID {
	out := make([]ID, len(registry))
	for i, s := range registry {
		out[i] = s.ID
	}

	return out
}

// Specs returns all registered specs in display order.
func Specs() []Spec {
	out := make([]Spec, len(registry))
	copy(out, registry)

	return out
}

// ParseID resolves user input to an ID. Matching ignores case and
// surrounding blanks and also accepts the display labels.
// Errors: ErrUnknownFunction.
func ParseID(s string) (ID, error) {
	key := strings.TrimSpace(s)
	for _, spec := range registry {
		if strings.EqualFold(key, string(spec.ID)) || strings.EqualFold(key, spec.Label) {
			return spec.ID, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFunction, s)
}
