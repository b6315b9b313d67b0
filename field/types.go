package field

import "errors"

// Sentinel errors for field operations.
var (
	// ErrUnknownFunction indicates an identifier outside the registered set.
	ErrUnknownFunction = errors.New("field: unknown function")
	// ErrGradientMismatch indicates a hand-coded gradient disagrees with the
	// finite-difference estimate beyond tolerance.
	ErrGradientMismatch = errors.New("field: gradient does not match finite differences")
	// ErrBadCheckOptions indicates invalid CheckOptions (bounds, samples, step, tolerance).
	ErrBadCheckOptions = errors.New("field: invalid check options")
)

// ID names one of the registered scalar fields.
type ID string

const (
	// Paraboloid is f(x,y) = x² + y².
	Paraboloid ID = "paraboloid"
	// Saddle is f(x,y) = x² − y².
	Saddle ID = "saddle"
	// Wave is f(x,y) = sin(x) + cos(y).
	Wave ID = "wave"
	// Gaussian is f(x,y) = exp(−(x²+y²)/4).
	Gaussian ID = "gaussian"
)

// ScalarFunc maps a 2D coordinate to a real number.
type ScalarFunc func(x, y float64) float64

// GradientFunc maps a 2D coordinate to its partial derivatives (∂f/∂x, ∂f/∂y).
type GradientFunc func(x, y float64) (gx, gy float64)

// Spec pairs a scalar field with its gradient field. Specs are immutable
// values handed out by Lookup; F and Grad are pure.
type Spec struct {
	ID    ID
	Label string // display label, e.g. "Saddle (x² - y²)"
	F     ScalarFunc
	Grad  GradientFunc
}

// String returns the identifier.
func (id ID) String() string { return string(id) }
