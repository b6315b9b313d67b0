// Package field is the function registry: a fixed set of closed-form
// scalar fields f(x,y), each paired with its hand-coded gradient.
//
// ✨ Registered functions:
//
//	paraboloid  x² + y²            grad (2x, 2y)
//	saddle      x² − y²            grad (2x, −2y)
//	wave        sin(x) + cos(y)    grad (cos x, −sin y)
//	gaussian    exp(−(x²+y²)/4)    grad (−x/2·f, −y/2·f)
//
// ⚙️ Usage:
//
//	spec, err := field.Lookup(field.Saddle)
//	z := spec.F(1, 1)          // 0
//	gx, gy := spec.Grad(1, 1)  // 2, -2
//
// CheckGradient verifies a hand-coded gradient against central finite
// differences over a lattice; the CLI `check` command runs it for every
// registered function.
package field
