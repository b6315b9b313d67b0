// Package matrix provides the dense row-major storage used for sampled
// scalar fields.
//
// The matrix package provides:
//
//   - Dense, a bounds-checked r×c float64 buffer that rejects NaN/Inf on
//     writes, with Fill/Apply visitors in a fixed i→j order.
//   - Range, the colour-scale bounds of a sampled mesh.
//   - Validators (ValidateNotNil, ValidateSameShape, ValidateVecLen).
//
// Rows index the y-axis and columns the x-axis, matching the meshgrid
// layout expected by surface and contour plots.
package matrix
