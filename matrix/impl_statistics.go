// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Summary statistics over sampled meshes: the value range gives the
//     colour-scale bounds for surface and contour plots.
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense fast-path reads the flat buffer directly.

package matrix

import (
	"fmt"
	"math"
)

const opRange = "Range"

// matrixErrorf tags an error with the statistic that produced it.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Range returns the minimum and maximum element of m.
// Implementation:
//   - Stage 1: validate m (non-nil).
//   - Stage 2: single pass tracking lo/hi (Dense fast-path; At fallback).
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Range(m Matrix) (lo, hi float64, err error) {
	if err = ValidateNotNil(m); err != nil {
		return 0, 0, matrixErrorf(opRange, err)
	}
	lo, hi = math.Inf(1), math.Inf(-1)

	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}

		return lo, hi, nil
	}

	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, 0, matrixErrorf(opRange, err)
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	return lo, hi, nil
}
