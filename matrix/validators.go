// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSymmetric checks that |A[i,j] - A[j,i]| ≤ tol for every i < j.
// This is plain (transpose) symmetry, not Hermitian symmetry: an admittance
// matrix of a reciprocal network equals its transpose.
//
// Returns ErrNilMatrix, ErrNaNInf for a non-finite tol, or ErrAsymmetry wrapped
// with the first offending pair in row-major scan order. A negative tol is
// used by magnitude.
//
// Complexity:
//   - Time O(n²), Space O(1).
func ValidateSymmetric(m *Dense, tol float64) error {
	if m == nil {
		return validatorErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			aij := m.data.At(i, j)
			aji := m.data.At(j, i)
			if cmplx.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric",
					fmt.Errorf("A[%d,%d]=%g, A[%d,%d]=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateSameShape reports ErrDimensionMismatch when a and b differ in size.
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}
