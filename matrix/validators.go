// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for distance-matrix checks.
//  - Return sentinel errors wrapped with the validator name.
//
// All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is non-nil and square, and returns its order.
// A 0×0 matrix is square (an empty instance).
// Complexity: O(1).
func ValidateSquare(m Matrix) (int, error) {
	if m == nil {
		return 0, validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return 0, validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return m.Rows(), nil
}

// ValidateDistance checks the full distance-matrix contract:
// square, finite, non-negative, and |a_ii| <= tol.
// Complexity: O(n²).
func ValidateDistance(m Matrix, tol float64) error {
	n, err := ValidateSquare(m)
	if err != nil {
		return err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateDistance", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateDistance", ErrNaNInf)
			}
			if v < 0 {
				return validatorErrorf("ValidateDistance", ErrNegative)
			}
			if i == j && v > tol {
				return validatorErrorf("ValidateDistance", ErrNonZeroDiagonal)
			}
		}
	}

	return nil
}

// ValidateSymmetric returns ErrAsymmetry if any |a_ij - a_ji| > tol.
// Only the strict upper triangle is scanned.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	n, err := ValidateSquare(m)
	if err != nil {
		return err
	}
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// AllClose reports whether a and b have the same shape and every pair of
// entries satisfies |a-b| <= atol + rtol*|b|.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if a == nil || b == nil {
		return false, validatorErrorf("AllClose", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, validatorErrorf("AllClose", ErrDimensionMismatch)
	}
	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
