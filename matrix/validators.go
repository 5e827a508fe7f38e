// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing beyond the error value.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNilMatrix catches both a nil interface and a typed nil pointer stored
// in the interface (e.g. (*Dense[float64])(nil)).
func isNilMatrix[T Scalar](m Matrix[T]) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T Scalar](m Matrix[T]) error {
	if isNilMatrix(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure). Complexity: O(1).
func ValidateSameShape[T Scalar](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil. Complexity: O(1).
func ValidateSquare[T Scalar](m Matrix[T]) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateTall checks Rows >= Cols, the Householder QR precondition.
// Assumes m is not nil. Complexity: O(1).
func ValidateTall[T Scalar](m Matrix[T]) error {
	if m.Rows() < m.Cols() {
		return validatorErrorf("ValidateTall", ErrWideMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil slice is reported as ErrNilMatrix (the package's "nil argument" sentinel).
func ValidateVecLen[T Scalar](x []T, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape[T Scalar](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
func ValidateSquareNonNil[T Scalar](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
func ValidateMulCompatible[T Scalar](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex checks an exclusion Index against m's shape.
//
// Errors:
//   - ErrBadIndex for the zero Index.
//   - ErrOutOfRange when the excluded row/column does not exist.
//   - ErrInvalidDimensions when excluding from a dimension of size 1
//     (the result would have no rows or no columns).
func ValidateIndex[T Scalar](m Matrix[T], ix Index) error {
	if ix.kind == indexInvalid || ix.kind > IndexCell {
		return validatorErrorf("ValidateIndex", ErrBadIndex)
	}
	if ix.dropsRow() {
		if ix.row < 0 || ix.row >= m.Rows() {
			return validatorErrorf("ValidateIndex: Row", ErrOutOfRange)
		}
		if m.Rows() == 1 {
			return validatorErrorf("ValidateIndex: Row", ErrInvalidDimensions)
		}
	}
	if ix.dropsCol() {
		if ix.col < 0 || ix.col >= m.Cols() {
			return validatorErrorf("ValidateIndex: Column", ErrOutOfRange)
		}
		if m.Cols() == 1 {
			return validatorErrorf("ValidateIndex: Column", ErrInvalidDimensions)
		}
	}

	return nil
}
