// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions; option constructors panic on programmer
// errors only.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, err) so the
// final text reads "Det: ValidateSquare: matrix: matrix is not square".
//
// Precondition failures (shape/index problems) are reported through these
// sentinels and are not meant to be retried. A singular matrix is NOT an
// error: Inverse reports it through its ok result.

var (
	// ErrInvalidDimensions indicates that requested (or resulting) matrix
	// dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows indicates a literal whose rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrWideMatrix signals a Householder QR request with fewer rows than columns.
	ErrWideMatrix = errors.New("matrix: fewer rows than columns")

	// ErrBadIndex indicates a zero-value (unset) exclusion Index.
	ErrBadIndex = errors.New("matrix: invalid exclusion index")

	// ErrSingular is returned by InverseOf only; Inverse reports a zero
	// determinant through its ok result.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
