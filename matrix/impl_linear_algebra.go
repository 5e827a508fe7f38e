// SPDX-License-Identifier: MIT
// Package matrix provides universal structural operations on any Matrix
// implementation: element-wise addition and subtraction, scalar scaling and
// division, matrix multiplication, transpose, conjugation, trace, diagonal
// extraction, Kronecker and outer products. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Supply the simple collaborators the core kernels (det/adj/inverse/QR/eigen) are built on.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel reads its operands through asDense (no copy for *Dense)
//     and writes a freshly allocated *Dense; inputs are never mutated.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opScale      = "Scale"
	opDiv        = "Div"
	opHadamard   = "Hadamard"
	opMatVec     = "MatVec"
	opTranspose  = "Transpose"
	opConjugate  = "Conjugate"
	opHerm       = "Herm"
	opTrace      = "Trace"
	opDiag       = "Diag"
	opKronecker  = "Kronecker"
	opOuter      = "Outer"
	opAllClose   = "AllClose"
	opSubmatrix  = "Submatrix"
	opMinor      = "Minor"
	opDet        = "Det"
	opAdj        = "Adj"
	opCofactor   = "Cofactor"
	opInverse    = "Inverse"
	opQR         = "QRHouseholder"
	opEigen      = "Eigenvalues"
	opIdentity   = "NewIdentity"
	opIdentityOf = "IdentityLike"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the flat loop.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub[T Scalar](a, b Matrix[T], sign T, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &Dense[T]{r: da.r, c: da.c, data: make([]T, len(da.data))}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Scalar](a, b Matrix[T]) (*Dense[T], error) { return addSub(a, b, One[T](), opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T Scalar](a, b Matrix[T]) (*Dense[T], error) { return addSub(a, b, -One[T](), opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape.
//
// Complexity: Time O(r*c), Space O(r*c).
func Scale[T Scalar](m Matrix[T], alpha T) (*Dense[T], error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense[T]{r: dm.r, c: dm.c, data: make([]T, len(dm.data))}
	for idx, v := range dm.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Div returns a new matrix whose elements are m[i,j] / alpha.
// Division by zero follows IEEE-754 (Inf/NaN propagate); no error is raised.
//
// Complexity: Time O(r*c), Space O(r*c).
func Div[T Scalar](m Matrix[T], alpha T) (*Dense[T], error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	res := &Dense[T]{r: dm.r, c: dm.c, data: make([]T, len(dm.data))}
	for idx, v := range dm.data {
		res.data[idx] = v / alpha
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Hadamard ≠ matrix multiplication; use Mul for A×B.
func Hadamard[T Scalar](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := &Dense[T]{r: da.r, c: da.c, data: make([]T, len(da.data))}
	for idx := range res.data {
		res.data[idx] = da.data[idx] * db.data[idx]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop over the flat row-major buffers, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed i→k→j order; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Scalar](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulDense(da, db), nil
}

// mulDense is the unchecked flat kernel behind Mul; shapes must conform.
func mulDense[T Scalar](da, db *Dense[T]) *Dense[T] {
	aRows, aCols, bCols := da.r, da.c, db.c
	res := &Dense[T]{r: aRows, c: bCols, data: make([]T, aRows*bCols)}
	var (
		i, k, j                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 T
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec[T Scalar](m Matrix[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]T, d.r)
	var i, j, base int
	var acc T
	for i = 0; i < d.r; i++ {
		acc = 0
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input matrix is never mutated.
//
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T Scalar](m Matrix[T]) (*Dense[T], error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transposeDense(dm, false), nil
}

// Conjugate returns the element-wise complex conjugate of m.
// For real fields it is a plain copy.
func Conjugate[T Scalar](m Matrix[T]) (*Dense[T], error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opConjugate, err)
	}
	res := &Dense[T]{r: dm.r, c: dm.c, data: make([]T, len(dm.data))}
	for idx, v := range dm.data {
		res.data[idx] = Conj(v)
	}

	return res, nil
}

// Herm returns the conjugate (Hermitian) transpose mᴴ.
// For real fields Herm equals Transpose.
func Herm[T Scalar](m Matrix[T]) (*Dense[T], error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opHerm, err)
	}

	return transposeDense(dm, true), nil
}

// transposeDense writes dmᵀ (conjugated when conj is set) into a fresh buffer.
// data[i*cols + j] → res.data[j*rows + i]
func transposeDense[T Scalar](dm *Dense[T], conj bool) *Dense[T] {
	rows, cols := dm.r, dm.c
	res := &Dense[T]{r: cols, c: rows, data: make([]T, rows*cols)}
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			if conj {
				res.data[j*rows+i] = Conj(dm.data[baseSrc+j])
			} else {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
	}

	return res
}

// Trace returns Σ m[i,i] of a square matrix.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace[T Scalar](m Matrix[T]) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum T
	for i := 0; i < dm.r; i++ {
		sum += dm.data[i*dm.c+i]
	}

	return sum, nil
}

// Diag returns the main diagonal m[i,i] for i < min(rows, cols),
// in diagonal-position order.
func Diag[T Scalar](m Matrix[T]) ([]T, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opDiag, err)
	}

	return diagDense(dm), nil
}

// diagDense is the unchecked variant of Diag.
func diagDense[T Scalar](dm *Dense[T]) []T {
	n := min(dm.r, dm.c)
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = dm.data[i*dm.c+i]
	}

	return out
}

// Kronecker returns the Kronecker product a ⊗ b of shape (H1·H2)×(L1·L2):
//
//	out[r][c] = a[r/H2][c/L2] · b[r%H2][c%L2]
//
// Complexity: Time O(H1·H2·L1·L2), Space the same.
func Kronecker[T Scalar](a, b Matrix[T]) (*Dense[T], error) {
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	rows, cols := da.r*db.r, da.c*db.c
	res := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			res.data[r*cols+c] = da.data[(r/db.r)*da.c+c/db.c] * db.data[(r%db.r)*db.c+c%db.c]
		}
	}

	return res, nil
}

// Outer returns the outer product x·yᵀ as a len(x)×len(y) matrix.
// No conjugation is applied; conjugate y first for x·yᴴ.
//
// Errors: ErrInvalidDimensions when either vector is empty.
func Outer[T Scalar](x, y []T) (*Dense[T], error) {
	res, err := NewDense[T](len(x), len(y))
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	cols := len(y)
	for r, xv := range x {
		for c, yv := range y {
			res.data[r*cols+c] = xv * yv
		}
	}

	return res, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// elements agrees within tol, absolutely or relatively, on both the real
// and the imaginary part.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
//
// AI-Hints:
//   - Use it for round-trip checks (A·A⁻¹ ≈ I, Q·R ≈ A) instead of exact equality.
func AllClose[T Scalar](a, b Matrix[T], tol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	var ca, cb complex128
	for idx := range da.data {
		ca, cb = ToComplex(da.data[idx]), ToComplex(db.data[idx])
		if !scalar.EqualWithinAbsOrRel(real(ca), real(cb), tol, tol) ||
			!scalar.EqualWithinAbsOrRel(imag(ca), imag(cb), tol, tol) {
			return false, nil
		}
	}

	return true, nil
}
