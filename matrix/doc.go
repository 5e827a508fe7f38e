// Package matrix offers a dense, field-generic matrix engine for small
// fixed-size linear algebra.
//
// The matrix package provides:
//
//   - Dense[T], a row-major H×L grid over float32, float64, complex64 or
//     complex128, built from literals (NewFromRows) or an index-driven
//     initializer (NewFromFunc).
//   - Submatrix and Minor with cyclic-rotation exclusion of a row, a column
//     or a (row, col) pair.
//   - Det by recursive cofactor expansion, Adj, Cofactor and Inverse; a zero
//     determinant yields an absent inverse, not an error.
//   - QRHouseholder: complex Householder QR of tall or square matrices.
//   - Eigenvalues: fixed-budget unshifted QR iteration.
//   - Structural collaborators: Add, Sub, Scale, Div, Hadamard, Mul, MatVec,
//     Transpose, Conjugate, Herm, Trace, Diag, Kronecker, Outer, AllClose.
//
// Every operation returns a freshly allocated result and never mutates its
// inputs. Precondition failures are reported as wrapped sentinel errors
// (see errors.go); match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
