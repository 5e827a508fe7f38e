// Package vector provides element-wise and product operations on field
// vectors represented as plain slices of matrix.Scalar values.
//
// The vector package provides:
//
//   - Element-wise Add, Sub, Scale, Div and Conj.
//   - Dot (bilinear, no conjugation), NormSqr and Norm.
//   - Outer products as *matrix.Dense.
//   - Cross products in 3 and 7 dimensions, each component built from
//     2×2 determinants (matrix.Det).
//
// Every function allocates its result and leaves its inputs untouched.
// Length mismatches are reported as ErrLengthMismatch.
package vector
