// Package arraymatrix is a small, field-generic dense linear algebra engine
// for fixed-size matrices and vectors over float32, float64, complex64 and
// complex128.
//
// What is inside?
//
//	A pure-Go library that brings together:
//		• Dense storage: row-major matrices built from literals or initializer funcs
//		• Exact-form kernels: submatrix/minor, determinant, adjugate, cofactor, inverse
//		• Factorizations: complex Householder QR
//		• Spectra: eigenvalue estimates by fixed-budget unshifted QR iteration
//		• Vectors: dot, norms, outer products, 3-D and 7-D cross products
//		• Interop: two-way converters to gonum's mat.Dense and mat.CDense
//
// Everything is organized under three subpackages:
//
//	matrix/      Dense[T], kernels, validators, options (iterations, zap logger)
//	vector/      slice-based vector operations built on matrix
//	converters/  gonum adapters and reference cross-checks
//
// Every operation is pure: inputs are never mutated and each call returns a
// freshly allocated result. Shape problems are returned as wrapped sentinel
// errors; a singular matrix is reported by Inverse's ok result instead.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	inv, ok, _ := matrix.Inverse(a) // [[-2, 1], [1.5, -0.5]], true
//
//	go get github.com/sigurd4/array-matrix
package arraymatrix
