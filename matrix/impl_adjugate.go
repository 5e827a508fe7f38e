// SPDX-License-Identifier: MIT

// Package matrix - adjugate, cofactor matrix and inverse.
//
// Contracts:
//   - A · Adj(A) = Det(A) · I for every square A.
//   - Cofactor(A) = Adj(A)ᵀ.
//   - Inverse reports a singular matrix through ok == false, never an error.

package matrix

// Adj returns the adjugate (classical adjoint) of a square matrix.
//
// Implementation:
//   - 1×1: [[1]].
//   - 2×2: [[a11, -a01], [-a10, a00]].
//   - N≥3: adj[r][c] = cofactorSign(c,r,N) · Minor(m, (c,r)); the transposed
//     index folds the transpose of the cofactor matrix into construction.
//
// Errors: ErrNilMatrix, ErrNonSquare.
//
// Complexity: N² minors of size N-1.
func Adj[T Scalar](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdj, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opAdj, err)
	}

	return adjDense(d), nil
}

// adjDense is the unchecked kernel behind Adj; d must be square.
func adjDense[T Scalar](d *Dense[T]) *Dense[T] {
	n := d.r
	res := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	switch n {
	case 1:
		res.data[0] = One[T]()
		return res
	case 2:
		res.data[0] = d.data[3]
		res.data[1] = -d.data[1]
		res.data[2] = -d.data[2]
		res.data[3] = d.data[0]
		return res
	}

	var r, c int
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			res.data[r*n+c] = cofactorSign[T](c, r, n) * rotatedMinor(d, c, r)
		}
	}

	return res
}

// Cofactor returns the signed-minor matrix, i.e. Adj(m) transposed.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func Cofactor[T Scalar](m Matrix[T]) (*Dense[T], error) {
	adj, err := Adj(m)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return transposeDense(adj, false), nil
}

// Inverse returns Adj(m) / Det(m).
//
// A determinant that is exactly zero yields (nil, false, nil): the matrix
// is singular and no tolerance is applied. Near-singular inputs invert
// with large entries.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func Inverse[T Scalar](m Matrix[T]) (*Dense[T], bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}

	det := detDense(d)
	if det == 0 {
		return nil, false, nil
	}
	inv := One[T]() / det
	res := adjDense(d)
	for idx := range res.data {
		res.data[idx] *= inv
	}

	return res, true, nil
}
