// SPDX-License-Identifier: MIT

// Package matrix - Submatrix, Minor and the recursive determinant.
//
// Purpose:
//   - Exclude a row, a column or a (row, col) pair by cyclic rotation:
//     the kept lines start just past the excluded one and wrap around.
//   - Expand determinants down the first column over rotated minors.
//
// Sign convention:
//   - Rotating the m = N-1 kept lines left by k is a permutation of sign
//     (-1)^(k(m-k)). For odd N this equals (-1)^k, so the rotated minor
//     already carries the checkerboard sign; for even N it is always +1
//     and the checkerboard has to be applied explicitly. cofactorSign
//     returns exactly that missing factor.
//
// Complexity:
//   - Det is O(N!) by construction (cofactor expansion); use it for the
//     small fixed-size matrices this package targets.

package matrix

// rotatedLines lists the n-1 line indices kept after excluding skip,
// starting at skip+1 and wrapping around.
func rotatedLines(n, skip int) []int {
	out := make([]int, n-1)
	for i := range out {
		out[i] = (i + skip + 1) % n
	}

	return out
}

// identityLines lists 0..n-1.
func identityLines(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Submatrix returns a copy of m with the line(s) selected by ix removed.
//
//   - ExcludeRow(r):    out[i][j] = m[(i+r+1) % H][j]
//   - ExcludeCol(c):    out[i][j] = m[i][(j+c+1) % L]
//   - ExcludeCell(r,c): out[i][j] = m[(i+r+1) % H][(j+c+1) % L]
//
// Errors:
//   - ErrNilMatrix, ErrBadIndex, ErrOutOfRange.
//   - ErrInvalidDimensions when the excluded dimension has size 1.
func Submatrix[T Scalar](m Matrix[T], ix Index) (*Dense[T], error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err = ValidateIndex[T](d, ix); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	return submatrixDense(d, ix)
}

// submatrixDense assumes ix was validated against d.
func submatrixDense[T Scalar](d *Dense[T], ix Index) (*Dense[T], error) {
	rowsIdx, colsIdx := identityLines(d.r), identityLines(d.c)
	if ix.dropsRow() {
		rowsIdx = rotatedLines(d.r, ix.row)
	}
	if ix.dropsCol() {
		colsIdx = rotatedLines(d.c, ix.col)
	}
	res, err := d.Induced(rowsIdx, colsIdx)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	return res, nil
}

// Minor returns Det(Submatrix(m, ix)).
//
// Errors: those of Submatrix, plus ErrNonSquare when the submatrix is not square.
func Minor[T Scalar](m Matrix[T], ix Index) (T, error) {
	sub, err := Submatrix(m, ix)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	if err = ValidateSquare[T](sub); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return detDense(sub), nil
}

// Det computes the determinant of a square matrix.
//
// Implementation:
//   - 1×1: the single entry.
//   - 2×2: a00*a11 - a01*a10.
//   - N≥3: Σ_i m[i][0] · cofactorSign(i,0,N) · Minor(m, (i,0)), recursing
//     on rotated minors with no size cap.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func Det[T Scalar](m Matrix[T]) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return detDense(d), nil
}

// detDense is the unchecked recursion behind Det; d must be square.
func detDense[T Scalar](d *Dense[T]) T {
	n := d.r
	switch n {
	case 1:
		return d.data[0]
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}

	var (
		sum T
		a   T
	)
	for i := 0; i < n; i++ {
		a = d.data[i*n]
		if a == 0 {
			continue // zero entries contribute nothing
		}
		sum += a * cofactorSign[T](i, 0, n) * rotatedMinor(d, i, 0)
	}

	return sum
}

// rotatedMinor is det of d without row i and column j, rotated.
func rotatedMinor[T Scalar](d *Dense[T], i, j int) T {
	// Indices are in range and n >= 2 whenever this is reached.
	sub, _ := d.Induced(rotatedLines(d.r, i), rotatedLines(d.c, j))

	return detDense(sub)
}

// cofactorSign is the factor that turns a rotated minor of an n×n matrix
// into the signed cofactor at (i, j): +1 for odd n, (-1)^(i+j) for even n.
func cofactorSign[T Scalar](i, j, n int) T {
	if n%2 == 1 || (i+j)%2 == 0 {
		return One[T]()
	}

	return -One[T]()
}
