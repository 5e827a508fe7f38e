// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/sigurd4/array-matrix/matrix"
)

// det2 returns det([[a, b], [c, d]]) through the matrix engine.
func det2[T matrix.Scalar](a, b, c, d T) T {
	m, err := matrix.NewFromRows([][]T{{a, b}, {c, d}})
	if err != nil {
		panic(err) // a 2×2 literal is always well-formed
	}
	v, err := matrix.Det(m)
	if err != nil {
		panic(err)
	}

	return v
}

// Cross returns the 3-D cross product x×y. Component i is
//
//	det([[x[i+1], x[i+2]], [y[i+1], y[i+2]]])  (indices mod 3)
//
// Errors: ErrCrossDimension unless both vectors have length 3.
func Cross[T matrix.Scalar](x, y []T) ([]T, error) {
	if len(x) != 3 || len(y) != 3 {
		return nil, vectorErrorf(opCross, fmt.Errorf("len %d, %d: %w", len(x), len(y), ErrCrossDimension))
	}
	out := make([]T, 3)
	for i := range out {
		out[i] = det2(x[(1+i)%3], x[(2+i)%3], y[(1+i)%3], y[(2+i)%3])
	}

	return out, nil
}

// cross7Pairs are the index offsets of the three 2×2 terms per component.
var cross7Pairs = [3][2]int{{1, 3}, {2, 6}, {4, 5}}

// Cross7 returns the 7-D cross product x×y built on the Fano-plane index
// triples: component i sums det([[x[i+p], x[i+q]], [y[i+p], y[i+q]]]) over
// (p, q) ∈ {(1,3), (2,6), (4,5)}, indices mod 7.
//
// Errors: ErrCrossDimension unless both vectors have length 7.
func Cross7[T matrix.Scalar](x, y []T) ([]T, error) {
	if len(x) != 7 || len(y) != 7 {
		return nil, vectorErrorf(opCross, fmt.Errorf("len %d, %d: %w", len(x), len(y), ErrCrossDimension))
	}
	out := make([]T, 7)
	var p, q int
	for i := range out {
		for _, pq := range cross7Pairs {
			p, q = (pq[0]+i)%7, (pq[1]+i)%7
			out[i] += det2(x[p], x[q], y[p], y[q])
		}
	}

	return out, nil
}

// CrossProduct dispatches on the vector length: 3 → Cross, 7 → Cross7.
func CrossProduct[T matrix.Scalar](x, y []T) ([]T, error) {
	if len(x) != len(y) {
		return nil, vectorErrorf(opCross, ErrLengthMismatch)
	}
	switch len(x) {
	case 3:
		return Cross(x, y)
	case 7:
		return Cross7(x, y)
	}

	return nil, vectorErrorf(opCross, ErrCrossDimension)
}
