// SPDX-License-Identifier: MIT

// Package matrix - Householder QR over the complex field.
//
// Purpose:
//   - Factor an H×L matrix (H ≥ L) as A = Q·R with Q unitary (H×H) and R
//     upper-triangular (H×L) in its first L columns.
//   - Real inputs are embedded into complex128 with zero imaginary part; the
//     factors are always complex128 and may carry phase on real inputs.
//
// Algorithm (pivot t = 0 .. min(L, H-1)-1):
//  1. x := leading column of the (H-t)×(L-t) trailing block.
//  2. alpha := -e^{i·arg(x0)}·‖x‖ (avoids cancellation in u0).
//  3. u := x with u0 -= alpha; v := u/‖u‖.
//  4. Reflector P = I - 2·v·vᴴ; Q := Q·P embedded at offset t.
//  5. Trailing block := P·block without its first row and column.
//
// Afterwards R := Qᴴ·A and the strictly lower part of the first L columns
// is set to exact zeros.
//
// Notes:
//   - P is Hermitian, so the conjugated-transpose embedding P[c-t][r-t]
//     equals P[r-t][c-t]; the update is applied as a rank-1 correction
//     (Q[:, t:] -= 2·(Q[:, t:]·v)·vᴴ) instead of a full H×H product.
//   - A zero leading column (‖u‖ == 0) leaves Q unchanged for that step.

package matrix

import "math"

// QRHouseholder factors m into Q and R with m = Q·R.
//
// Contract:
//   - Qᴴ·Q = I within rounding.
//   - R[j][i] == 0 exactly for i < Cols, j > i.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrWideMatrix when Rows < Cols.
//
// Complexity: Time O(H²·L), Space O(H² + H·L).
func QRHouseholder[T Scalar](m Matrix[T]) (*Dense[complex128], *Dense[complex128], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	if err := ValidateTall(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	q, r := qrDense(toComplexDense(d))

	return q, r, nil
}

// toComplexDense embeds d into the complex field.
func toComplexDense[T Scalar](d *Dense[T]) *Dense[complex128] {
	if c, ok := any(d).(*Dense[complex128]); ok {
		return c
	}
	out := &Dense[complex128]{r: d.r, c: d.c, data: make([]complex128, len(d.data))}
	for idx, v := range d.data {
		out.data[idx] = ToComplex(v)
	}

	return out
}

// identityComplex returns the n×n complex identity.
func identityComplex(n int) *Dense[complex128] {
	out := &Dense[complex128]{r: n, c: n, data: make([]complex128, n*n)}
	for i := 0; i < n; i++ {
		out.data[i*n+i] = 1
	}

	return out
}

// qrDense is the unchecked kernel; a must satisfy a.r >= a.c and is not mutated.
func qrDense(a *Dense[complex128]) (*Dense[complex128], *Dense[complex128]) {
	h, l := a.r, a.c
	q := identityComplex(h)

	// Working trailing block, shrinking by one row and column per step.
	br, bc := h, l
	block := make([]complex128, len(a.data))
	copy(block, a.data)

	steps := min(l, h-1)
	x := make([]complex128, h)
	var (
		t, i, j, k int
		norm2, un  float64
		alpha, w   complex128
	)
	for t = 0; t < steps; t++ {
		// Stage 1: x and its norm.
		x = x[:br]
		norm2 = 0
		for i = 0; i < br; i++ {
			x[i] = block[i*bc]
			norm2 += Abs2(x[i])
		}

		// Stage 2: u = x - alpha·e0, normalized in place into v.
		alpha = -cis(Arg(x[0])) * complex(math.Sqrt(norm2), 0)
		x[0] -= alpha
		un = 0
		for i = 0; i < br; i++ {
			un += Abs2(x[i])
		}
		un = math.Sqrt(un)

		if un != 0 {
			for i = 0; i < br; i++ {
				x[i] /= complex(un, 0)
			}

			// Stage 3: Q := Q·P at offset t.
			for i = 0; i < h; i++ {
				w = 0
				for k = 0; k < br; k++ {
					w += q.data[i*h+t+k] * x[k]
				}
				w *= 2
				for k = 0; k < br; k++ {
					q.data[i*h+t+k] -= w * Conj(x[k])
				}
			}

			// Stage 4: block := P·block, columns 1.. only (column 0 is dropped).
			for j = 1; j < bc; j++ {
				w = 0
				for k = 0; k < br; k++ {
					w += Conj(x[k]) * block[k*bc+j]
				}
				w *= 2
				for k = 0; k < br; k++ {
					block[k*bc+j] -= w * x[k]
				}
			}
		}

		// Stage 5: drop the processed leading row and column.
		next := make([]complex128, (br-1)*(bc-1))
		for i = 1; i < br; i++ {
			copy(next[(i-1)*(bc-1):i*(bc-1)], block[i*bc+1:(i+1)*bc])
		}
		block = next
		br--
		bc--
	}

	// R := Qᴴ·A, then exact zeros below the diagonal.
	r := mulDense(transposeDense(q, true), a)
	for i = 0; i < l; i++ {
		for j = i + 1; j < h; j++ {
			r.data[j*l+i] = 0
		}
	}

	return q, r
}
