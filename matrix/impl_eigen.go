// SPDX-License-Identifier: MIT

// Package matrix - eigenvalue estimates by the unshifted QR algorithm.
//
// Algorithm:
//   - A_0 := A embedded into complex128.
//   - Repeat Options.Iterations() times: (Q, R) := QR(A_k); A_{k+1} := R·Q.
//   - One more QR of the final iterate; λ_i := R_ii · Q_ii/|Q_ii|.
//
// Every Householder step leaves a unit-modulus phase (−1 on real input) on
// its pivot, which shows up in both R_ii and Q_ii. Folding Q_ii's phase back
// into R_ii reads the diagonal of the iterate itself.
//
// Limitations:
//   - No shift, no deflation, no convergence test: the estimates are whatever
//     the iteration budget produced. Complex-conjugate pairs, equal-magnitude
//     eigenvalues and defective spectra may not converge.

package matrix

import (
	"math/cmplx"

	"go.uber.org/zap"
)

// Eigenvalues returns eigenvalue estimates of a square matrix in
// diagonal-position order (not sorted, not deduplicated).
//
// Options:
//   - WithIterations(n): QR step budget (default DefaultEigenIterations).
//   - WithLogger(l): Debug traces at start and end of the iteration.
//
// Errors: ErrNilMatrix, ErrNonSquare. Non-convergence is never reported.
//
// Complexity: Time O(iterations·N³), Space O(N²).
func Eigenvalues[T Scalar](m Matrix[T], opts ...Option) ([]complex128, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	o := gatherOptions(opts...)
	log := o.logger

	a := toComplexDense(d)
	n := a.r
	log.Debug("eigen: qr iteration start",
		zap.Int("n", n),
		zap.Int("iterations", o.iterations),
	)

	var q, r *Dense[complex128]
	for k := 0; k < o.iterations; k++ {
		q, r = qrDense(a)
		a = mulDense(r, q)
	}

	log.Debug("eigen: qr iteration done",
		zap.Int("iterations", o.iterations),
		zap.Float64("max_subdiag", maxSubdiagonal(a)),
	)

	q, r = qrDense(a)
	out := make([]complex128, n)
	var qii complex128
	for i := 0; i < n; i++ {
		out[i] = r.data[i*n+i]
		qii = q.data[i*n+i]
		if qii != 0 {
			out[i] *= qii / complex(cmplx.Abs(qii), 0)
		}
	}

	return out, nil
}

// maxSubdiagonal returns max |a[i+1][i]|, a cheap convergence indicator.
func maxSubdiagonal(a *Dense[complex128]) float64 {
	var best, v float64
	for i := 0; i+1 < a.r; i++ {
		v = cmplx.Abs(a.data[(i+1)*a.c+i])
		if v > best {
			best = v
		}
	}

	return best
}
