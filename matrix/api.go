// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - InverseOf folds the singular case into an error for callers that do not
//     want to branch on ok.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros[T Scalar](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a neutral element when checking A·A⁻¹ or Qᴴ·Q.
func NewIdentity[T Scalar](n int) (*Dense[T], error) {
	I, err := NewDense[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = One[T]()
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Scalar](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike[T Scalar](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentityOf, err)
	}

	return NewIdentity[T](m.Rows())
}

// ---------- Algebra facades ----------

// wrap lifts a kernel result to the Matrix interface without leaking a
// typed nil pointer on error.
func wrap[T Scalar](d *Dense[T], err error) (Matrix[T], error) {
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Sum is an alias for Add (A + B).
func Sum[T Scalar](a, b Matrix[T]) (Matrix[T], error) { return wrap(Add(a, b)) }

// Diff is an alias for Sub (A - B).
func Diff[T Scalar](a, b Matrix[T]) (Matrix[T], error) { return wrap(Sub(a, b)) }

// Product is an alias for Mul (A × B).
func Product[T Scalar](a, b Matrix[T]) (Matrix[T], error) { return wrap(Mul(a, b)) }

// T is an alias for Transpose (Aᵀ).
func T[E Scalar](m Matrix[E]) (Matrix[E], error) { return wrap(Transpose(m)) }

// H is an alias for Herm (Aᴴ).
func H[E Scalar](m Matrix[E]) (Matrix[E], error) { return wrap(Herm(m)) }

// ScaleBy is an alias for Scale (alpha·A).
func ScaleBy[T Scalar](m Matrix[T], alpha T) (Matrix[T], error) { return wrap(Scale(m, alpha)) }

// InverseOf returns A⁻¹ or ErrSingular when det(A) is exactly zero.
func InverseOf[T Scalar](m Matrix[T]) (Matrix[T], error) {
	inv, ok, err := Inverse(m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return inv, nil
}

// QRDecompose is an alias for QRHouseholder.
func QRDecompose[T Scalar](m Matrix[T]) (Matrix[complex128], Matrix[complex128], error) {
	q, r, err := QRHouseholder(m)
	if err != nil {
		return nil, nil, err
	}

	return q, r, nil
}

// Eig is an alias for Eigenvalues.
func Eig[T Scalar](m Matrix[T], opts ...Option) ([]complex128, error) {
	return Eigenvalues(m, opts...)
}
