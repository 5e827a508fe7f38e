// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"

	"github.com/sigurd4/array-matrix/matrix"
	"gonum.org/v1/gonum/mat"
)

// ErrNilInput indicates a nil source matrix.
var ErrNilInput = errors.New("converters: nil input")

// ErrEigenFailed indicates that gonum's eigen factorization did not succeed.
var ErrEigenFailed = errors.New("converters: eigen factorization failed")

// FromGonum copies a gonum real matrix into a new matrix.Dense[float64].
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*matrix.Dense[float64], error) {
	if src == nil {
		return nil, ErrNilInput
	}
	r, c := src.Dims()
	out, err := matrix.NewFromFunc(r, c, func(i, j int) float64 { return src.At(i, j) })
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}

	return out, nil
}

// ToGonum copies m into a new *mat.Dense.
func ToGonum(m matrix.Matrix[float64]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("ToGonum: %w", err)
			}
			data = append(data, v)
		}
	}

	return mat.NewDense(r, c, data), nil
}

// FromGonumComplex copies a gonum complex matrix into a new matrix.Dense[complex128].
func FromGonumComplex(src mat.CMatrix) (*matrix.Dense[complex128], error) {
	if src == nil {
		return nil, ErrNilInput
	}
	r, c := src.Dims()
	out, err := matrix.NewFromFunc(r, c, func(i, j int) complex128 { return src.At(i, j) })
	if err != nil {
		return nil, fmt.Errorf("FromGonumComplex: %w", err)
	}

	return out, nil
}

// ToGonumComplex embeds m into the complex field and copies it into a new *mat.CDense.
// QR factors (always complex128) export without loss.
func ToGonumComplex[T matrix.Scalar](m matrix.Matrix[T]) (*mat.CDense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonumComplex: %w", err)
	}
	r, c := m.Rows(), m.Cols()
	data := make([]complex128, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("ToGonumComplex: %w", err)
			}
			data = append(data, matrix.ToComplex(v))
		}
	}

	return mat.NewCDense(r, c, data), nil
}

// GonumEigenvalues computes the eigenvalues of a real square matrix with
// gonum's mat.Eigen (values only). The order is LAPACK's, not the engine's
// diagonal-position order; sort both sides before comparing.
//
// Errors: matrix.ErrNonSquare, ErrEigenFailed.
func GonumEigenvalues(m matrix.Matrix[float64]) ([]complex128, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("GonumEigenvalues: %w", err)
	}
	g, err := ToGonum(m)
	if err != nil {
		return nil, fmt.Errorf("GonumEigenvalues: %w", err)
	}
	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenNone); !ok {
		return nil, ErrEigenFailed
	}

	return eig.Values(nil), nil
}
