// SPDX-License-Identifier: MIT

// Package vector - element-wise operations, dot product and norms.
//
// Determinism:
//   - Fixed 0..n-1 loop order; identical inputs give bit-identical outputs.
//
// AI-Hints:
//   - float64 Dot/NormSqr route through gonum's floats kernels.

package vector

import (
	"fmt"
	"math"

	"github.com/sigurd4/array-matrix/matrix"
	"gonum.org/v1/gonum/floats"
)

// Operation tags for error wrapping.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opDot   = "Dot"
	opOuter = "Outer"
	opCross = "Cross"
)

// vectorErrorf wraps err with an operation tag, preserving it via %w.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// sameLen reports ErrLengthMismatch when len(x) != len(y).
func sameLen[T matrix.Scalar](x, y []T) error {
	if len(x) != len(y) {
		return fmt.Errorf("len %d vs %d: %w", len(x), len(y), ErrLengthMismatch)
	}

	return nil
}

// Add returns x + y.
func Add[T matrix.Scalar](x, y []T) ([]T, error) {
	if err := sameLen(x, y); err != nil {
		return nil, vectorErrorf(opAdd, err)
	}
	out := make([]T, len(x))
	for i := range x {
		out[i] = x[i] + y[i]
	}

	return out, nil
}

// Sub returns x - y.
func Sub[T matrix.Scalar](x, y []T) ([]T, error) {
	if err := sameLen(x, y); err != nil {
		return nil, vectorErrorf(opSub, err)
	}
	out := make([]T, len(x))
	for i := range x {
		out[i] = x[i] - y[i]
	}

	return out, nil
}

// Scale returns alpha·x.
func Scale[T matrix.Scalar](x []T, alpha T) []T {
	out := make([]T, len(x))
	for i, v := range x {
		out[i] = v * alpha
	}

	return out
}

// Div returns x / alpha. Division by zero follows IEEE-754.
func Div[T matrix.Scalar](x []T, alpha T) []T {
	out := make([]T, len(x))
	for i, v := range x {
		out[i] = v / alpha
	}

	return out
}

// Conj returns the element-wise complex conjugate (a copy for real fields).
func Conj[T matrix.Scalar](x []T) []T {
	out := make([]T, len(x))
	for i, v := range x {
		out[i] = matrix.Conj(v)
	}

	return out
}

// Dot returns Σ x_i·y_i. No conjugation is applied; use Dot(Conj(x), y)
// for the Hermitian inner product. Empty vectors give zero.
func Dot[T matrix.Scalar](x, y []T) (T, error) {
	if err := sameLen(x, y); err != nil {
		return 0, vectorErrorf(opDot, err)
	}
	if xs, ok := any(x).([]float64); ok {
		return any(floats.Dot(xs, any(y).([]float64))).(T), nil
	}
	var sum T
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum, nil
}

// NormSqr returns Σ |x_i|².
func NormSqr[T matrix.Scalar](x []T) float64 {
	if xs, ok := any(x).([]float64); ok {
		return floats.Dot(xs, xs)
	}
	var sum float64
	for _, v := range x {
		sum += matrix.Abs2(v)
	}

	return sum
}

// Norm returns the Euclidean norm sqrt(NormSqr(x)).
func Norm[T matrix.Scalar](x []T) float64 { return math.Sqrt(NormSqr(x)) }

// Outer returns the len(x)×len(y) matrix x·yᵀ.
func Outer[T matrix.Scalar](x, y []T) (*matrix.Dense[T], error) {
	m, err := matrix.Outer(x, y)
	if err != nil {
		return nil, vectorErrorf(opOuter, err)
	}

	return m, nil
}
