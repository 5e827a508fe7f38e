// SPDX-License-Identifier: MIT

// Package matrix - field helpers over the Scalar constraint.
//
// Purpose:
//   - Give every kernel one vocabulary for the field operations Go operators
//     do not cover: conjugation, squared norm, phase, square root, embedding.
//   - Keep the per-type dispatch in a single place (type switch on any(v)).
//
// AI-Hints:
//   - Add, subtract, multiply and divide are native on Scalar; use them directly.
//   - Reals embed into complex128 with a zero imaginary part (ToComplex).

package matrix

import (
	"math"
	"math/cmplx"
)

// Zero returns the additive identity of T.
func Zero[T Scalar]() T { return T(0) }

// One returns the multiplicative identity of T.
func One[T Scalar]() T { return T(1) }

// Conj returns the complex conjugate of v (identity for real fields).
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	}

	return v
}

// Abs2 returns the squared norm |v|² as float64.
func Abs2[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x) * float64(x)
	case float64:
		return x * x
	case complex64:
		re, im := float64(real(x)), float64(imag(x))
		return re*re + im*im
	case complex128:
		re, im := real(x), imag(x)
		return re*re + im*im
	}

	return 0
}

// Abs returns the norm |v|.
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}

	return 0
}

// ToComplex embeds v into the complex field.
func ToComplex[T Scalar](v T) complex128 {
	switch x := any(v).(type) {
	case float32:
		return complex(float64(x), 0)
	case float64:
		return complex(x, 0)
	case complex64:
		return complex128(x)
	case complex128:
		return x
	}

	return 0
}

// Arg returns the phase of v in (-π, π]; 0 or π for real fields.
func Arg[T Scalar](v T) float64 { return cmplx.Phase(ToComplex(v)) }

// Sqrt returns the principal square root of v.
// Negative reals yield NaN (no promotion to complex); use ToComplex first if
// a complex root is wanted.
func Sqrt[T Scalar](v T) T {
	switch x := any(v).(type) {
	case float32:
		return any(float32(math.Sqrt(float64(x)))).(T)
	case float64:
		return any(math.Sqrt(x)).(T)
	case complex64:
		return any(complex64(cmplx.Sqrt(complex128(x)))).(T)
	case complex128:
		return any(cmplx.Sqrt(x)).(T)
	}

	return v
}

// cis returns e^{iθ}.
func cis(theta float64) complex128 { return cmplx.Rect(1, theta) }
