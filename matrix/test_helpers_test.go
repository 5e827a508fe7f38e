// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/sigurd4/array-matrix/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the default absolute/relative tolerance for round-trip checks.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (materialising) path.
type hide[T matrix.Scalar] struct{ matrix.Matrix[T] }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense[T matrix.Scalar](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a *Dense from a literal or fails the test.
func MustFromRows[T matrix.Scalar](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt[T matrix.Scalar](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet[T matrix.Scalar](t testing.TB, m matrix.Matrix[T], i, j int, v T) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// MustIdentity returns I_n or fails the test.
func MustIdentity[T matrix.Scalar](t testing.TB, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewIdentity[T](n)
	require.NoError(t, err)

	return m
}

// requireClose asserts AllClose(a, b, tol) with a readable failure message.
func requireClose[T matrix.Scalar](t testing.TB, want, got matrix.Matrix[T], tolerance float64) {
	t.Helper()
	ok, err := matrix.AllClose(want, got, tolerance)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\nwant:\n%v\ngot:\n%v", tolerance, want, got)
}

// requireScalarClose asserts |want-got| <= tolerance in the complex plane.
func requireScalarClose[T matrix.Scalar](t testing.TB, want, got T, tolerance float64) {
	t.Helper()
	d := cmplx.Abs(matrix.ToComplex(want) - matrix.ToComplex(got))
	require.LessOrEqualf(t, d, tolerance, "want %v, got %v", want, got)
}

// randomDense fills an r×c float64 matrix from a fixed seed in [-1, 1).
func randomDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewFromFunc(r, c, func(_, _ int) float64 { return rng.Float64()*2 - 1 })
	require.NoError(t, err)

	return m
}

// randomComplexDense fills an r×c complex128 matrix from a fixed seed.
func randomComplexDense(t testing.TB, r, c int, seed int64) *matrix.Dense[complex128] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewFromFunc(r, c, func(_, _ int) complex128 {
		return complex(rng.Float64()*2-1, rng.Float64()*2-1)
	})
	require.NoError(t, err)

	return m
}

// toComplex embeds a real matrix into complex128 for comparison with QR factors.
func toComplex(t testing.TB, m *matrix.Dense[float64]) *matrix.Dense[complex128] {
	t.Helper()
	out, err := matrix.NewFromFunc(m.Rows(), m.Cols(), func(i, j int) complex128 {
		v, _ := m.At(i, j)
		return complex(v, 0)
	})
	require.NoError(t, err)

	return out
}

// leibniz computes det(m) by the permutation sum, independent of the
// package's cofactor recursion.
func leibniz(rows [][]float64) float64 {
	n := len(rows)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	var sum float64
	var rec func(k int, sign float64)
	rec = func(k int, sign float64) {
		if k == n {
			p := sign
			for i := 0; i < n; i++ {
				p *= rows[i][perm[i]]
			}
			sum += p
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			s := sign
			if i != k {
				s = -sign
			}
			rec(k+1, s)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0, 1)

	return sum
}
