// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Adj, Cofactor and Inverse.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/sigurd4/array-matrix/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestAdjInverse_Concrete2x2(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	det, err := matrix.Det(a)
	require.NoError(t, err)
	require.Equal(t, -2.0, det)

	adj, err := matrix.Adj(a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, -2}, {-3, 1}}, adj.RawRows())

	inv, ok, err := matrix.Inverse(a)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, [][]float64{{-2, 1}, {1.5, -0.5}}, inv.RawRows())
}

func TestAdj_BaseCases(t *testing.T) {
	t.Parallel()

	adj, err := matrix.Adj(MustFromRows(t, [][]float64{{7}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1}}, adj.RawRows())

	cadj, err := matrix.Adj(MustFromRows(t, [][]complex128{{1i, 2}, {3, 4 + 1i}}))
	require.NoError(t, err)
	require.Equal(t, [][]complex128{{4 + 1i, -2}, {-3, 1i}}, cadj.RawRows())
}

// TestAdj_TimesInputIsDetIdentity checks A·adj(A) = det(A)·I and
// adj(A)·A = det(A)·I for sizes 1..6, which exercises both parities of the
// rotation sign rule.
func TestAdj_TimesInputIsDetIdentity(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			a := randomDense(t, n, n, int64(7*n))
			adj, err := matrix.Adj(a)
			require.NoError(t, err)
			det, err := matrix.Det(a)
			require.NoError(t, err)
			want, err := matrix.Scale[float64](MustIdentity[float64](t, n), det)
			require.NoError(t, err)

			left, err := matrix.Mul(a, adj)
			require.NoError(t, err)
			requireClose(t, want, left, tol)

			right, err := matrix.Mul(adj, a)
			require.NoError(t, err)
			requireClose(t, want, right, tol)
		})
	}
}

func TestAdj_ComplexProperty(t *testing.T) {
	t.Parallel()

	for n := 3; n <= 4; n++ {
		a := randomComplexDense(t, n, n, int64(n))
		adj, err := matrix.Adj(a)
		require.NoError(t, err)
		det, err := matrix.Det(a)
		require.NoError(t, err)
		want, err := matrix.Scale[complex128](MustIdentity[complex128](t, n), det)
		require.NoError(t, err)
		got, err := matrix.Mul(a, adj)
		require.NoError(t, err)
		requireClose(t, want, got, tol)
	}
}

func TestCofactor_IsTransposedAdj(t *testing.T) {
	t.Parallel()

	a := randomDense(t, 4, 4, 99)
	adj, err := matrix.Adj(a)
	require.NoError(t, err)
	cof, err := matrix.Cofactor(a)
	require.NoError(t, err)
	adjT, err := matrix.Transpose(adj)
	require.NoError(t, err)
	require.Equal(t, adjT.RawRows(), cof.RawRows())

	// textbook cofactor of a 3×3 entry: C[0][1] = -(a10·a22 - a12·a20)
	b := MustFromRows(t, [][]float64{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}})
	cof, err = matrix.Cofactor(b)
	require.NoError(t, err)
	require.InDelta(t, -(0*6 - 5*1), MustAt(t, cof, 0, 1), 1e-12)
}

func TestInverse_RoundTrip(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 5; n++ {
		a := randomDense(t, n, n, int64(1000+n))
		inv, ok, err := matrix.Inverse(a)
		require.NoError(t, err)
		require.True(t, ok)

		I := MustIdentity[float64](t, n)
		ab, err := matrix.Mul(a, inv)
		require.NoError(t, err)
		requireClose(t, I, ab, 1e-8)
		ba, err := matrix.Mul(inv, a)
		require.NoError(t, err)
		requireClose(t, I, ba, 1e-8)

		// gonum reference
		var ref mat.Dense
		require.NoError(t, ref.Inverse(mat.NewDense(n, n, flatten(a.RawRows()))))
		got := inv.RawRows()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.InDelta(t, ref.At(i, j), got[i][j], 1e-8)
			}
		}
	}
}

func TestInverse_SingularIsAbsent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
	}{
		{"zero 1x1", [][]float64{{0}}},
		{"rank one 2x2", [][]float64{{1, 2}, {2, 4}}},
		{"zero column 3x3", [][]float64{{0, 1, 2}, {0, 3, 4}, {0, 5, 6}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			inv, ok, err := matrix.Inverse(MustFromRows(t, tc.rows))
			require.NoError(t, err)
			require.False(t, ok)
			require.Nil(t, inv)

			_, err = matrix.InverseOf[float64](MustFromRows(t, tc.rows))
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.Inverse(MustDense[float64](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Adj(MustDense[float64](t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Cofactor[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
