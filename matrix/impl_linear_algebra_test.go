// Package matrix_test contains unit tests for the structural collaborators.
package matrix_test

import (
	"testing"

	"github.com/sigurd4/array-matrix/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- Add / Sub ----------

func TestAdd_FastPathAndFallback(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]float64{{6, 5, 4}, {3, 2, 1}})
	want := MustFromRows(t, [][]float64{{7, 7, 7}, {7, 7, 7}})

	got, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, want.RawRows(), got.RawRows())

	got2, err := matrix.Add[float64](hide[float64]{a}, b)
	require.NoError(t, err)
	require.Equal(t, got.RawRows(), got2.RawRows())

	// inputs untouched
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, a.RawRows())
}

func TestSub_Succeeds(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]complex128{{5 + 1i, 4}, {3, 2 - 2i}})
	b := MustFromRows(t, [][]complex128{{1, 1i}, {1, 1}})
	got, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]complex128{{4 + 1i, 4 - 1i}, {2, 1 - 2i}}, got.RawRows())
}

func TestAddSub_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a := MustDense[float64](t, 3, 4)
	b := MustDense[float64](t, 3, 5)
	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add[float64](nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Scale / Div / Hadamard ----------

func TestScaleDivHadamard(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, -2}, {3, 4}})

	s, err := matrix.Scale[float64](a, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, -4}, {6, 8}}, s.RawRows())

	d, err := matrix.Div[float64](s, 2)
	require.NoError(t, err)
	require.Equal(t, a.RawRows(), d.RawRows())

	h, err := matrix.Hadamard(a, a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {9, 16}}, h.RawRows())

	_, err = matrix.Hadamard(a, MustDense[float64](t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// ---------- Mul / MatVec ----------

func TestMul_RectangularAndFallback(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, want, got.RawRows())

	got, err = matrix.Mul[float64](a, hide[float64]{b})
	require.NoError(t, err)
	require.Equal(t, want, got.RawRows())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_Complex(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]complex128{{1i, 0}, {0, 1}})
	got, err := matrix.Mul(a, a)
	require.NoError(t, err)
	require.Equal(t, [][]complex128{{-1, 0}, {0, 1}}, got.RawRows())
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec[float64](a, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, y)

	_, err = matrix.MatVec[float64](a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// ---------- Transpose / Conjugate / Herm ----------

func TestTransposeConjugateHerm(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]complex128{{1 + 1i, 2}, {3, 4 - 2i}, {5i, 6}})

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, [][]complex128{{1 + 1i, 3, 5i}, {2, 4 - 2i, 6}}, tr.RawRows())

	cj, err := matrix.Conjugate(a)
	require.NoError(t, err)
	require.Equal(t, [][]complex128{{1 - 1i, 2}, {3, 4 + 2i}, {-5i, 6}}, cj.RawRows())

	h, err := matrix.Herm(a)
	require.NoError(t, err)
	require.Equal(t, [][]complex128{{1 - 1i, 3, -5i}, {2, 4 + 2i, 6}}, h.RawRows())

	// involution
	hh, err := matrix.Herm(h)
	require.NoError(t, err)
	require.Equal(t, a.RawRows(), hh.RawRows())
}

func TestHerm_RealEqualsTranspose(t *testing.T) {
	t.Parallel()

	a := randomDense(t, 3, 5, 7)
	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	h, err := matrix.Herm(a)
	require.NoError(t, err)
	require.Equal(t, tr.RawRows(), h.RawRows())
}

// ---------- Trace / Diag ----------

func TestTraceDiag(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	tr, err := matrix.Trace(a)
	require.NoError(t, err)
	require.Equal(t, 15.0, tr)

	d, err := matrix.Diag(MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 5}, d)

	_, err = matrix.Trace(MustDense[float64](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// ---------- Kronecker / Outer ----------

func TestKronecker(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{0, 5}, {6, 7}})
	got, err := matrix.Kronecker(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0, 5, 0, 10},
		{6, 7, 12, 14},
		{0, 15, 0, 20},
		{18, 21, 24, 28},
	}, got.RawRows())

	// rectangular shapes: (1×2) ⊗ (2×1) = 2×2
	got, err = matrix.Kronecker(MustFromRows(t, [][]float64{{1, 2}}), MustFromRows(t, [][]float64{{3}, {4}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 6}, {4, 8}}, got.RawRows())
}

func TestOuter(t *testing.T) {
	t.Parallel()

	got, err := matrix.Outer([]float64{1, 2}, []float64{3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 4, 5}, {6, 8, 10}}, got.RawRows())

	_, err = matrix.Outer([]float64{}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// ---------- AllClose ----------

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]complex128{{1 + 1i, 2}})
	b := MustFromRows(t, [][]complex128{{1 + 1i + 1e-12, 2 - 1e-12i}})
	c := MustFromRows(t, [][]complex128{{1 + 1.1i, 2}})

	ok, err := matrix.AllClose(a, b, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, c, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense[complex128](t, 2, 1), 1e-9)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
