// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage and kernels.
// This file intentionally contains ONLY domain-facing types (the field
// constraint, the Matrix interface and the exclusion Index). Errors and
// options live in dedicated files (errors.go, options.go).
package matrix

// Scalar is the field element constraint accepted by every kernel.
// Real fields are embedded into the complex field (zero imaginary part)
// wherever an algorithm needs conjugation or phase (QR, eigenvalues).
//
// Named types are deliberately excluded: field helpers dispatch on the
// dynamic type, and a ~float64 named type would not match.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Matrix represents a two-dimensional mutable array of field elements
// with a shape fixed at construction.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Scalar] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix[T]
}

// IndexKind tells which line(s) an Index excludes.
type IndexKind uint8

const (
	// indexInvalid is the zero value; kernels reject it with ErrBadIndex.
	indexInvalid IndexKind = iota
	// IndexRow excludes one row.
	IndexRow
	// IndexCol excludes one column.
	IndexCol
	// IndexCell excludes one row and one column.
	IndexCell
)

// Index selects what Submatrix/Minor exclude: a single row, a single
// column, or a (row, col) pair. Build it with ExcludeRow, ExcludeCol or
// ExcludeCell; the zero value is invalid.
type Index struct {
	kind     IndexKind
	row, col int
}

// ExcludeRow returns an Index that drops row r.
func ExcludeRow(r int) Index { return Index{kind: IndexRow, row: r} }

// ExcludeCol returns an Index that drops column c.
func ExcludeCol(c int) Index { return Index{kind: IndexCol, col: c} }

// ExcludeCell returns an Index that drops row r and column c.
func ExcludeCell(r, c int) Index { return Index{kind: IndexCell, row: r, col: c} }

// Kind reports which line(s) the index excludes.
func (ix Index) Kind() IndexKind { return ix.kind }

// Row returns the excluded row (meaningful for IndexRow and IndexCell).
func (ix Index) Row() int { return ix.row }

// Col returns the excluded column (meaningful for IndexCol and IndexCell).
func (ix Index) Col() int { return ix.col }

// dropsRow reports whether the index removes a row.
func (ix Index) dropsRow() bool { return ix.kind == IndexRow || ix.kind == IndexCell }

// dropsCol reports whether the index removes a column.
func (ix Index) dropsCol() bool { return ix.kind == IndexCol || ix.kind == IndexCell }
