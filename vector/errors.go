// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.

package vector

import "errors"

var (
	// ErrLengthMismatch indicates operands of different lengths.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrCrossDimension indicates a cross product outside 3 or 7 dimensions.
	ErrCrossDimension = errors.New("vector: cross product is defined for 3 or 7 dimensions only")
)
