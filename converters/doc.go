// Package converters provides two-way adapters between matrix.Dense and
// gonum's mat package:
//   - mat.Dense  ⇄ matrix.Dense[float64]
//   - mat.CDense ⇄ matrix.Dense[complex128] (any field embeds on export)
//
// Use converters to hand small engine results to gonum's LAPACK-backed
// routines, or to cross-check engine results against them
// (GonumEigenvalues).
package converters
