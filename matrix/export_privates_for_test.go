// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Helpers and Options Snapshot
//
// Purpose:
//   - Expose UNEXPORTED helpers (sign rule, rotation order, options state) to matrix_test ONLY.
//   - File name ends in _test.go, so it never ships in production builds.
//
// Provided Surface:
//   - CofactorSign_TestOnly / RotatedLines_TestOnly: thin pass-through wrappers.
//   - OptionsSnapshot + DefaultOptionsSnapshot_TestOnly / GatherOptionsSnapshot_TestOnly:
//     stable, read-only view of internal Options.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

import "go.uber.org/zap"

// Panic message exports to avoid "magic strings" in tests.
const PanicIterationsInvalid_TestOnly = panicIterationsInvalid

// CofactorSign_TestOnly exposes cofactorSign for float64.
func CofactorSign_TestOnly(i, j, n int) float64 { return cofactorSign[float64](i, j, n) }

// RotatedLines_TestOnly exposes rotatedLines.
func RotatedLines_TestOnly(n, skip int) []int { return rotatedLines(n, skip) }

// OptionsSnapshot is a read-only view of the effective Options.
type OptionsSnapshot struct {
	Iterations int
	Logger     *zap.Logger
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{Iterations: o.iterations, Logger: o.logger}
}

// DefaultOptionsSnapshot_TestOnly returns the zero-configuration snapshot.
func DefaultOptionsSnapshot_TestOnly() OptionsSnapshot { return snapshotOf(defaultOptions()) }

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}
