// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for iterative kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Only Eigenvalues consumes options today. The fixed-form kernels
//     (Det, Adj, Inverse, QRHouseholder) have nothing to tune.
package matrix

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

// DefaultEigenIterations is the number of unshifted QR steps Eigenvalues runs
// before reading the estimates. It is a budget, not a convergence bound.
const DefaultEigenIterations = 1000

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicIterationsInvalid = "matrix: WithIterations: n must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (last one wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	iterations int         // DefaultEigenIterations
	logger     *zap.Logger // never nil after gatherOptions
}

// WithIterations sets the unshifted QR iteration budget used by Eigenvalues.
// n == 0 is legal: the estimates then come from a single factorization of
// the input. Panics on n < 0.
func WithIterations(n int) Option {
	if n < 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.iterations = n }
}

// WithLogger routes debug traces of iterative kernels to l.
// A nil logger restores the silent default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() Options {
	return Options{
		iterations: DefaultEigenIterations,
		logger:     zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults in order.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Iterations reports the effective iteration budget.
func (o Options) Iterations() int { return o.iterations }
