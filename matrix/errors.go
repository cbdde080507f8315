// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX) so the
// caller sees "<Op>: matrix: ..." and can still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> dimension mismatch -> arithmetic (not invertible).

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0)
	// or when row slices passed to NewFromRows are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, a non-square input to Determinant, or a
	// vector whose length differs from the column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadModulus signals a modulus below 2; residues are undefined there.
	ErrBadModulus = errors.New("matrix: modulus must be >= 2")

	// ErrNotInvertible is returned when a value (or a matrix determinant) has no
	// multiplicative inverse modulo the requested modulus, i.e. gcd(a mod m, m) != 1.
	ErrNotInvertible = errors.New("matrix: not invertible modulo m")
)
