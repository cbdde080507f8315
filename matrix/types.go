// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the public Matrix interface. Errors and the concrete
// Dense implementation live in dedicated files (errors.go, dense.go).
package matrix

// Matrix represents a two-dimensional mutable array of int values.
// Every kernel in this package accepts the interface and takes a flat fast-path
// when the concrete value is *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (int, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v int) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
