// SPDX-License-Identifier: MIT
// Package hill: sentinel error set.
// Every message is prefixed with "hill: ..."; operations wrap them with an
// operation tag so callers match via errors.Is.

package hill

import (
	"errors"

	"github.com/katalvlaran/hill/alphabet"
	"github.com/katalvlaran/hill/matrix"
)

var (
	// ErrNilKey is returned when a nil key matrix is supplied.
	ErrNilKey = errors.New("hill: nil key")

	// ErrBadOrder is returned when the key is not square of order MinOrder..MaxOrder.
	ErrBadOrder = errors.New("hill: key must be a square matrix of order 2 or 3")

	// ErrMalformedInput is returned when a ciphertext length is not a multiple
	// of the key order.
	ErrMalformedInput = errors.New("hill: ciphertext length is not a multiple of the key order")
)

// ErrNotInvertible is returned when det(K) mod 26 shares a factor with 26.
// It is the matrix package sentinel so errors.Is matches either name.
var ErrNotInvertible = matrix.ErrNotInvertible

// ErrInvalidCharacter is returned for message characters outside A–Z and space.
var ErrInvalidCharacter = alphabet.ErrInvalidCharacter
