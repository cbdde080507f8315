// SPDX-License-Identifier: MIT

package hill

import (
	"fmt"

	"github.com/katalvlaran/hill/alphabet"
	"github.com/katalvlaran/hill/matrix"
)

// Supported key orders.
const (
	MinOrder = 2
	MaxOrder = 3
)

// Modulus is the size of the alphabet; all cipher arithmetic is mod Modulus.
const Modulus = alphabet.Size

const (
	opValidateKey = "ValidateKey"
	opEncode      = "Encode"
	opDecode      = "Decode"
	opNewCipher   = "NewCipher"
)

// hillErrorf wraps err with an operation tag, preserving it for errors.Is.
func hillErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateKey reports why key is not admissible, or nil if it is.
//
// Checks, in order:
//   - non-nil                       → ErrNilKey
//   - square, order 2 or 3          → ErrBadOrder
//   - gcd(det mod 26, 26) == 1      → ErrNotInvertible
//
// The key is never modified.
func ValidateKey(key matrix.Matrix) error {
	_, err := keyDeterminant(key)
	return err
}

// IsValidKey reports whether key can be used to encode and decode.
// It is a pure predicate: repeated calls on the same matrix agree.
func IsValidKey(key matrix.Matrix) bool {
	return ValidateKey(key) == nil
}

// keyDeterminant runs the admissibility gate and returns det(key) on success.
// The gate works on key reduced mod Modulus, the same matrix NewCipher
// inverts; the returned determinant is the unreduced one, kept for display.
func keyDeterminant(key matrix.Matrix) (int, error) {
	if matrix.ValidateNotNil(key) != nil {
		return 0, hillErrorf(opValidateKey, ErrNilKey)
	}
	r, c := key.Rows(), key.Cols()
	if r != c || r < MinOrder || r > MaxOrder {
		return 0, hillErrorf(opValidateKey, fmt.Errorf("got %dx%d: %w", r, c, ErrBadOrder))
	}
	reduced, err := matrix.Reduce(key, Modulus)
	if err != nil {
		return 0, hillErrorf(opValidateKey, err)
	}
	detMod, err := matrix.Determinant(reduced)
	if err != nil {
		return 0, hillErrorf(opValidateKey, err)
	}
	det, err := matrix.Determinant(key)
	if err != nil {
		return 0, hillErrorf(opValidateKey, err)
	}
	if g := matrix.GCD(matrix.Mod(detMod, Modulus), Modulus); g != 1 {
		return 0, hillErrorf(opValidateKey,
			fmt.Errorf("determinant %d is not coprime with %d: %w", det, Modulus, ErrNotInvertible))
	}

	return det, nil
}
