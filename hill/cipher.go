// SPDX-License-Identifier: MIT

package hill

import (
	"github.com/katalvlaran/hill/alphabet"
	"github.com/katalvlaran/hill/matrix"
)

// Cipher holds an admissible key together with its inverse mod 26.
// It is immutable after NewCipher and safe for concurrent use.
type Cipher struct {
	key *matrix.Dense // private copy of the caller's key
	inv *matrix.Dense // key⁻¹ mod Modulus
	det int           // det(key) over the integers
}

// NewCipher validates key once and precomputes its modular inverse.
// Errors: ErrNilKey, ErrBadOrder, ErrNotInvertible.
func NewCipher(key matrix.Matrix) (*Cipher, error) {
	det, err := keyDeterminant(key)
	if err != nil {
		return nil, hillErrorf(opNewCipher, err)
	}
	own, err := matrix.Reduce(key, Modulus)
	if err != nil {
		return nil, hillErrorf(opNewCipher, err)
	}
	inv, err := matrix.InverseMod(own, Modulus)
	if err != nil {
		return nil, hillErrorf(opNewCipher, err)
	}

	return &Cipher{key: own, inv: inv, det: det}, nil
}

// Order returns the block length n.
func (c *Cipher) Order() int { return c.key.Rows() }

// Determinant returns det(key) as supplied, before any reduction.
// It is informational; admissibility is decided on the key reduced mod 26.
func (c *Cipher) Determinant() int { return c.det }

// Inverse returns a copy of key⁻¹ mod 26.
func (c *Cipher) Inverse() *matrix.Dense { return c.inv.Clone().(*matrix.Dense) }

// Encode maps message to symbols (case-insensitively), zero-pads it to a
// multiple of the order and returns key·block mod 26 for every block, in order.
// Every returned value lies in [0, 25].
//
// Errors: ErrInvalidCharacter for characters outside A–Z, a–z and space.
func (c *Cipher) Encode(message string) ([]int, error) {
	ns, err := alphabet.ToNumbers(message)
	if err != nil {
		return nil, hillErrorf(opEncode, err)
	}
	out, err := transform(c.key, Pad(ns, c.Order()))
	if err != nil {
		return nil, hillErrorf(opEncode, err)
	}

	return out, nil
}

// Decode applies key⁻¹ mod 26 to every block of numbers and maps the result
// back to text. numbers may hold any ints; they are reduced mod 26.
// Padding added by Encode comes back as trailing spaces.
//
// Errors: ErrMalformedInput when len(numbers) is not a multiple of the order.
func (c *Cipher) Decode(numbers []int) (string, error) {
	out, err := transform(c.inv, numbers)
	if err != nil {
		return "", hillErrorf(opDecode, err)
	}

	return alphabet.ToText(out), nil
}

// Encode validates key and encodes message with it.
// See (*Cipher).Encode.
func Encode(message string, key matrix.Matrix) ([]int, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, hillErrorf(opEncode, err)
	}

	return c.Encode(message)
}

// Decode validates key and decodes numbers with it.
// Errors: ErrNilKey, ErrBadOrder, ErrNotInvertible, ErrMalformedInput.
func Decode(numbers []int, key matrix.Matrix) (string, error) {
	c, err := NewCipher(key)
	if err != nil {
		return "", hillErrorf(opDecode, err)
	}

	return c.Decode(numbers)
}
