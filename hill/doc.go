// SPDX-License-Identifier: MIT

// Package hill implements the classical Hill cipher over the 26-letter Latin
// alphabet with space as symbol 0.
//
// 🚀 How it works
//
//	A message is mapped to symbols (alphabet package), right-padded with zeros
//	to a multiple of the key order n, cut into blocks of n symbols, and every
//	block b is replaced by K·b mod 26. Decoding applies K⁻¹ mod 26, the
//	modular inverse of the key.
//
// ✨ Key admissibility
//
//	A key K is admissible iff it is square of order 2 or 3 and
//	gcd(det(K) mod 26, 26) == 1. IsValidKey / ValidateKey are the single gate,
//	applied before both directions so a key is accepted once for both.
//
// ⚙️ Usage:
//
//	key, _ := matrix.NewFromRows([][]int{{2, 3}, {1, 1}})
//	c, err := hill.NewCipher(key)
//	if err != nil {
//	  // ErrNilKey, ErrBadOrder or ErrNotInvertible
//	}
//	nums, _ := c.Encode("HELP")  // [5 13 20 2]
//	text, _ := c.Decode(nums)    // "HELP"
//
// The Hill cipher is a teaching cipher. It offers no security against a
// known-plaintext attack and must not be used to protect data.
//
// A *Cipher is immutable after construction and safe for concurrent use.
package hill
