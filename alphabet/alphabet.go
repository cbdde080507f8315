// SPDX-License-Identifier: MIT

package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of letters in the alphabet and the cipher modulus.
const Size = 26

// Space is the only non-letter character accepted; it encodes as SpaceCode.
const (
	Space     = ' '
	SpaceCode = 0
)

// ErrInvalidCharacter is returned for any character outside A–Z, a–z and space.
var ErrInvalidCharacter = errors.New("alphabet: invalid character")

// LetterToNumber maps space to 0 and a letter (either case) to its 1-based
// position, A→1 … Z→26.
func LetterToNumber(r rune) (int, error) {
	if r == Space {
		return SpaceCode, nil
	}
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return 0, fmt.Errorf("LetterToNumber(%q): %w", r, ErrInvalidCharacter)
	}

	return int(r-'A') + 1, nil
}

// NumberToLetter is the inverse of LetterToNumber, extended to every int.
func NumberToLetter(n int) rune {
	if n == SpaceCode {
		return Space
	}
	idx := (n - 1) % Size
	if idx < 0 {
		idx += Size
	}

	return rune('A' + idx)
}

// ToNumbers maps every character of s. The error names the first offending
// character and its byte offset.
func ToNumbers(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for off, r := range s {
		n, err := LetterToNumber(r)
		if err != nil {
			return nil, fmt.Errorf("ToNumbers: offset %d: %w", off, err)
		}
		out = append(out, n)
	}

	return out, nil
}

// ToText maps every symbol back to a character.
func ToText(ns []int) string {
	var sb strings.Builder
	sb.Grow(len(ns))
	for _, n := range ns {
		sb.WriteRune(NumberToLetter(n))
	}

	return sb.String()
}
