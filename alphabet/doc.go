// SPDX-License-Identifier: MIT

// Package alphabet maps between message characters and the numeric symbols a
// Hill cipher operates on.
//
// The mapping is fixed:
//
//	' ' → 0
//	'A' → 1, 'B' → 2, …, 'Z' → 26   (lower case is folded to upper case)
//
// The reverse mapping is total over all integers: 0 is a space and any other n
// selects the ((n-1) mod 26)+1-th letter, so 26 and 0 both survive a trip
// through arithmetic mod 26 as a valid character.
//
// Characters outside A–Z, a–z and space are rejected with ErrInvalidCharacter.
package alphabet
