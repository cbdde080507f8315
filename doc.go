// Package hillcipher is a small, exact implementation of the classical Hill
// cipher: polygraphic substitution with a key matrix over Z/26Z.
//
// Under the hood, everything is organized under a few subpackages:
//
//	alphabet/: letters ↔ symbols (space → 0, A..Z → 1..26)
//	matrix/  : integer Dense matrices, exact determinant/adjugate, mod-m kernels
//	hill/    : key validation, block codec, Cipher (Encode / Decode)
//	cmd/hill/: command-line shell: encode, decode, validate, interactive
//
// Quick example:
//
//	key  [[2 3] [1 1]]   det = -1 ≡ 25 (mod 26)
//	HELP → [8 5 12 16] → [5 13 20 2]
//
// The Hill cipher is a teaching cipher. It is linear and falls to a
// known-plaintext attack; never use it to protect real data.
//
//	go get github.com/katalvlaran/hill
package hillcipher
