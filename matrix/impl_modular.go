// SPDX-License-Identifier: MIT
// Package matrix: modular arithmetic over Z/mZ.
//
// Purpose:
//   - Scalar helpers: Mod (floor modulo), GCD, ModInverse (extended Euclid).
//   - Matrix kernels: Reduce, MulMod, MatVecMod, InverseMod.
//
// Every residue returned by this file lies in [0, mod).

package matrix

import "fmt"

// Mod returns a reduced into [0, m), i.e. floor modulo.
// Go's % keeps the sign of the dividend; Mod(-1, 26) is 25, not -1.
// m must be positive.
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// ModInverse returns x in [0, m) with a·x ≡ 1 (mod m).
// Implementation:
//   - Stage 1: ValidateModulus(m); reduce a into [0, m).
//   - Stage 2: extended Euclid on (a, m), tracking only the coefficient of a.
//
// Errors:
//   - ErrBadModulus when m < 2.
//   - ErrNotInvertible when gcd(a mod m, m) != 1.
//
// Complexity: O(log m).
func ModInverse(a, m int) (int, error) {
	if err := ValidateModulus(m); err != nil {
		return 0, matrixErrorf(opModInverse, err)
	}
	a = Mod(a, m)

	// Invariant: oldR ≡ oldS·a and r ≡ s·a (mod m).
	oldR, r := a, m
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, matrixErrorf(opModInverse, fmt.Errorf("gcd(%d, %d) = %d: %w", a, m, oldR, ErrNotInvertible))
	}

	return Mod(oldS, m), nil
}

// Reduce returns a copy of m with every entry reduced into [0, mod).
// Complexity: Time O(r·c), Space O(r·c).
func Reduce(m Matrix, mod int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	res := &Dense{r: d.r, c: d.c, data: make([]int, len(d.data))}
	for idx, v := range d.data {
		res.data[idx] = Mod(v, mod)
	}

	return res, nil
}

// MulMod computes (A·B) mod mod entrywise.
// Both operands are reduced first, so entries of any size are accepted.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrBadModulus.
func MulMod(a, b Matrix, mod int) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	ra, err := Reduce(a, mod)
	if err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	rb, err := Reduce(b, mod)
	if err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	prod, err := Mul(ra, rb)
	if err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}
	for idx, v := range prod.data {
		prod.data[idx] = Mod(v, mod)
	}

	return prod, nil
}

// MatVecMod computes y = (m·x) mod mod with every y[i] in [0, mod).
// Implementation:
//   - Stage 1: validate m, x and mod.
//   - Stage 2: row-major dot products; both factors are reduced before each
//     product and the running sum is reduced after it.
//
// Inputs:
//   - m: non-nil r×c matrix; entries may be any int.
//   - x: vector of length c; entries may be any int (negative or near math.MaxInt).
//   - mod: modulus >= 2.
//
// Behavior highlights:
//   - Intermediates stay below mod², so no entry of m or x can overflow the sum.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrBadModulus.
//
// Complexity: Time O(r·c), Space O(r+c).
func MatVecMod(m Matrix, x []int, mod int) ([]int, error) {
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opMatVecMod, err)
	}
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVecMod, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVecMod, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVecMod, err)
	}

	xr := make([]int, len(x))
	for j, v := range x {
		xr[j] = Mod(v, mod)
	}
	y := make([]int, d.r)
	var i, j, base, acc int
	for i = 0; i < d.r; i++ {
		acc = 0
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc = Mod(acc+Mod(d.data[base+j], mod)*xr[j], mod)
		}
		y[i] = acc
	}

	return y, nil
}

// InverseMod returns the inverse of square m over Z/mod Z:
// M⁻¹ ≡ det(m)⁻¹ · adj(m) (mod mod).
// Implementation:
//   - Stage 1: validate shape and modulus.
//   - Stage 2: exact Determinant, then ModInverse(det, mod).
//   - Stage 3: exact Adjugate reduced mod `mod`, scaled by det⁻¹, reduced again.
//
// Behavior highlights:
//   - Exact: the result satisfies MulMod(m, inv, mod) == I for every admissible m.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (Stage 1), ErrBadModulus (Stage 1).
//   - ErrNotInvertible when gcd(det mod mod, mod) != 1 (Stage 2).
//
// Complexity:
//   - Dominated by Adjugate; trivial for orders 2 and 3.
func InverseMod(m Matrix, mod int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}

	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	detInv, err := ModInverse(det, mod)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}

	adj, err := Adjugate(m)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	for idx, v := range adj.data {
		adj.data[idx] = Mod(detInv*Mod(v, mod), mod)
	}

	return adj, nil
}
