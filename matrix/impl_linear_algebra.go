// SPDX-License-Identifier: MIT
// Package matrix: exact integer linear-algebra kernels.
//
// Purpose:
//   - Provide Mul, Transpose, MatVec, Equal and the cofactor family
//     (Minor, Cofactor, Determinant, Adjugate) over plain ints.
//
// Notes:
//   - All kernels validate through validators.go and wrap failures with
//     matrixErrorf(op, err) so callers see "<Op>: <sentinel>".
//   - Inputs are never mutated; every result is a fresh *Dense.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul         = "Mul"
	opMulMod      = "MulMod"
	opTranspose   = "Transpose"
	opMatVec      = "MatVec"
	opMatVecMod   = "MatVecMod"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opAdjugate    = "Adjugate"
	opReduce      = "Reduce"
	opInverseMod  = "InverseMod"
	opModInverse  = "ModInverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product C = A·B.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); flatten both operands to *Dense.
//   - Stage 2: i→k→j triple loop over the flat slices, skipping zero a(i,k).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (Stage 1).
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c) for the result.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int // loop iterators
		av         int // a(i,k)
		rowA, rowB int // flat row offsets into da and db
		rowR       int // flat row offset into res
	)
	for i = 0; i < da.r; i++ {
		rowA = i * da.c
		rowR = i * res.c
		for k = 0; k < da.c; k++ {
			av = da.data[rowA+k]
			if av == 0 {
				continue // contributes nothing
			}
			rowB = k * db.c
			for j = 0; j < db.c; j++ {
				res.data[rowR+j] += av * db.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: Time O(r·c), Space O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			res.data[j*res.c+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// MatVec computes y = m·x over the integers.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != m.Cols()).
//
// Complexity: Time O(r·c), Space O(r).
func MatVec(m Matrix, x []int) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]int, d.r)
	var i, j, base, acc int
	for i = 0; i < d.r; i++ {
		acc = 0
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Equal reports whether a and b have the same shape and identical entries.
// Nil inputs compare equal only to each other.
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	var av, bv int
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j) // in range after shape check
			bv, _ = b.At(i, j)
			if av != bv {
				return false
			}
		}
	}

	return true
}

// Minor returns the (n-1)×(n-1) submatrix of square m with row and col removed.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrBadShape for a 1×1 input (its minor would be empty).
//   - ErrOutOfRange for row/col outside [0, n).
//
// Complexity: Time O(n²), Space O(n²).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.Rows()
	if row < 0 || row >= n || col < 0 || col >= n {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minorOf(d, row, col)
}

// minorOf is the unchecked core of Minor; d must be square and row/col in range.
func minorOf(d *Dense, row, col int) (*Dense, error) {
	res, err := NewDense(d.r-1, d.c-1)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	k := 0
	for i := 0; i < d.r; i++ {
		if i == row {
			continue
		}
		for j := 0; j < d.c; j++ {
			if j == col {
				continue
			}
			res.data[k] = d.data[i*d.c+j]
			k++
		}
	}

	return res, nil
}

// sign returns (-1)^(i+j), the checkerboard sign of a cofactor.
func sign(i, j int) int {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// Determinant computes det(m) exactly by Laplace expansion along the first row.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); flatten to *Dense.
//   - Stage 2: closed forms for n = 1 and n = 2; otherwise recurse on minors,
//     skipping zero pivots in the first row.
//
// Behavior highlights:
//   - Integer-only; the result is exact for any input whose intermediate
//     products fit in int. No rounding is ever applied.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (Stage 1).
//
// Complexity:
//   - Time O(n!) in the worst case, Space O(n²) per recursion level. Intended for
//     the small orders used as cipher keys.
func Determinant(m Matrix) (int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(d)
}

// determinant is the recursive core of Determinant; d must be square.
func determinant(d *Dense) (int, error) {
	switch d.r {
	case 1:
		return d.data[0], nil
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2], nil
	}

	var det int
	for j := 0; j < d.c; j++ {
		pivot := d.data[j]
		if pivot == 0 {
			continue // term vanishes
		}
		sub, err := minorOf(d, 0, j)
		if err != nil {
			return 0, matrixErrorf(opDeterminant, err)
		}
		subDet, err := determinant(sub)
		if err != nil {
			return 0, err
		}
		det += sign(0, j) * pivot * subDet
	}

	return det, nil
}

// Cofactor returns C(i,j) = (-1)^(i+j)·det(Minor(m, i, j)).
// For a 1×1 matrix the only cofactor C(0,0) is 1 by convention.
//
// Errors: as Minor.
func Cofactor(m Matrix, row, col int) (int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	if m.Rows() == 1 {
		if row != 0 || col != 0 {
			return 0, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
		}
		return 1, nil
	}
	sub, err := Minor(m, row, col)
	if err != nil {
		return 0, err
	}
	subDet, err := determinant(sub)
	if err != nil {
		return 0, err
	}

	return sign(row, col) * subDet, nil
}

// Adjugate returns adj(m), the transpose of the cofactor matrix, so that
// m·adj(m) = det(m)·I holds exactly.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: fill the cofactor matrix C(i,j), then return Transpose(C).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (Stage 1).
//
// Complexity:
//   - Time O(n²·(n-1)!), Space O(n²).
//
// Notes:
//   - Replaces the det·inverse(m) shortcut: no floating point, no rounding.
func Adjugate(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	n := m.Rows()
	cof, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	var i, j, c int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if c, err = Cofactor(m, i, j); err != nil {
				return nil, matrixErrorf(opAdjugate, err)
			}
			cof.data[i*n+j] = c
		}
	}
	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}
