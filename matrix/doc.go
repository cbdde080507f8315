// SPDX-License-Identifier: MIT

// Package matrix provides small integer matrices and the exact modular
// linear algebra a Hill cipher needs.
//
// The matrix package provides:
//
//   - Dense: a row-major integer matrix with bounds-checked At/Set and deep Clone.
//   - Exact kernels: Mul, Transpose, Determinant (cofactor expansion), Adjugate.
//   - Modular kernels: Mod, GCD, ModInverse, MulMod, MatVecMod, InverseMod.
//   - Validators: a single source of truth for nil/shape/length checks.
//
// Everything is computed with integer arithmetic. No floating point is used, so
// determinants and inverses are exact; there is no rounding step.
//
// Matrices here are expected to be tiny (order 2 or 3 for Hill keys). Cofactor
// expansion is O(n!) and is chosen for exactness, not asymptotics.
//
// See example_test.go for usage patterns.
package matrix
