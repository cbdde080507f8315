// SPDX-License-Identifier: MIT

package hill

import (
	"fmt"

	"github.com/katalvlaran/hill/matrix"
)

// Pad returns a copy of ns right-padded with zeros to a multiple of n.
// n must be positive.
func Pad(ns []int, n int) []int {
	padded := len(ns)
	if rem := padded % n; rem != 0 {
		padded += n - rem
	}
	out := make([]int, padded)
	copy(out, ns)

	return out
}

// Blocks splits ns into consecutive sub-slices of length n. The blocks alias ns.
// It fails with ErrMalformedInput when len(ns) is not a multiple of n.
func Blocks(ns []int, n int) ([][]int, error) {
	if n <= 0 || len(ns)%n != 0 {
		return nil, fmt.Errorf("length %d, order %d: %w", len(ns), n, ErrMalformedInput)
	}
	out := make([][]int, 0, len(ns)/n)
	for i := 0; i < len(ns); i += n {
		out = append(out, ns[i:i+n:i+n])
	}

	return out, nil
}

// transform applies m·block mod Modulus to every block of ns and returns the
// concatenation in block order. len(ns) must be a multiple of m.Rows().
func transform(m matrix.Matrix, ns []int) ([]int, error) {
	blocks, err := Blocks(ns, m.Cols())
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(ns))
	for i, b := range blocks {
		y, err := matrix.MatVecMod(m, b, Modulus)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		out = append(out, y...)
	}

	return out, nil
}
