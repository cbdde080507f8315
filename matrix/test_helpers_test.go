// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for the integer kernels.
//   - Offer a wrapper that hides *Dense so the interface path is exercised.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hill/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through the At-based copy in asDense.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// Fixtures shared by several test files.
var (
	// det = -1 ≡ 25 (mod 26)
	hillKey2 = [][]int{{2, 3}, {1, 1}}
	// det = 441 ≡ 25 (mod 26)
	hillKey3 = [][]int{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}
	// det = -8, shares the factor 2 with 26
	evenKey2 = [][]int{{2, 4}, {6, 8}}
)
