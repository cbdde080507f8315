// SPDX-License-Identifier: MIT
package hill_test

import (
	"testing"

	"github.com/katalvlaran/hill/hill"
	"github.com/stretchr/testify/require"
)

// TestPad checks zero-padding to a multiple of the order without aliasing.
func TestPad(t *testing.T) {
	in := []int{8, 9}
	require.Equal(t, []int{8, 9, 0}, hill.Pad(in, 3))
	require.Equal(t, []int{8, 9}, hill.Pad(in, 2))
	require.Equal(t, []int{}, hill.Pad(nil, 2))

	out := hill.Pad(in, 2)
	out[0] = 1
	require.Equal(t, 8, in[0])
}

// TestBlocks checks partitioning and the ragged-length failure.
func TestBlocks(t *testing.T) {
	blocks, err := hill.Blocks([]int{8, 5, 12, 16}, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{8, 5}, {12, 16}}, blocks)

	_, err = hill.Blocks([]int{1, 2, 3}, 2)
	require.ErrorIs(t, err, hill.ErrMalformedInput)

	_, err = hill.Blocks([]int{1, 2}, 0)
	require.ErrorIs(t, err, hill.ErrMalformedInput)
}
