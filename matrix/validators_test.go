// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/hill/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquareNonNil covers nil inputs, typed nil, square and non-square cases.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"1x1", mustRows(t, [][]int{{1}}), nil},
		{"3x3", mustRows(t, hillKey3), nil},
		{"2x3", mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}}), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

// TestValidateVecLenAndModulus covers the scalar-shaped validators.
func TestValidateVecLenAndModulus(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]int{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]int{1, 2}, 2))

	require.ErrorIs(t, matrix.ValidateModulus(1), matrix.ErrBadModulus)
	require.ErrorIs(t, matrix.ValidateModulus(-26), matrix.ErrBadModulus)
	require.NoError(t, matrix.ValidateModulus(26))
}
