// SPDX-License-Identifier: MIT

// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for cache friendliness.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of int values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int   // number of rows and columns
	data []int // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// NewFromRows builds a Dense matrix from a slice of equally long rows.
// The input is copied; later changes to rows do not affect the result.
//
// Errors:
//   - ErrBadShape if rows is empty, any row is empty, or rows are ragged.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]int) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]int, 0, r*c)}
	for i, row := range rows {
		if len(row) != c { // ragged input
			return nil, fmt.Errorf("NewFromRows: row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	copyData := make([]int, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// ToRows returns the matrix as a fresh slice of rows.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]int {
	out := make([][]int, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = append([]int(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// String implements fmt.Stringer, one bracketed row per line.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(m.data[i*m.c+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// asDense returns m itself when it is already *Dense, otherwise a Dense copy
// built through the interface. Kernels use it to run a single flat code path.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v int
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}
