// Package binmat: Dense is a concrete, row-major 0/1 matrix,
// storing entries in a flat byte slice for performance and cache friendliness.
package binmat

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlcode/bitset"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of binary (0/1) values.
// r is rows, c is columns, and data holds r*c bytes in row-major order;
// every byte is 0 or 1 by construction.
type Dense struct {
	r, c int    // number of rows and columns
	data []byte // flat backing storage, length == r*c
}

// New creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice
	data := make([]byte, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromRows builds a Dense from caller-supplied integer rows.
// Stage 1 (Validate): non-empty, rectangular, entries in {0,1}.
// Stage 2 (Execute): copy entries into flat storage.
// Errors: ErrBadShape, ErrRaggedRows, ErrNotBinary.
// Complexity: O(r*c).
func FromRows(rows [][]int) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])

	// Allocate via New to share the shape validation
	m, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}

	// Copy with per-entry validation
	var i, j int
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrRaggedRows)
		}
		for j = 0; j < cols; j++ {
			switch rows[i][j] {
			case 0:
				// zero value already in place
			case 1:
				m.data[i*cols+j] = 1
			default:
				return nil, fmt.Errorf("FromRows: row %d col %d: %w", i, j, ErrNotBinary)
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col) as 0 or 1.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return int(m.data[idx]), nil
}

// Set assigns value v at (row, col); v must be 0 or 1.
// Stage 1 (Validate): bounds check via indexOf, binarity check on v.
// Stage 2 (Execute): write into data slice.
// Errors: ErrOutOfRange, ErrNotBinary.
// Complexity: O(1).
func (m *Dense) Set(row, col, v int) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Enforce the binary-entry policy
	if v != 0 && v != 1 {
		return denseErrorf("Set", row, col, ErrNotBinary)
	}
	// Assign value
	m.data[idx] = byte(v)

	return nil
}

// RowBits exports row i into dst, one bit per column.
// Stage 1 (Validate): row bounds, dst capacity == Cols.
// Stage 2 (Execute): zero dst, set a bit per nonzero entry.
// Errors: ErrOutOfRange, ErrNilMatrix, ErrLengthMismatch.
// Complexity: O(c).
func (m *Dense) RowBits(i int, dst *bitset.Set) error {
	// Validate destination first; a nil bitset is a caller fault we surface.
	if dst == nil {
		return denseErrorf("RowBits", i, 0, ErrNilMatrix)
	}
	if dst.Len() != m.c {
		return denseErrorf("RowBits", i, 0, ErrLengthMismatch)
	}
	// Validate row bounds
	if i < 0 || i >= m.r {
		return denseErrorf("RowBits", i, 0, ErrOutOfRange)
	}

	// Overwrite dst with the row's incidence pattern
	dst.Zero()
	base := i * m.c
	for j := 0; j < m.c; j++ {
		if m.data[base+j] != 0 {
			dst.SetBit(j)
		}
	}

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	// Allocate new slice for data copy
	copyData := make([]byte, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteByte('[')
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			b.WriteByte('0' + m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
