// Package binmat_test contains unit tests for the Dense 0/1 matrix.
package binmat_test

import (
	"testing"

	"github.com/katalvlaran/lvlcode/binmat"
	"github.com/katalvlaran/lvlcode/bitset"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidShape ensures that New rejects non-positive dimensions.
func TestNewInvalidShape(t *testing.T) {
	_, err := binmat.New(0, 5)                   // zero rows
	require.ErrorIs(t, err, binmat.ErrBadShape)  // expect ErrBadShape

	_, err = binmat.New(5, 0)                    // zero columns
	require.ErrorIs(t, err, binmat.ErrBadShape)  // expect ErrBadShape

	_, err = binmat.New(-1, -1)                  // negative both ways
	require.ErrorIs(t, err, binmat.ErrBadShape)  // expect ErrBadShape
}

// TestFromRowsValidation covers shape, raggedness and binarity failures.
func TestFromRowsValidation(t *testing.T) {
	_, err := binmat.FromRows(nil) // no rows at all
	require.ErrorIs(t, err, binmat.ErrBadShape)

	_, err = binmat.FromRows([][]int{{}}) // an empty row
	require.ErrorIs(t, err, binmat.ErrBadShape)

	_, err = binmat.FromRows([][]int{{1, 0}, {1}}) // second row too short
	require.ErrorIs(t, err, binmat.ErrRaggedRows)

	_, err = binmat.FromRows([][]int{{1, 2}}) // 2 is not a binary entry
	require.ErrorIs(t, err, binmat.ErrNotBinary)
}

// TestFromRowsRoundTrip verifies entries land where they were supplied.
func TestFromRowsRoundTrip(t *testing.T) {
	m, err := binmat.FromRows([][]int{
		{1, 0, 1},
		{0, 1, 1},
	})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v)

	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

// TestAtSetBounds ensures At and Set return ErrOutOfRange on invalid access,
// and that Set enforces binary entries.
func TestAtSetBounds(t *testing.T) {
	m, err := binmat.New(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, binmat.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, binmat.ErrOutOfRange)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, binmat.ErrOutOfRange)

	err = m.Set(0, 0, 7) // in bounds but not binary
	require.ErrorIs(t, err, binmat.ErrNotBinary)

	err = m.Set(0, 0, 1) // valid write
	require.NoError(t, err)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

// TestRowBits verifies the bit-packed row export and its guards.
func TestRowBits(t *testing.T) {
	m, err := binmat.FromRows([][]int{{1, 0, 1, 1}})
	require.NoError(t, err)

	dst := bitset.New(4)
	require.NoError(t, m.RowBits(0, dst))
	require.Equal(t, "1011", dst.String()) // row pattern preserved

	// Export overwrites previous contents.
	dst.SetBit(1)
	require.NoError(t, m.RowBits(0, dst))
	require.False(t, dst.Check(1))

	require.ErrorIs(t, m.RowBits(1, dst), binmat.ErrOutOfRange)   // no row 1
	require.ErrorIs(t, m.RowBits(0, nil), binmat.ErrNilMatrix)    // nil destination
	wrong := bitset.New(5)
	require.ErrorIs(t, m.RowBits(0, wrong), binmat.ErrLengthMismatch) // capacity mismatch
}

// TestCloneIndependence ensures Clone returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := binmat.FromRows([][]int{{1, 0}, {0, 1}})
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 0)) // modify the clone only

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v) // original unchanged

	v, err = clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v) // clone reflects new value
}

// TestStringOutput checks that String formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := binmat.FromRows([][]int{{1, 0}, {0, 1}})
	require.NoError(t, err)
	require.Equal(t, "[1 0]\n[0 1]\n", m.String())
}
