// Package bincode_test contains unit tests for the one-directional pruning
// heuristic: validation, the coarse-partition false case, the near-discrete
// true cases and the stalled pair whose transposition the comparator rejects.
package bincode_test

import (
	"testing"

	"github.com/katalvlaran/lvlcode/bincode"
	"github.com/katalvlaran/lvlcode/partition"
	"github.com/stretchr/testify/require"
)

// TestAllChildrenEquivalentValidation ensures nil arguments and domain
// mismatches are rejected.
func TestAllChildrenEquivalentValidation(t *testing.T) {
	c, err := bincode.NewLinear(mustDense(t, [][]int{{1, 0, 1}}))
	require.NoError(t, err)

	_, err = bincode.AllChildrenEquivalent(nil, c)
	require.ErrorIs(t, err, bincode.ErrNilStack)
	cols := newColStack(t, c)
	_, err = bincode.AllChildrenEquivalent(cols, nil)
	require.ErrorIs(t, err, bincode.ErrNilCode)
	wrong, err := partition.NewStack(7, c.NWords())
	require.NoError(t, err)
	_, err = bincode.AllChildrenEquivalent(wrong, c)
	require.ErrorIs(t, err, bincode.ErrDomainMismatch)
}

// TestAllChildrenEquivalentCoarse checks that a virgin structure, with both
// partitions one cell, is never declared equivalent.
func TestAllChildrenEquivalentCoarse(t *testing.T) {
	c, err := bincode.NewLinear(mustDense(t, [][]int{
		{1, 0, 1},
		{0, 1, 1},
	}))
	require.NoError(t, err)
	cols := newColStack(t, c)

	ok, err := bincode.AllChildrenEquivalent(cols, c)
	require.NoError(t, err)
	require.False(t, ok) // slack (3-1)+(4-1) = 5 is far from discrete
}

// TestAllChildrenEquivalentDiscrete checks the zero-slack case: a structure
// with one column and one word has both partitions trivially discrete.
func TestAllChildrenEquivalentDiscrete(t *testing.T) {
	c, err := bincode.NewNonlinear(mustDense(t, [][]int{{1}}))
	require.NoError(t, err)
	cols := newColStack(t, c)

	ok, err := bincode.AllChildrenEquivalent(cols, c)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestAllChildrenEquivalentOneCellOfTwo checks the slack-one case: a single
// size-2 column cell whose transposition the comparator confirms as an
// automorphism.
func TestAllChildrenEquivalentOneCellOfTwo(t *testing.T) {
	// Two identical columns: the word side is discrete after refinement
	// (weights 0 and 2 differ) and the column side keeps one pair.
	c, err := bincode.NewNonlinear(mustDense(t, [][]int{
		{1, 1},
		{0, 0},
	}))
	require.NoError(t, err)
	cols := newColStack(t, c)

	_, err = bincode.Refine(cols, c, nil)
	require.NoError(t, err)

	ok, err := bincode.AllChildrenEquivalent(cols, c)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestAllChildrenEquivalentBoundPair checks that slack one alone proves
// nothing: refinement stalls on columns 2 and 3 of this code, yet swapping
// them maps 0110 to 0101, which is not a codeword, so the pair must not be
// declared equivalent.
func TestAllChildrenEquivalentBoundPair(t *testing.T) {
	c, err := bincode.NewNonlinear(mustDense(t, [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{1, 0, 0, 0},
	}))
	require.NoError(t, err)
	cols := newColStack(t, c)

	_, err = bincode.Refine(cols, c, nil)
	require.NoError(t, err)
	require.False(t, cols.IsDiscrete()) // the pair survives refinement

	ok, err := bincode.AllChildrenEquivalent(cols, c)
	require.NoError(t, err)
	require.False(t, ok)
}
