// Package bincode_test contains unit tests for the two total-order
// comparators: reflexivity, antisymmetry, automorphism detection and known
// strict orderings on small hand-checked codes.
package bincode_test

import (
	"testing"

	"github.com/katalvlaran/lvlcode/bincode"
	"github.com/stretchr/testify/require"
)

// identity returns the identity relabeling of length n.
func identity(n int) []int {
	g := make([]int, n)
	for i := range g {
		g[i] = i
	}

	return g
}

// TestCompareLinearReflexive checks that any relabeling compares equal to
// itself.
func TestCompareLinearReflexive(t *testing.T) {
	c, err := bincode.NewLinear(mustDense(t, [][]int{
		{1, 0, 1},
		{0, 1, 1},
	}))
	require.NoError(t, err)

	id := identity(3)
	require.Zero(t, c.Compare(id, id))                         // identity vs itself
	require.Zero(t, c.Compare([]int{2, 0, 1}, []int{2, 0, 1})) // arbitrary vs itself
}

// TestCompareLinearAutomorphism checks that a column permutation preserving
// the span of {101, 011} compares equal to the identity: swapping columns 0
// and 1 maps the codeword set onto itself.
func TestCompareLinearAutomorphism(t *testing.T) {
	c, err := bincode.NewLinear(mustDense(t, [][]int{
		{1, 0, 1},
		{0, 1, 1},
	}))
	require.NoError(t, err)

	require.Zero(t, c.Compare(identity(3), []int{1, 0, 2}))
}

// TestCompareLinearStrictOrder checks a known strict ordering on the span of
// {110}: reading columns in order (0, 2, 1) turns the sole nonzero word into
// 101, which has a zero earlier than 110 and therefore compares smaller.
func TestCompareLinearStrictOrder(t *testing.T) {
	c, err := bincode.NewLinear(mustDense(t, [][]int{{1, 1, 0}}))
	require.NoError(t, err)

	id := identity(3)
	swapped := []int{0, 2, 1}

	require.Equal(t, 1, c.Compare(id, swapped))  // 110 > 101
	require.Equal(t, -1, c.Compare(swapped, id)) // antisymmetry
}

// TestCompareLinearPanicsOnBadLength ensures a relabeling of the wrong
// length panics.
func TestCompareLinearPanicsOnBadLength(t *testing.T) {
	c, err := bincode.NewLinear(mustDense(t, [][]int{{1, 0}}))
	require.NoError(t, err)

	require.Panics(t, func() { c.Compare([]int{0}, identity(2)) })
	require.Panics(t, func() { c.Compare(identity(2), []int{0, 1, 2}) })
}

// TestCompareNonlinearReflexive checks that any relabeling compares equal to
// itself.
func TestCompareNonlinearReflexive(t *testing.T) {
	c, err := bincode.NewNonlinear(mustDense(t, [][]int{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
	}))
	require.NoError(t, err)

	id := identity(4)
	require.Zero(t, c.Compare(id, id))
}

// TestCompareNonlinearAutomorphism checks that swapping columns 0 and 2
// exchanges the two codewords 1000 and 0010 and therefore compares equal to
// the identity.
func TestCompareNonlinearAutomorphism(t *testing.T) {
	c, err := bincode.NewNonlinear(mustDense(t, [][]int{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
	}))
	require.NoError(t, err)

	require.Zero(t, c.Compare(identity(4), []int{2, 1, 0, 3}))
}

// TestCompareNonlinearStrictOrder checks a known strict ordering: reading
// columns in order (1, 0, 2, 3) turns {1000, 0010} into {0100, 0010}, whose
// first column carries fewer ones and therefore compares smaller.
func TestCompareNonlinearStrictOrder(t *testing.T) {
	c, err := bincode.NewNonlinear(mustDense(t, [][]int{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
	}))
	require.NoError(t, err)

	id := identity(4)
	moved := []int{1, 0, 2, 3}

	require.Equal(t, 1, c.Compare(id, moved))  // one 1 in column 0 vs none
	require.Equal(t, -1, c.Compare(moved, id)) // antisymmetry
}

// TestCompareNonlinearDiscreteOrderSuffix checks that a fully discrete word
// order does not mean equality: reading columns (0, 1, 3, 2) agrees with the
// identity on the first two columns, which already sort the three words into
// singletons, yet the third read column differs and must decide the order.
func TestCompareNonlinearDiscreteOrderSuffix(t *testing.T) {
	c, err := bincode.NewNonlinear(mustDense(t, [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{1, 0, 0, 0},
	}))
	require.NoError(t, err)

	id := identity(4)
	tail := []int{0, 1, 3, 2}

	require.Equal(t, 1, c.Compare(id, tail))  // column 2 carries a one, column 3 none
	require.Equal(t, -1, c.Compare(tail, id)) // antisymmetry
}

// TestCompareNonlinearPanicsOnBadLength ensures a relabeling of the wrong
// length panics.
func TestCompareNonlinearPanicsOnBadLength(t *testing.T) {
	c, err := bincode.NewNonlinear(mustDense(t, [][]int{{1, 0}}))
	require.NoError(t, err)

	require.Panics(t, func() { c.Compare([]int{0}, identity(2)) })
}

// TestCompareTotalOrderLaws sweeps a fixed family of relabelings and checks
// antisymmetry and transitivity for both comparators.
func TestCompareTotalOrderLaws(t *testing.T) {
	perms := [][]int{
		{0, 1, 2, 3},
		{1, 0, 2, 3},
		{2, 1, 0, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{0, 2, 1, 3},
	}

	lin, err := bincode.NewLinear(mustDense(t, [][]int{
		{1, 1, 0, 1},
		{0, 1, 1, 0},
	}))
	require.NoError(t, err)
	non, err := bincode.NewNonlinear(mustDense(t, [][]int{
		{1, 0, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 0},
	}))
	require.NoError(t, err)

	for _, c := range []bincode.Code{lin, non} {
		for _, g1 := range perms {
			for _, g2 := range perms {
				ab := c.Compare(g1, g2)
				require.Equal(t, -c.Compare(g2, g1), ab) // antisymmetry

				for _, g3 := range perms {
					bc := c.Compare(g2, g3)
					ac := c.Compare(g1, g3)
					if ab <= 0 && bc <= 0 {
						require.LessOrEqual(t, ac, 0) // transitivity
					}
					if ab >= 0 && bc >= 0 {
						require.GreaterOrEqual(t, ac, 0)
					}
				}
			}
		}
	}
}
