// Package bincode: Nonlinear is the explicit-word representation.
package bincode

import (
	"github.com/katalvlaran/lvlcode/binmat"
	"github.com/katalvlaran/lvlcode/bitset"
)

// Nonlinear is a binary code given by an explicit list of codewords, one per
// input matrix row. nwords is unconstrained except by available memory.
type Nonlinear struct {
	degree int // number of columns
	nwords int // number of stored codewords

	words []*bitset.Set // stored codewords, capacity degree each

	scr *scratch

	// Comparator arenas: double-buffered word orderings per relabeling copy
	// plus the shared block dividers, overwritten by every CompareNonlinear
	// call.
	permA, permB []int
	nextA, nextB []int
	div, divNext []int
}

// NewNonlinear constructs a Nonlinear code from a 0/1 matrix, one codeword
// per row, degree = matrix columns.
//
// Stage 1 (Validate): non-nil matrix.
// Stage 2 (Prepare): pack codewords into bitsets, allocate every scratch
// buffer exactly once.
//
// Errors: ErrNilMatrix.
// Complexity: O(nwords*degree) time and memory.
func NewNonlinear(m *binmat.Dense) (*Nonlinear, error) {
	// Validate input presence
	if m == nil {
		return nil, ErrNilMatrix
	}

	degree := m.Cols()
	nwords := m.Rows()

	// Pack the codewords
	words := make([]*bitset.Set, nwords)
	for i := 0; i < nwords; i++ {
		words[i] = bitset.New(degree)
		if err := m.RowBits(i, words[i]); err != nil {
			return nil, err
		}
	}

	// Allocate the shared arena
	scr, err := newScratch(degree, nwords)
	if err != nil {
		return nil, err
	}

	return &Nonlinear{
		degree:  degree,
		nwords:  nwords,
		words:   words,
		scr:     scr,
		permA:   make([]int, nwords),
		permB:   make([]int, nwords),
		nextA:   make([]int, nwords),
		nextB:   make([]int, nwords),
		div:     make([]int, nwords+1),
		divNext: make([]int, nwords+1),
	}, nil
}

// Degree returns the number of columns.
func (c *Nonlinear) Degree() int { return c.degree }

// NWords returns the number of stored codewords.
func (c *Nonlinear) NWords() int { return c.nwords }

// Dimension returns 0: a nonlinear code carries no basis.
func (c *Nonlinear) Dimension() int { return 0 }

// Word copies stored codeword i into dst (capacity Degree()).
// Complexity: O(degree/64).
func (c *Nonlinear) Word(i int, dst *bitset.Set) {
	if i < 0 || i >= c.nwords {
		panic("bincode: word index out of range")
	}
	dst.CopyFrom(c.words[i])
}

// Compare totally orders two relabelings of the code via radix bipartition
// of the word axis; see CompareNonlinear.
func (c *Nonlinear) Compare(g1, g2 []int) int { return CompareNonlinear(g1, g2, c) }

// Reset restores the virgin word partition and re-arms the one-shot
// first-refinement seed.
func (c *Nonlinear) Reset() { c.scr.reset() }

// arena exposes the private scratch state to Refine and
// AllChildrenEquivalent.
func (c *Nonlinear) arena() *scratch { return c.scr }
