// Package bincode: the Code interface and the construction-time scratch
// arena shared by both concrete representations.
package bincode

import (
	"github.com/katalvlaran/lvlcode/bitset"
	"github.com/katalvlaran/lvlcode/partition"
)

// Code is a binary code viewed as a bipartite incidence structure between
// columns and words. Both concrete representations (Linear, Nonlinear)
// satisfy it; the backtracking search consumes only this surface plus the
// package-level Refine/AllChildrenEquivalent functions.
//
// A Code owns a private word-side partition stack and fixed-capacity scratch
// buffers; at most one Refine/Compare call may be in flight against a given
// Code at a time.
type Code interface {
	// Degree returns the number of columns (coordinate positions).
	Degree() int

	// NWords returns the number of words on the word side of the structure.
	NWords() int

	// Dimension returns the basis size for a linear code and 0 for a
	// nonlinear one.
	Dimension() int

	// Word materializes word i into dst, which must have capacity Degree().
	// For a linear code this is the XOR of the basis rows selected by the
	// bits of i; for a nonlinear code it is stored codeword i verbatim.
	// An index outside [0, NWords()) is a programmer error and panics.
	Word(i int, dst *bitset.Set)

	// Compare totally orders two full column relabelings of this code,
	// returning -1, 0 or 1 as the code relabeled by g1 is lexicographically
	// smaller than, equal to, or larger than the code relabeled by g2.
	// Both slices must have length Degree().
	Compare(g1, g2 []int) int

	// Reset restores the structure to its virgin state: the word partition
	// back to a single cell and the one-shot first-refinement seed re-armed.
	// Required before reusing one structure for a fresh search.
	Reset()

	// arena exposes the private scratch state to the package-level
	// refinement and pruning functions.
	arena() *scratch
}

// scratch is the arena every code structure allocates exactly once at
// construction. Contents are overwritten on every refinement call; only the
// capacities are semantic.
type scratch struct {
	words *partition.Stack // private word-side stack, kept in depth lockstep with the column stack
	mask  *bitset.Set      // column-cell mask, capacity degree
	word  *bitset.Set      // materialized word, capacity degree
	acc   *bitset.Set      // AND accumulator for word degrees, capacity degree
	degs  []int            // per-position degree keys, len max(degree, nwords)
	work  []int            // refinement worklist, reused across calls
	wtags *bitset.Set      // word-side tag per worklist position
	idp   []int            // identity relabeling, len degree
	swp   []int            // transposition scratch for the pruning proof, len degree
	first bool             // one-shot "refine by everything" seed
}

// newScratch sizes the arena for a structure with the given domains.
// Worklist capacity: each side seeds at most one entry per current cell and
// pushes at most one entry per sub-cell ever created, so 2*(degree+nwords)
// positions suffice for any single call.
func newScratch(degree, nwords int) (*scratch, error) {
	words, err := partition.NewStack(nwords, degree)
	if err != nil {
		return nil, err
	}

	degCap := degree
	if nwords > degCap {
		degCap = nwords
	}
	workCap := 2 * (degree + nwords)

	idp := make([]int, degree)
	for i := range idp {
		idp[i] = i
	}

	return &scratch{
		words: words,
		mask:  bitset.New(degree),
		word:  bitset.New(degree),
		acc:   bitset.New(degree),
		degs:  make([]int, degCap),
		work:  make([]int, 0, workCap),
		wtags: bitset.New(workCap),
		idp:   idp,
		swp:   make([]int, degree),
		first: true,
	}, nil
}

// reset restores the virgin state shared by both representations.
func (s *scratch) reset() {
	_ = s.words.SeedFromPartition(nil) // nil partition never fails
	s.first = true
}

// consumeFirst returns whether this is the structure's first refinement call
// and clears the flag.
func (s *scratch) consumeFirst() bool {
	f := s.first
	s.first = false

	return f
}
