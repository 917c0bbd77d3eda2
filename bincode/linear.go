// Package bincode: Linear is the basis-backed representation.
// nwords = 2^dimension words exist only implicitly; Word(i) XORs the basis
// rows selected by the bits of i on demand.
package bincode

import (
	"github.com/katalvlaran/lvlcode/binmat"
	"github.com/katalvlaran/lvlcode/bitset"
)

// maxLinearDimension bounds the basis size so that 2^dimension still
// addresses scratch arrays through a non-negative int.
const maxLinearDimension = 62

// Linear is a binary linear code given by a basis matrix. The word side of
// the bipartite structure is the full span: word i is the XOR of the basis
// rows selected by the bits of i.
type Linear struct {
	degree int // number of columns
	dim    int // number of basis rows
	nwords int // 1 << dim

	basis []*bitset.Set // one bitset per basis row, capacity degree

	scr *scratch

	// Comparator working copies, overwritten by every CompareLinear call.
	rowsA []*bitset.Set
	rowsB []*bitset.Set
}

// NewLinear constructs a Linear code from a 0/1 basis matrix: one basis row
// per matrix row, degree = matrix columns.
//
// Stage 1 (Validate): non-nil matrix, dimension addressable.
// Stage 2 (Prepare): pack basis rows into bitsets, allocate every scratch
// buffer exactly once (word stack over 2^dimension words, refinement arena,
// comparator copies).
// Stage 3 (Finalize): return the structure; no partial object escapes on
// failure.
//
// Errors: ErrNilMatrix, ErrDimensionTooLarge.
// Complexity: O(dim*degree + 2^dim) time and memory.
func NewLinear(m *binmat.Dense) (*Linear, error) {
	// Validate input presence
	if m == nil {
		return nil, ErrNilMatrix
	}
	// Validate addressability of the implicit word domain
	dim := m.Rows()
	if dim >= maxLinearDimension {
		return nil, ErrDimensionTooLarge
	}

	degree := m.Cols()
	nwords := 1 << uint(dim)

	// Pack the basis rows
	basis := make([]*bitset.Set, dim)
	for i := 0; i < dim; i++ {
		basis[i] = bitset.New(degree)
		if err := m.RowBits(i, basis[i]); err != nil {
			return nil, err
		}
	}

	// Allocate the shared arena
	scr, err := newScratch(degree, nwords)
	if err != nil {
		return nil, err
	}

	// Allocate the comparator working copies
	rowsA := make([]*bitset.Set, dim)
	rowsB := make([]*bitset.Set, dim)
	for i := 0; i < dim; i++ {
		rowsA[i] = bitset.New(degree)
		rowsB[i] = bitset.New(degree)
	}

	return &Linear{
		degree: degree,
		dim:    dim,
		nwords: nwords,
		basis:  basis,
		scr:    scr,
		rowsA:  rowsA,
		rowsB:  rowsB,
	}, nil
}

// Degree returns the number of columns.
func (l *Linear) Degree() int { return l.degree }

// NWords returns 2^dimension, the size of the spanned word domain.
func (l *Linear) NWords() int { return l.nwords }

// Dimension returns the number of basis rows.
func (l *Linear) Dimension() int { return l.dim }

// Word materializes word i, the XOR of the basis rows selected by the bits
// of i, into dst (capacity Degree()).
// Complexity: O(dim * degree/64).
func (l *Linear) Word(i int, dst *bitset.Set) {
	if i < 0 || i >= l.nwords {
		panic("bincode: word index out of range")
	}
	dst.Zero()
	for j := 0; j < l.dim; j++ {
		if i&(1<<uint(j)) != 0 {
			dst.Xor(dst, l.basis[j])
		}
	}
}

// Compare totally orders two relabelings of the code via online Gaussian
// elimination; see CompareLinear.
func (l *Linear) Compare(g1, g2 []int) int { return CompareLinear(g1, g2, l) }

// Reset restores the virgin word partition and re-arms the one-shot
// first-refinement seed.
func (l *Linear) Reset() { l.scr.reset() }

// arena exposes the private scratch state to Refine and
// AllChildrenEquivalent.
func (l *Linear) arena() *scratch { return l.scr }
