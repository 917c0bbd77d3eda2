// Package bincode: the one-directional pruning heuristic.
package bincode

import "github.com/katalvlaran/lvlcode/partition"

// AllChildrenEquivalent reports whether every child of the current search
// node is guaranteed equivalent under the stabilizer of the node, so the
// search may descend into a single child instead of branching.
//
// The answer is one-directional: a true answer is a proof, a false answer
// carries no information. True requires the joint slack
//
//	(degree - column cells) + (nwords - word cells)
//
// to be 0 or 1. Slack 0 means both partitions are discrete. Slack 1 leaves
// exactly one cell of size 2: a word pair means the column side is already
// discrete and no branching remains, while a column pair is promised only
// after its transposition is proved an automorphism with the code's
// comparator. Refinement can stall on a pair that is not exchangeable, so
// slack alone proves nothing there.
//
// Errors: ErrNilStack, ErrNilCode, ErrDomainMismatch.
// Complexity: O(degree + nwords) over the two cell counts, plus one
// comparator call in the column-pair case.
func AllChildrenEquivalent(cols *partition.Stack, c Code) (bool, error) {
	// Validate arguments
	if cols == nil {
		return false, ErrNilStack
	}
	if c == nil {
		return false, ErrNilCode
	}
	if cols.Len() != c.Degree() {
		return false, ErrDomainMismatch
	}

	// Align the private word stack with the column stack.
	scr := c.arena()
	if err := scr.words.SetDepthTo(cols.Depth()); err != nil {
		return false, err
	}

	colSlack := cols.Len() - cols.NumCells()
	wordSlack := scr.words.Len() - scr.words.NumCells()
	switch {
	case colSlack+wordSlack == 0:
		return true, nil
	case colSlack+wordSlack > 1:
		return false, nil
	case colSlack == 0:
		// Columns discrete, one word pair: nothing left to branch on.
		return true, nil
	}

	// One column pair remains. Swapping it fixes every other column, so the
	// children are equivalent exactly when the transposition preserves the
	// code.
	start, _ := cols.FirstNonSingleton()
	a, b := cols.Entry(start), cols.Entry(start+1)
	copy(scr.swp, scr.idp)
	scr.swp[a], scr.swp[b] = scr.swp[b], scr.swp[a]

	return c.Compare(scr.idp, scr.swp) == 0, nil
}
