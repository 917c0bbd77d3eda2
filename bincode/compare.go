// Package bincode: total-order comparators over relabeled codes.
//
// Both comparators answer the same question for their representation: given
// two full column relabelings g1 and g2 of one code, which relabeled code is
// lexicographically smaller? The search uses the answer to select the
// canonical leaf and to certify automorphisms (Compare == 0).
package bincode

// CompareLinear totally orders the code relabeled by g1 against the code
// relabeled by g2 via online Gaussian elimination over GF(2).
//
// Stage 1 (Prepare): copy the basis into the two working row sets; both are
// reduced in lockstep, one column at a time in relabeled order.
// Stage 2 (Eliminate): for column k, scan the not-yet-pivoted rows of each
// side for a set bit at g1[k] (resp. g2[k]).
//   - Neither side pivots: the column is identically determined by earlier
//     pivots on both sides; compare the already-pivoted rows at this column
//     and order 0 before 1 on first disagreement.
//   - Exactly one side pivots: the side without a pivot has a zero column
//     where the other has a fresh pivot, so the no-pivot side spans a code
//     whose truncation ranks lower; it compares smaller.
//   - Both sides pivot: swap the pivot row up, eliminate the column from
//     every other row on each side, advance the pivot cursor.
//
// Stage 3 (Exhaust): all columns processed without disagreement means the
// two relabeled codes are equal.
//
// Relabeling slices of length != Degree() are a programmer error and panic.
// Complexity: O(degree * dim * degree/64) worst case; scratch-free beyond
// the construction-time working copies.
func CompareLinear(g1, g2 []int, l *Linear) int {
	if len(g1) != l.degree || len(g2) != l.degree {
		panic("bincode: relabeling length does not match degree")
	}

	// Load fresh working copies of the basis.
	for i := 0; i < l.dim; i++ {
		l.rowsA[i].CopyFrom(l.basis[i])
		l.rowsB[i].CopyFrom(l.basis[i])
	}

	row := 0 // pivot cursor, shared by construction while both sides pivot
	for k := 0; k < l.degree; k++ {
		ca, cb := g1[k], g2[k]

		// Locate a pivot at or below the cursor on each side.
		pa, pb := -1, -1
		for i := row; i < l.dim; i++ {
			if pa < 0 && l.rowsA[i].Check(ca) {
				pa = i
			}
			if pb < 0 && l.rowsB[i].Check(cb) {
				pb = i
			}
		}

		switch {
		case pa < 0 && pb < 0:
			// Column determined by earlier pivots on both sides; 0 < 1.
			for i := 0; i < row; i++ {
				a, b := l.rowsA[i].Check(ca), l.rowsB[i].Check(cb)
				if a != b {
					if !a {
						return -1
					}

					return 1
				}
			}
		case pa < 0:
			// A has a zero column where B pivots: A is smaller.
			return -1
		case pb < 0:
			return 1
		default:
			// Both pivot: swap up and eliminate on each side independently.
			l.rowsA[row], l.rowsA[pa] = l.rowsA[pa], l.rowsA[row]
			l.rowsB[row], l.rowsB[pb] = l.rowsB[pb], l.rowsB[row]
			for i := 0; i < l.dim; i++ {
				if i != row && l.rowsA[i].Check(ca) {
					l.rowsA[i].Xor(l.rowsA[i], l.rowsA[row])
				}
				if i != row && l.rowsB[i].Check(cb) {
					l.rowsB[i].Xor(l.rowsB[i], l.rowsB[row])
				}
			}
			row++
		}
	}

	return 0
}

// CompareNonlinear totally orders the code relabeled by g1 against the code
// relabeled by g2 via radix bipartition of the word axis.
//
// Both sides start with all words in one block and process relabeled columns
// left to right. At column k each block is counted for words with a set bit
// at g1[k] (resp. g2[k]):
//   - Counts disagree in some block: the side with FEWER ones in the
//     first disagreeing block is lexicographically smaller (its sorted
//     column has zeros extending further).
//   - Counts agree everywhere: each block is stably bipartitioned,
//     zeros before ones, and the walk continues with the finer blocks.
//
// Once every block is a singleton the word order is frozen, but later
// columns still decide: two discrete orders can agree on every processed
// column and differ on an unread one, so counting continues until a block
// disagrees or all columns are exhausted, and only the latter means equal.
//
// Relabeling slices of length != Degree() are a programmer error and panic.
// Complexity: O(degree * nwords) using the construction-time double
// buffers; no allocation.
func CompareNonlinear(g1, g2 []int, c *Nonlinear) int {
	if len(g1) != c.degree || len(g2) != c.degree {
		panic("bincode: relabeling length does not match degree")
	}

	n := c.nwords

	// Identity starting order on both sides, one all-covering block.
	for i := 0; i < n; i++ {
		c.permA[i] = i
		c.permB[i] = i
	}
	c.div[0], c.div[1] = 0, n
	nb := 1

	for k := 0; k < c.degree; k++ {
		ca, cb := g1[k], g2[k]

		// First pass: per-block one-counts on both sides, ordering on first
		// disagreement.
		for b := 0; b < nb; b++ {
			st, en := c.div[b], c.div[b+1]
			cntA, cntB := 0, 0
			for i := st; i < en; i++ {
				if c.words[c.permA[i]].Check(ca) {
					cntA++
				}
				if c.words[c.permB[i]].Check(cb) {
					cntB++
				}
			}
			if cntA != cntB {
				if cntA < cntB {
					return -1
				}

				return 1
			}
		}

		// Second pass: stable zeros-then-ones bipartition of every block,
		// identical on both sides by the agreement above, with the divider
		// list rebuilt as blocks split.
		nbNext := 0
		c.divNext[0] = 0
		for b := 0; b < nb; b++ {
			st, en := c.div[b], c.div[b+1]
			cnt := 0
			for i := st; i < en; i++ {
				if c.words[c.permA[i]].Check(ca) {
					cnt++
				}
			}
			oi := en - cnt
			zj, oj := st, oi
			for i := st; i < en; i++ {
				if c.words[c.permA[i]].Check(ca) {
					c.nextA[oj] = c.permA[i]
					oj++
				} else {
					c.nextA[zj] = c.permA[i]
					zj++
				}
			}
			zj, oj = st, oi
			for i := st; i < en; i++ {
				if c.words[c.permB[i]].Check(cb) {
					c.nextB[oj] = c.permB[i]
					oj++
				} else {
					c.nextB[zj] = c.permB[i]
					zj++
				}
			}
			if cnt > 0 && cnt < en-st {
				nbNext++
				c.divNext[nbNext] = oi
			}
			nbNext++
			c.divNext[nbNext] = en
		}

		c.permA, c.nextA = c.nextA, c.permA
		c.permB, c.nextB = c.nextB, c.permB
		c.div, c.divNext = c.divNext, c.div
		nb = nbNext
	}

	return 0
}
