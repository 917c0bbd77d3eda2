// SPDX-License-Identifier: MIT

package bincode

// Test-Bridge (White-Box) for the Private Word Stack
//
// Purpose:
//   - Expose a read-only view of a structure's private word-side partition
//     stack to bincode tests, without widening the prod API.
//
// Provided Surface:
//   - WordCells_TestOnly: materialize the current word partition as [][]int.
//   - WordNumCells_TestOnly: current word-side cell count.
//
// Behavior & Determinism:
//   - Deterministic snapshots; no side effects beyond slice allocation.

// WordCells_TestOnly returns the current word partition of c as a list of
// cells in position order.
func WordCells_TestOnly(c Code) [][]int {
	s := c.arena().words
	var out [][]int
	for st := 0; st < s.Len(); {
		en := s.CellEnd(st)
		cell := make([]int, 0, en-st+1)
		for i := st; i <= en; i++ {
			cell = append(cell, s.Entry(i))
		}
		out = append(out, cell)
		st = en + 1
	}

	return out
}

// WordNumCells_TestOnly returns the current word-side cell count of c.
func WordNumCells_TestOnly(c Code) int { return c.arena().words.NumCells() }
