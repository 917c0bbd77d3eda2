// Package bincode: the refinement invariant engine.
//
// Refine drives both partition stacks, the caller-owned column stack and
// the structure-owned word stack, toward a strictly finer joint partition
// consistent with the incidence relation "column c is set in word w", and
// emits an integer invariant summarizing the split sequence.
package bincode

import "github.com/katalvlaran/lvlcode/partition"

// Refine mutates cols and the code's private word stack into a strictly
// finer joint partition and returns the refinement invariant.
//
// Stage 1 (Validate): non-nil arguments, matching domain, word stack
// descended to cols.Depth() (the two stacks advance in lockstep with the
// search but only the column stack is externally owned). Refine is meant to
// run exactly once per search node, right after the node is entered; the
// descent discards word boundaries left over from abandoned sibling
// branches.
// Stage 2 (Seed): the very first call against a structure (or after Reset)
// consumes the one-shot seed and loads every current cell of both domains
// onto the worklist ("refine by everything"); later calls load the supplied
// column cell starts, typically the cell just individualized by the search.
// Stage 3 (Execute): pop worklist cells until both stacks are discrete or
// the worklist empties. A word-side cell refines every non-singleton column
// cell by column degree; a column-side cell refines every non-singleton word
// cell by word degree. Every sub-cell produced by a split, except the
// largest, is pushed back with its own domain's tag.
//
// The invariant is a commutative sum over performed splits of per-element
// terms built from the cell start and the boundary degrees, so it is
// independent of worklist order within one call, deterministic, and equal
// for two structures exactly when their split sequences are structurally
// identical.
//
// A cell of size 1 never splits and contributes nothing. Ties in degree are
// broken only by the stable sort's original order, which stays canonical
// because every sub-cell keeps its smallest element first.
//
// Errors: ErrNilStack, ErrNilCode, ErrDomainMismatch.
// Complexity: each split is linear in the cell it splits plus the range of
// observed degrees; all loop state lives in the construction-time arena.
func Refine(cols *partition.Stack, c Code, cells []int) (int, error) {
	// Validate arguments
	if cols == nil {
		return 0, ErrNilStack
	}
	if c == nil {
		return 0, ErrNilCode
	}
	if cols.Len() != c.Degree() {
		return 0, ErrDomainMismatch
	}

	// Enter the fresh node on the private word stack: depth in lockstep with
	// the externally owned column stack, leftovers of abandoned sibling
	// branches invalidated.
	scr := c.arena()
	if err := scr.words.DescendTo(cols.Depth()); err != nil {
		return 0, err
	}

	r := refiner{cols: cols, wds: scr.words, code: c, scr: scr, work: scr.work[:0]}
	scr.wtags.Zero()

	// Seed the worklist.
	if scr.consumeFirst() {
		// Refine by everything: every current cell on both sides.
		for st := 0; st < cols.Len(); st = cols.CellEnd(st) + 1 {
			r.push(st, false)
		}
		for st := 0; st < scr.words.Len(); st = scr.words.CellEnd(st) + 1 {
			r.push(st, true)
		}
	} else {
		for _, st := range cells {
			r.push(st, false)
		}
	}

	// Main loop: one worklist entry per iteration, each refining the
	// opposite domain.
	for i := 0; i < len(r.work); i++ {
		if r.cols.IsDiscrete() && r.wds.IsDiscrete() {
			break
		}
		if scr.wtags.Check(i) {
			r.refineColumnsBy(r.work[i])
		} else {
			r.refineWordsBy(r.work[i])
		}
	}

	// Hand the worklist buffer back so later calls reuse its capacity.
	scr.work = r.work[:0]

	return r.inv, nil
}

// refiner bundles the per-call loop state of one Refine invocation.
type refiner struct {
	cols *partition.Stack
	wds  *partition.Stack
	code Code
	scr  *scratch
	work []int
	inv  int
}

// push appends a cell start to the worklist, tagging word-side cells in the
// companion bitset. The worklist capacity fixed at construction bounds every
// reachable push sequence, so growth past it is a programmer error surfaced
// by the tag bitset's range check.
func (r *refiner) push(start int, word bool) {
	if word {
		r.scr.wtags.SetBit(len(r.work))
	}
	r.work = append(r.work, start)
}

// refineColumnsBy refines every non-singleton column cell by column degree
// against the word cell beginning at ws: the degree of a column is the
// number of words in that cell whose bit at the column is set.
func (r *refiner) refineColumnsBy(ws int) {
	we := r.wds.CellEnd(ws)

	for st := 0; st < r.cols.Len(); {
		en := r.cols.CellEnd(st)
		if en > st { // singletons never split
			size := en - st + 1
			keys := r.scr.degs[:size]
			for j := range keys {
				keys[j] = 0
			}
			// Materialize each word of the refining cell once, then bump
			// the degree of every cell column it covers.
			for wi := ws; wi <= we; wi++ {
				r.code.Word(r.wds.Entry(wi), r.scr.word)
				for j := 0; j < size; j++ {
					if r.scr.word.Check(r.cols.Entry(st + j)) {
						keys[j]++
					}
				}
			}
			if !allEqual(keys) {
				r.inv += splitTerm(st, keys, 0)
				big := r.cols.SplitByKey(st, keys)
				for t := st; t <= en; {
					te := r.cols.CellEnd(t)
					if t != big {
						r.push(t, false)
					}
					t = te + 1
				}
			}
		}
		st = en + 1
	}
}

// refineWordsBy refines every non-singleton word cell by word degree against
// the column cell beginning at cs: the degree of a word is the weight of its
// bitset restricted to that column cell.
func (r *refiner) refineWordsBy(cs int) {
	ce := r.cols.CellEnd(cs)

	// Build the column-cell mask once; each word then costs one AND plus one
	// popcount.
	r.scr.mask.Zero()
	for i := cs; i <= ce; i++ {
		r.scr.mask.SetBit(r.cols.Entry(i))
	}

	for st := 0; st < r.wds.Len(); {
		en := r.wds.CellEnd(st)
		if en > st { // singletons never split
			size := en - st + 1
			keys := r.scr.degs[:size]
			for j := 0; j < size; j++ {
				r.code.Word(r.wds.Entry(st+j), r.scr.word)
				r.scr.acc.And(r.scr.word, r.scr.mask)
				keys[j] = r.scr.acc.Weight()
			}
			if !allEqual(keys) {
				r.inv += splitTerm(st, keys, r.code.Degree())
				big := r.wds.SplitByKey(st, keys)
				for t := st; t <= en; {
					te := r.wds.CellEnd(t)
					if t != big {
						r.push(t, true)
					}
					t = te + 1
				}
			}
		}
		st = en + 1
	}
}

// allEqual reports whether every key matches the first one, i.e. the split
// would be trivial.
func allEqual(keys []int) bool {
	for _, k := range keys[1:] {
		if k != keys[0] {
			return false
		}
	}

	return true
}

// splitTerm folds one performed split into the invariant: a commutative sum
// of per-element terms built from the cell start and each element's degree
// key, biased by the domain offset so column and word splits cannot alias.
func splitTerm(start int, keys []int, bias int) int {
	term := 0
	for _, k := range keys {
		term += (start + 1 + bias) * (k + 1)
	}

	return term
}
