// Package partition: Stack is the concrete ordered-partition-stack
// implementation. One flat entries permutation plus one flat levels array
// encode every refinement level at once; the current depth selects which
// boundaries are visible.
package partition

import (
	"strconv"
	"strings"
)

const (
	// sentinelLevel sits below every reachable depth, so the final position
	// always terminates a cell walk.
	sentinelLevel = -1

	// unsplitLevel sits above every reachable depth, marking positions whose
	// boundary has not been created yet.
	unsplitLevel = int(^uint(0) >> 1)
)

// Stack is a permutation of {0,...,n-1} with nested-split bookkeeping.
// A cell boundary exists immediately after position i iff levels[i] <= depth.
// levels[n-1] is always sentinelLevel.
//
// The counting-sort buckets and the reorder buffer are allocated once at
// construction and reused by every SplitByKey call; a Stack is therefore
// not safe for concurrent use.
type Stack struct {
	entries []int // permutation of the domain
	levels  []int // boundary levels, levels[n-1] == sentinelLevel
	depth   int   // current search depth
	maxKey  int   // largest key value SplitByKey accepts
	counts  []int // counting-sort buckets, len maxKey+1, zero between calls
	scratch []int // stable-placement buffer, len n
}

// NewStack creates a Stack over the domain {0,...,n-1} holding one cell,
// accepting split keys in [0, maxKey].
// Stage 1 (Validate): n > 0, maxKey >= 0.
// Stage 2 (Prepare): allocate entries/levels/buckets, identity order.
// Errors: ErrBadDomain, ErrBadKeySpace.
// Complexity: O(n + maxKey) time and memory.
func NewStack(n, maxKey int) (*Stack, error) {
	// Validate domain size
	if n <= 0 {
		return nil, ErrBadDomain
	}
	// Validate key space
	if maxKey < 0 {
		return nil, ErrBadKeySpace
	}

	s := &Stack{
		entries: make([]int, n),
		levels:  make([]int, n),
		depth:   0,
		maxKey:  maxKey,
		counts:  make([]int, maxKey+1),
		scratch: make([]int, n),
	}
	for i := 0; i < n; i++ {
		s.entries[i] = i
		s.levels[i] = unsplitLevel
	}
	s.levels[n-1] = sentinelLevel

	return s, nil
}

// Len returns the domain size.
// Complexity: O(1).
func (s *Stack) Len() int { return len(s.entries) }

// Depth returns the current search depth.
// Complexity: O(1).
func (s *Stack) Depth() int { return s.depth }

// Entry returns the domain element at position i of the permutation.
// Complexity: O(1).
func (s *Stack) Entry(i int) int { return s.entries[i] }

// Level returns the boundary level recorded after position i.
// Complexity: O(1).
func (s *Stack) Level(i int) int { return s.levels[i] }

// Push enters a child search node by incrementing the depth.
// Boundaries created afterwards are invisible to shallower depths.
// Entering a depth invalidates the boundaries a previously explored sibling
// subtree left at that depth or deeper; without the scrub a cell walk in the
// new branch would see the abandoned branch's splits.
// Complexity: O(n).
func (s *Stack) Push() {
	s.depth++
	s.scrubFrom(s.depth)
}

// Pop backtracks to the parent search node by decrementing the depth.
// Every boundary marked deeper than the new depth becomes logically merged
// again; no individual split is undone.
// Errors: ErrUnderflow at depth zero.
// Complexity: O(1).
func (s *Stack) Pop() error {
	if s.depth == 0 {
		return ErrUnderflow
	}
	s.depth--

	return nil
}

// SetDepthTo jumps the stack to depth d, in either direction, keeping every
// boundary mark intact. Used to keep a privately owned stack in lockstep
// with an externally owned one inside a single search node.
// Errors: ErrBadDepth when d < 0.
// Complexity: O(1).
func (s *Stack) SetDepthTo(d int) error {
	if d < 0 {
		return ErrBadDepth
	}
	s.depth = d

	return nil
}

// DescendTo jumps the stack to depth d on entry to a fresh search node,
// invalidating every boundary with level >= d. Boundaries at shallower
// levels belong to ancestor nodes and persist; boundaries at d or deeper can
// only be leftovers of a previously explored branch.
// Errors: ErrBadDepth when d < 0.
// Complexity: O(n).
func (s *Stack) DescendTo(d int) error {
	if d < 0 {
		return ErrBadDepth
	}
	s.depth = d
	s.scrubFrom(d)

	return nil
}

// scrubFrom resets every non-sentinel boundary with level >= d back to the
// unsplit state.
func (s *Stack) scrubFrom(d int) {
	for i := 0; i < len(s.entries)-1; i++ {
		if s.levels[i] >= d && s.levels[i] != unsplitLevel {
			s.levels[i] = unsplitLevel
		}
	}
}

// IsDiscrete reports whether every position is its own cell at the current
// depth.
// Complexity: O(n).
func (s *Stack) IsDiscrete() bool {
	for i := 0; i < len(s.entries)-1; i++ {
		if s.levels[i] > s.depth {
			return false
		}
	}

	return true
}

// NumCells returns the number of cells visible at the current depth.
// Complexity: O(n).
func (s *Stack) NumCells() int {
	cells := 1 // the final position always closes a cell
	for i := 0; i < len(s.entries)-1; i++ {
		if s.levels[i] <= s.depth {
			cells++
		}
	}

	return cells
}

// CellEnd returns the position of the last element of the cell that begins
// at start. start must be a cell start at the current depth.
// Complexity: O(cell size).
func (s *Stack) CellEnd(start int) int {
	j := start
	for s.levels[j] > s.depth { // sentinel at n-1 guarantees termination
		j++
	}

	return j
}

// FirstNonSingleton returns the start of the lowest-positioned cell holding
// more than one element, or ok=false when the stack is discrete.
// Complexity: O(n).
func (s *Stack) FirstNonSingleton() (start int, ok bool) {
	for st := 0; st < len(s.entries); {
		end := s.CellEnd(st)
		if end > st {
			return st, true
		}
		st = end + 1
	}

	return 0, false
}

// SplitByKey subdivides the cell beginning at start by the integer keys,
// one key per cell position in current entry order.
//
// Stage 1 (Validate): keys length matches the cell, key values in [0,maxKey].
// Stage 2 (Sort): stable counting sort of the cell by ascending key.
// Stage 3 (Mark): a boundary at the current depth after every sub-cell but
// the final one; within each sub-cell the minimum element is rotated to the
// front so the representative stays canonical for later comparisons.
//
// Returns the start position of the largest resulting sub-cell; ties on size
// resolve toward the lowest key value. A cell whose keys are all equal is
// left intact (no new boundary) and its own start is returned.
//
// Violated preconditions (bad start, wrong keys length, key out of range)
// are programmer errors and panic.
// Complexity: O(cell size + max observed key); the buckets are reused, not
// reallocated.
func (s *Stack) SplitByKey(start int, keys []int) int {
	end := s.CellEnd(start)
	size := end - start + 1
	if len(keys) != size {
		panic("partition: keys length does not match cell size")
	}

	// Pass 1: count key occurrences, remember the largest observed key so
	// bucket reset stays proportional to what was touched.
	maxk := 0
	for _, k := range keys {
		if k < 0 || k > s.maxKey {
			panic("partition: key outside declared key space")
		}
		if k > maxk {
			maxk = k
		}
		s.counts[k]++
	}

	// Pass 2: bucket counts -> start offsets (prefix sums).
	total := 0
	for k := 0; k <= maxk; k++ {
		c := s.counts[k]
		s.counts[k] = total
		total += c
	}

	// Pass 3: stable placement into the scratch buffer, then copy back.
	for j := 0; j < size; j++ {
		k := keys[j]
		s.scratch[s.counts[k]] = s.entries[start+j]
		s.counts[k]++
	}
	copy(s.entries[start:end+1], s.scratch[:size])

	// Pass 4: walk sub-cells in ascending key order. s.counts[k] now holds
	// the exclusive end offset of key k's sub-cell. Mark boundaries, rotate
	// minima to the front, and track the largest sub-cell (lowest key wins
	// ties by first-seen).
	bestStart, bestSize := start, 0
	prev := 0
	for k := 0; k <= maxk; k++ {
		endOff := s.counts[k]
		if endOff == prev {
			continue // key absent from this cell
		}
		subStart, subEnd := start+prev, start+endOff-1
		s.minToFront(subStart, subEnd)
		if subEnd < end { // every sub-cell but the final one gets a boundary
			s.levels[subEnd] = s.depth
		}
		if endOff-prev > bestSize {
			bestSize, bestStart = endOff-prev, subStart
		}
		prev = endOff
	}

	// Pass 5: restore the all-zero bucket invariant for the next call.
	for k := 0; k <= maxk; k++ {
		s.counts[k] = 0
	}

	return bestStart
}

// SplitElement individualizes element v: v is moved to the front of its cell
// and a boundary at the current depth is placed right after it. Returns the
// start position of v's cell. A v already alone in its cell is a no-op.
// Errors: ErrUnknownElement when v is outside the domain.
// Complexity: O(n) to locate v plus O(cell size) to shift.
func (s *Stack) SplitElement(v int) (int, error) {
	if v < 0 || v >= len(s.entries) {
		return 0, ErrUnknownElement
	}

	// Locate v's position, then its cell start.
	pos := 0
	for s.entries[pos] != v {
		pos++
	}
	cs := pos
	for cs > 0 && s.levels[cs-1] > s.depth {
		cs--
	}

	// Singleton cell: nothing to split.
	if s.CellEnd(cs) == cs {
		return cs, nil
	}

	// Shift the prefix right by one and install v at the front.
	copy(s.entries[cs+1:pos+1], s.entries[cs:pos])
	s.entries[cs] = v
	s.levels[cs] = s.depth

	return cs, nil
}

// SeedFromPartition resets the stack to depth zero holding the given base
// partition, cells in the given order, elements in the given order within
// each cell. A nil cells slice seeds the single-cell identity partition.
// Stage 1 (Validate): cells cover the domain exactly once.
// Stage 2 (Execute): rewrite entries and levels, cell boundaries at level 0.
// Errors: ErrBadPartition.
// Complexity: O(n).
func (s *Stack) SeedFromPartition(cells [][]int) error {
	n := len(s.entries)

	// nil means "one cell, identity order".
	if cells == nil {
		for i := 0; i < n; i++ {
			s.entries[i] = i
			s.levels[i] = unsplitLevel
		}
		s.levels[n-1] = sentinelLevel
		s.depth = 0

		return nil
	}

	// Validate before mutating anything (fail-fast, no partial state).
	seen := make([]bool, n)
	covered := 0
	for _, cell := range cells {
		if len(cell) == 0 {
			return ErrBadPartition
		}
		for _, v := range cell {
			if v < 0 || v >= n || seen[v] {
				return ErrBadPartition
			}
			seen[v] = true
			covered++
		}
	}
	if covered != n {
		return ErrBadPartition
	}

	// Fill entries cell by cell; each cell closes with a level-0 boundary.
	pos := 0
	for _, cell := range cells {
		for _, v := range cell {
			s.entries[pos] = v
			s.levels[pos] = unsplitLevel
			pos++
		}
		s.levels[pos-1] = 0
	}
	s.levels[n-1] = sentinelLevel
	s.depth = 0

	return nil
}

// Labeling copies the entries permutation into dst, which must have length n.
// Only meaningful on a discrete stack: position i then holds the domain
// element relabeled to i.
// Errors: ErrNotDiscrete, ErrBadDomain on a wrong-sized destination.
// Complexity: O(n).
func (s *Stack) Labeling(dst []int) error {
	if len(dst) != len(s.entries) {
		return ErrBadDomain
	}
	if !s.IsDiscrete() {
		return ErrNotDiscrete
	}
	copy(dst, s.entries)

	return nil
}

// String implements fmt.Stringer, rendering the cells visible at the current
// depth, e.g. "[ 3 1 | 0 2 4 ]". Intended for tests and debugging.
// Complexity: O(n).
func (s *Stack) String() string {
	var b strings.Builder
	b.WriteString("[")
	for st := 0; st < len(s.entries); {
		end := s.CellEnd(st)
		for i := st; i <= end; i++ {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(s.entries[i]))
		}
		if end < len(s.entries)-1 {
			b.WriteString(" |")
		}
		st = end + 1
	}
	b.WriteString(" ]")

	return b.String()
}

// minToFront rotates the minimum element of entries[lo..hi] to position lo,
// preserving the relative order of the other elements.
func (s *Stack) minToFront(lo, hi int) {
	if hi <= lo {
		return
	}
	minIdx := lo
	for i := lo + 1; i <= hi; i++ {
		if s.entries[i] < s.entries[minIdx] {
			minIdx = i
		}
	}
	if minIdx == lo {
		return
	}
	v := s.entries[minIdx]
	copy(s.entries[lo+1:minIdx+1], s.entries[lo:minIdx])
	s.entries[lo] = v
}
