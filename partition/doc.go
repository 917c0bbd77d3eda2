// Package partition implements ordered partition stacks, the bookkeeping
// structure behind partition-backtracking searches.
//
// # Ordered partition stacks
//
// A Stack holds a permutation of the domain {0,...,n-1} in entries together
// with an integer level per position. A cell boundary exists immediately
// after position i iff levels[i] <= depth for the stack's current depth, so
// the same arrays encode a whole nested sequence of splits at once:
//
//	entries: 3 1 | 0 2 4      depth 1
//	entries: 3 | 1 | 0 2 | 4  depth 2 (two more boundaries become visible)
//
// Steps:
//  1. Seed a base partition at depth 0 (SeedFromPartition).
//  2. Descend: Push, then subdivide cells (SplitByKey, SplitElement);
//     every new boundary is marked at the current depth.
//  3. Backtrack: Pop. Boundaries marked deeper than the new depth become
//     invisible again; undo is O(1), no split needs to be reversed.
//
// Re-entering a depth after backtracking (Push, DescendTo) scrubs the
// invisible boundaries the abandoned branch left behind, so a fresh branch
// never sees its sibling's splits.
//
// Refining can only subdivide existing cells, never merge them; the stack is
// discrete when every position is its own cell.
//
// Time complexity: SplitByKey is a stable counting sort, linear in cell size
// plus key range; Pop is O(1), Push and DescendTo are O(n) for the scrub.
// Memory usage: O(n + maxKey), fixed at construction.
package partition
