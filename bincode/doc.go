// Package bincode implements binary code structures and the partition-
// refinement primitives used to compute their automorphism groups and
// canonical labelings.
//
// # The bipartite incidence view
//
// A binary code is treated as a bipartite structure between coordinate
// positions ("columns") and words: column c is incident to word w iff bit c
// of w is set. Two concrete representations share one machinery:
//
//   - Linear — a basis of dimension rows; word i is the XOR of the basis
//     rows selected by the bits of i, so nwords = 2^dimension.
//   - Nonlinear — nwords explicit codeword bitsets.
//
// Steps of a refinement call (Refine):
//  1. Align the privately owned word-side partition stack with the
//     caller-owned column-side stack (equal depths).
//  2. Seed the worklist: on the very first call, every current cell of both
//     domains; afterwards, the column cells supplied by the caller.
//  3. Pop cells off the worklist. A word cell splits column cells by
//     incidence degree; a column cell splits word cells symmetrically.
//     Every produced sub-cell except the largest goes back on the worklist.
//  4. Accumulate an integer invariant from the splits — equal for two
//     structures iff their split sequences are structurally identical, so
//     the surrounding search can prune cheaply on inequality.
//
// AllChildrenEquivalent is a constant-time may-prune heuristic: a true
// result guarantees all children of the current search node are equivalent;
// a false result guarantees nothing.
//
// CompareLinear and CompareNonlinear totally order candidate relabelings of
// one code — by online Gaussian elimination and by radix bipartition of the
// word axis respectively — deciding which relabeled code is
// lexicographically smaller without materializing either.
//
// All scratch memory is allocated once at construction and reused; calls
// against one structure must not overlap (single-threaded by design).
//
// Time complexity: a refinement split is linear in the cell it splits;
// comparators cost O(common prefix), not O(dimension·degree).
package bincode
