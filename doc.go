// Package lvlcode computes automorphism groups and canonical labelings of
// binary codes: linear codes given by a basis, nonlinear codes given by an
// explicit list of codewords.
//
// 🚀 What is lvlcode?
//
//	A pure-Go partition-refinement toolkit built around the bipartite
//	incidence structure between coordinate positions and codewords:
//		• Fixed-capacity bitsets with O(words) xor/and/popcount
//		• Ordered partition stacks with O(1) backtracking undo
//		• Degree refinement emitting a cheap isomorphism invariant
//		• Canonical-form comparators for linear and nonlinear codes
//		• A reference depth-first search assembling generators, group
//		  order, a base, and the canonical relabeling
//
// ✨ Why choose lvlcode?
//
//   - Allocation-free hot paths – every scratch buffer is sized once at
//     construction and reused across calls
//   - Rock-solid guarantees – sentinel errors, deterministic traversal,
//     property-tested invariance under relabeling
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under five subpackages:
//
//	autgroup/  — reference backtracking search over column relabelings
//	bincode/   — code structures, refinement, pruning, comparators
//	binmat/    — dense 0/1 input matrices
//	bitset/    — fixed-capacity bit sets
//	partition/ — ordered partition stacks with nested-split bookkeeping
//
// Quick ASCII example:
//
//	    columns:  0 1 2
//	    basis:    1 0 1
//	              0 1 1
//
//	the even-weight code of length 3; its automorphism group is all of S₃.
//
// Dive into the package docs and example tests for usage patterns.
//
//	go get github.com/katalvlaran/lvlcode
package lvlcode
