// SPDX-License-Identifier: MIT

// Package autgroup computes the automorphism group and the canonical
// labeling of a binary code by depth-first partition backtracking.
//
// 🔬 What the search does
//
// Columns of the code are individualized one at a time; after each
// individualization the joint column/word partition is refined through
// bincode.Refine. Every discrete column partition is a leaf carrying a full
// relabeling γ of the columns. The first leaf γ0 fixes the base; each later
// leaf whose relabeled code equals γ0's contributes the automorphism
// σ = γ∘γ0⁻¹ and increments the group order; the running minimum leaf under
// the code's comparator is the canonical labeling.
//
// 🚀 Quick start
//
//	c, _ := bincode.NewLinear(m)
//	res, err := autgroup.Search(c, nil, nil)
//	// res.Order, res.Generators, res.Base, res.CanonicalLabeling
//
// ⚙️ Options
//
//   - Ctx: cancellation, checked between tree nodes.
//   - CanonicalOnly: skip subtrees whose children are provably equivalent.
//     The canonical labeling stays exact; Order and Generators are cleared
//     because skipped leaves are no longer counted.
//   - OnNode: observation hook, fired once per refined node with the node's
//     depth and refinement invariant.
//
// 🧷 Guarantees
//
//   - Deterministic: identical inputs yield identical results, including
//     generator discovery order.
//   - Every returned generator satisfies Compare(σ, identity) == 0.
//   - The canonical form (the code relabeled by CanonicalLabeling) is
//     invariant under any column relabeling of the input.
//
// The search holds exclusive use of the supplied Code for its whole run;
// see package bincode for the non-reentrancy contract.
package autgroup
