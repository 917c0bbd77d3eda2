// Package bitset implements fixed-capacity sets of small integers backed by
// machine words.
//
// The bitset package provides:
//
//   - Set, an ordered set over {0,...,n-1} with O(1) membership test/insert
//     and O(n/64) zero/copy/xor/and/popcount.
//   - A strict fixed-capacity discipline: a Set always represents exactly its
//     declared bit-length, never a partial or resized view.
//
// Sets are created once by their owning structure and mutated in place; the
// binary operations write into the receiver so hot loops stay allocation-free.
//
// See the refinement engine in bincode for the intended usage pattern.
package bitset
