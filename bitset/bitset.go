// Package bitset: fixed-capacity bit sets over {0,...,n-1}.
// Set is a flat []uint64 with the declared bit-length fixed at creation;
// all binary operations require operands of identical capacity.
package bitset

import (
	"math/bits"
	"strings"
)

// wordBits is the number of bits per backing word.
const wordBits = 64

// Set is a fixed-capacity set of integers in [0, n).
// Invariant: bits at positions >= n are always zero, so Weight and Equal
// never need to mask the final word.
type Set struct {
	n     int      // declared bit-length (capacity)
	words []uint64 // flat backing storage, length == ceil(n/64)
}

// New creates a Set with capacity n (n >= 0), initially empty.
// Complexity: O(n/64) time and memory.
func New(n int) *Set {
	if n < 0 {
		panic("bitset: negative capacity")
	}

	return &Set{n: n, words: make([]uint64, (n+wordBits-1)/wordBits)}
}

// Len returns the declared bit-length (capacity) of the set.
// Complexity: O(1).
func (s *Set) Len() int {
	return s.n
}

// Zero removes every element from the set.
// Complexity: O(n/64).
func (s *Set) Zero() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// SetBit inserts i into the set. i must lie in [0, n).
// Complexity: O(1).
func (s *Set) SetBit(i int) {
	if i < 0 || i >= s.n {
		panic("bitset: index out of range")
	}
	s.words[i/wordBits] |= 1 << (uint(i) % wordBits)
}

// Check reports whether i is a member of the set. i must lie in [0, n).
// Complexity: O(1).
func (s *Set) Check(i int) bool {
	if i < 0 || i >= s.n {
		panic("bitset: index out of range")
	}

	return s.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// CopyFrom overwrites the receiver with the contents of src.
// Capacities must match.
// Complexity: O(n/64).
func (s *Set) CopyFrom(src *Set) {
	s.sameCapacity(src)
	copy(s.words, src.words)
}

// Xor stores the symmetric difference a^b into the receiver.
// The receiver may alias either operand; capacities must match.
// Complexity: O(n/64).
func (s *Set) Xor(a, b *Set) {
	s.sameCapacity(a)
	s.sameCapacity(b)
	for i := range s.words {
		s.words[i] = a.words[i] ^ b.words[i]
	}
}

// And stores the intersection a&b into the receiver.
// The receiver may alias either operand; capacities must match.
// Complexity: O(n/64).
func (s *Set) And(a, b *Set) {
	s.sameCapacity(a)
	s.sameCapacity(b)
	for i := range s.words {
		s.words[i] = a.words[i] & b.words[i]
	}
}

// Weight returns the number of elements in the set (its Hamming weight).
// Complexity: O(n/64).
func (s *Set) Weight() int {
	total := 0
	for _, w := range s.words {
		total += bits.OnesCount64(w)
	}

	return total
}

// Equal reports whether the receiver and other hold the same elements.
// Sets of different capacity are never equal.
// Complexity: O(n/64).
func (s *Set) Equal(other *Set) bool {
	if s.n != other.n {
		return false
	}
	for i := range s.words {
		if s.words[i] != other.words[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer, rendering the set as a 0/1 string with
// position 0 leftmost. Intended for tests and debugging.
// Complexity: O(n).
func (s *Set) String() string {
	var b strings.Builder
	b.Grow(s.n)
	for i := 0; i < s.n; i++ {
		if s.Check(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}

// sameCapacity guards binary operations against mismatched operands.
// A mismatch is a programmer error, not a recoverable condition.
func (s *Set) sameCapacity(o *Set) {
	if s.n != o.n {
		panic("bitset: capacity mismatch")
	}
}
