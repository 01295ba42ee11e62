// Package bitset implements a fixed-capacity set of integers in
// [0, Words()*64), backed by a slice of 64-bit words.
//
// Every operation is word-parallel: intersections, complements, and
// population counts walk the backing slice one uint64 at a time rather
// than bit-by-bit. This is the bitset half of the MCS/BBMC representation:
// the candidate set P and every bit-graph row are a Set, and the hot loop
// of the search engine lives entirely inside And/AndNot/Popcount/FirstSet.
//
// Capacity is fixed at construction (New(words)) and never grows: the
// search engine allocates one Set per recursion level from a capacity
// derived once from the input graph's vertex count, and relies on that
// capacity staying put for the lifetime of the search.
package bitset

import "math/bits"

const wordBits = 64

// Set is a fixed-capacity bit vector over [0, len(words)*64).
// The zero value is not usable; construct with New.
type Set struct {
	words []uint64
}

// New returns a Set with capacity for nWords*64 bits, all clear.
func New(nWords int) *Set {
	return &Set{words: make([]uint64, nWords)}
}

// Words reports the number of 64-bit words backing the set.
func (s *Set) Words() int { return len(s.words) }

// Cap reports the bit capacity of the set (Words()*64).
func (s *Set) Cap() int { return len(s.words) * wordBits }

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := &Set{words: make([]uint64, len(s.words))}
	copy(c.words, s.words)
	return c
}

// CopyFrom overwrites s in place with the contents of other.
// Both sets must share the same word count; unlike Clone, it allocates
// nothing.
func (s *Set) CopyFrom(other *Set) {
	copy(s.words, other.words)
}

// Set sets bit i.
func (s *Set) Set(i int) {
	s.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Clear clears bit i.
func (s *Set) Clear(i int) {
	s.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Test reports whether bit i is set.
func (s *Set) Test(i int) bool {
	return s.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// SetUpTo sets bits [0, n) and clears every bit at index >= n.
// Used once per search to seed the initial candidate set P = {0, ..., N-1}.
func (s *Set) SetUpTo(n int) {
	for w := range s.words {
		lo := w * wordBits
		switch {
		case lo+wordBits <= n:
			s.words[w] = ^uint64(0)
		case lo >= n:
			s.words[w] = 0
		default:
			// Partial word: set the low (n-lo) bits.
			s.words[w] = (uint64(1) << uint(n-lo)) - 1
		}
	}
}

// Empty reports whether no bit is set.
func (s *Set) Empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Popcount returns the number of set bits (|S|).
func (s *Set) Popcount() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// FirstSet returns the lowest-index set bit. The caller must ensure the
// set is non-empty (e.g. via Empty()); an empty set returns -1, which is
// never consumed as a vertex index by any caller in this module.
func (s *Set) FirstSet() int {
	for w, word := range s.words {
		if word != 0 {
			return w*wordBits + bits.TrailingZeros64(word)
		}
	}
	return -1
}

// And computes s &= other in place: intersection with other.
func (s *Set) And(other *Set) {
	for i := range s.words {
		s.words[i] &= other.words[i]
	}
}

// AndNot computes s &= ^other in place: intersection with the complement
// of other (i.e. removes every bit set in other from s).
func (s *Set) AndNot(other *Set) {
	for i := range s.words {
		s.words[i] &^= other.words[i]
	}
}

// Each invokes fn for every set bit in increasing order. Callers on the
// search hot path prefer FirstSet+Clear loops to avoid the closure
// overhead; within this module only tests call Each.
func (s *Set) Each(fn func(i int)) {
	for w, word := range s.words {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			fn(w*wordBits + b)
			word &^= 1 << uint(b)
		}
	}
}
