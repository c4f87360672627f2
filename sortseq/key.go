// Package sortseq implements spec.md §4.G's sorting engine: ArgSort and
// PartialArgSort over a seq.Sequence. Elements are first partitioned by
// the big-endian prefix of their first four bytes using MSB radix
// partitioning (original_source/include/stringzilla/sort.h's sz_sort:
// "combining Radix Sort for the first 32 bits of every word and a
// follow-up by a more conventional sorting procedure on equally prefixed
// parts"), then any partition sharing a common prefix falls through to an
// introsort whose comparator dereferences the full string.
package sortseq

import (
	"github.com/stringzilla-go/stringzilla/internal/conv"
	"github.com/stringzilla-go/stringzilla/seq"
)

// packKey builds the 64-bit radix key for element i of s: the top 32 bits
// are the big-endian, zero-padded first four bytes of the element;
// the bottom 32 bits are i itself, per spec.md §4.G step 1.
func packKey(s seq.Sequence, i int) uint64 {
	b := s.At(i)
	var prefix uint32
	for k := 0; k < 4; k++ {
		prefix <<= 8
		if k < len(b) {
			prefix |= uint32(b[k])
		}
	}
	return uint64(prefix)<<32 | uint64(conv.IntToUint32(i))
}

// keyIndex extracts the original element index (the low 32 bits) back
// out of a radix key, per spec.md §4.G step 5.
func keyIndex(key uint64) int {
	return int(uint32(key))
}
