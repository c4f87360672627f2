package sortseq

import (
	"bytes"

	"github.com/stringzilla-go/stringzilla/internal/conv"
	"github.com/stringzilla-go/stringzilla/seq"
)

// ArgSort sorts s.Order() in place so that s.At(int(s.Order()[i])) is
// non-decreasing lexicographically across i, per spec.md §4.G. Not
// guaranteed stable. Returns the permutation for convenience (it is the
// same slice as s.Order()).
func ArgSort(s seq.Sequence) []uint32 {
	n := s.Len()
	if n < 2 {
		return s.Order()
	}
	keys := buildKeys(s)
	radixSortPrefix(keys, func(sub []uint64) { introSort(sub, fullStringLess(s)) })
	writeBack(s, keys)
	return s.Order()
}

// PartialArgSort sorts only the first k positions of s.Order() to full
// convergence: s.At(Order()[0..k)) is the k smallest elements in sorted
// order; the remaining N-k entries hold the rest of the permutation in
// unspecified order, per spec.md §4.G's "sorts only the first K positions
// to convergence."
func PartialArgSort(s seq.Sequence, k int) []uint32 {
	n := s.Len()
	if k > n {
		k = n
	}
	if k < 2 {
		return s.Order()
	}
	keys := buildKeys(s)
	less := fullStringLess(s)
	quickselectPrefix(keys, k, less)
	introSort(keys[:k], less)
	writeBack(s, keys)
	return s.Order()
}

func buildKeys(s seq.Sequence) []uint64 {
	n := s.Len()
	keys := make([]uint64, n)
	for i := 0; i < n; i++ {
		keys[i] = packKey(s, i)
	}
	return keys
}

func writeBack(s seq.Sequence, keys []uint64) {
	order := s.Order()
	for i, k := range keys {
		order[i] = conv.IntToUint32(keyIndex(k))
	}
}

// fullStringLess breaks ties within a shared 32-bit prefix bucket by
// comparing the complete strings the keys refer back into s, per spec.md
// §4.G step 4's "comparator that dereferences the sequence via its
// accessors to break ties by full-string compare."
func fullStringLess(s seq.Sequence) func(a, b uint64) bool {
	return func(a, b uint64) bool {
		return bytes.Compare(s.At(keyIndex(a)), s.At(keyIndex(b))) < 0
	}
}
