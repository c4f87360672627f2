// Package search implements spec.md §4.D's length-specialised exact
// substring search: a single-byte SWAR broadcast finder, a scalar
// "hyperscalar" prefix-compare-and-verify stage for 2-4 byte needles, a
// Bitap state machine promoted across uint8/uint16/uint64 widths for
// needles up to 64 bytes, and a prefix-Bitap-plus-tail-verify strategy for
// longer needles. Byte-set search (find any of / find none of, and their
// reverse mirrors) is re-exported from the simd package's two-level
// nibble-bitmap ByteSet.
package search

import "github.com/stringzilla-go/stringzilla/simd"

// bitapState is the set of integer widths the Bitap state machine can be
// instantiated over, matching spec.md §4.D's 8/16/64-bit state promotion.
type bitapState interface {
	~uint8 | ~uint16 | ~uint64
}

// bitapFind runs the classic shift-and/Bitap exact-match automaton
// forward over hay, returning the start index of the first match of
// needle, or -1. len(needle) must not exceed the bit width of T.
func bitapFind[T bitapState](hay, needle []byte) int {
	n := len(needle)
	var mask [256]T
	allOnes := ^T(0)
	for i := range mask {
		mask[i] = allOnes
	}
	var bit T = 1
	for i := 0; i < n; i++ {
		mask[needle[i]] &^= bit
		bit <<= 1
	}
	matchBit := T(1) << uint(n-1)
	state := allOnes
	for i := 0; i < len(hay); i++ {
		state = (state << 1) | mask[hay[i]]
		if state&matchBit == 0 {
			return i - n + 1
		}
	}
	return -1
}

// bitapRFind is bitapFind's mirror image: it scans hay from the end and
// returns the start index of the last (rightmost) match of needle, or -1.
// The needle's mask is built from its positions counted from the right, so
// the automaton effectively runs the forward algorithm over the reversed
// problem without allocating reversed copies of either input.
func bitapRFind[T bitapState](hay, needle []byte) int {
	n := len(needle)
	var mask [256]T
	allOnes := ^T(0)
	for i := range mask {
		mask[i] = allOnes
	}
	var bit T = 1
	for i := 0; i < n; i++ {
		mask[needle[n-1-i]] &^= bit
		bit <<= 1
	}
	matchBit := T(1) << uint(n-1)
	state := allOnes
	for i := len(hay) - 1; i >= 0; i-- {
		state = (state << 1) | mask[hay[i]]
		if state&matchBit == 0 {
			return i
		}
	}
	return -1
}

// hyperscalarFind implements the 2-4 byte length class: a candidate is any
// position whose first byte matches the needle's first byte (found via
// simd.FindByte's SWAR broadcast), verified in full with simd.Equal. This
// is the portable-Go shape of spec.md §4.D's "broadcast the needle prefix,
// compare against shifted haystack words, verify survivors" SIMD variant.
func hyperscalarFind(hay, needle []byte) int {
	n := len(needle)
	first := needle[0]
	i := 0
	for i+n <= len(hay) {
		idx := simd.FindByte(hay[i:len(hay)-n+1], first)
		if idx == -1 {
			return -1
		}
		pos := i + idx
		if simd.Equal(hay[pos:pos+n], needle) {
			return pos
		}
		i = pos + 1
	}
	return -1
}

// hyperscalarRFind mirrors hyperscalarFind, searching from the end.
func hyperscalarRFind(hay, needle []byte) int {
	n := len(needle)
	if n > len(hay) {
		return -1
	}
	end := len(hay) - n + 1 // exclusive upper bound on valid start positions
	for end > 0 {
		idx := simd.RFindByte(hay[:end], needle[0])
		if idx == -1 {
			return -1
		}
		if simd.Equal(hay[idx:idx+n], needle) {
			return idx
		}
		end = idx
	}
	return -1
}
