package search

import "github.com/stringzilla-go/stringzilla/simd"

// Find returns the index of the first occurrence of needle in hay, or -1
// if absent. Find dispatches on len(needle) into the length classes of
// spec.md §4.D.
//
// An empty needle is an implementation-defined boundary (spec.md §8); this
// implementation documents and tests the choice to match strings.Index:
// Find(hay, "") always returns 0, even when hay is empty.
func Find(hay, needle []byte) int {
	n := len(needle)
	if n == 0 {
		return 0
	}
	if n > len(hay) {
		return -1
	}
	switch {
	case n == 1:
		return simd.FindByte(hay, needle[0])
	case n <= 4:
		return hyperscalarFind(hay, needle)
	case n <= 8:
		return bitapFind[uint8](hay, needle)
	case n <= 16:
		return bitapFind[uint16](hay, needle)
	case n <= 64:
		return bitapFind[uint64](hay, needle)
	default:
		return findLong(hay, needle)
	}
}

// RFind returns the index of the last occurrence of needle in hay, or -1
// if absent. RFind(hay, "") returns len(hay), the mirror of Find's
// empty-needle convention.
func RFind(hay, needle []byte) int {
	n := len(needle)
	if n == 0 {
		return len(hay)
	}
	if n > len(hay) {
		return -1
	}
	switch {
	case n == 1:
		return simd.RFindByte(hay, needle[0])
	case n <= 4:
		return hyperscalarRFind(hay, needle)
	case n <= 8:
		return bitapRFind[uint8](hay, needle)
	case n <= 16:
		return bitapRFind[uint16](hay, needle)
	case n <= 64:
		return bitapRFind[uint64](hay, needle)
	default:
		return rFindLong(hay, needle)
	}
}

// longPrefixLen is the Bitap prefix length used to pre-filter candidates
// for needles longer than 64 bytes, per spec.md §4.D.
const longPrefixLen = 64

// findLong locates needles longer than 64 bytes: the first 64 bytes are
// found with Bitap, and each candidate's tail is verified with
// simd.Equal. On a tail mismatch the search advances by exactly one byte
// (not by the prefix length), which is required for correctness on
// self-overlapping needles.
func findLong(hay, needle []byte) int {
	prefix := needle[:longPrefixLen]
	tail := needle[longPrefixLen:]
	searchFrom := 0
	for {
		remaining := hay[searchFrom:]
		if len(remaining) < len(needle) {
			return -1
		}
		// Only the window that still leaves room for the full needle is a
		// valid candidate region for the prefix match.
		window := remaining[:len(remaining)-len(needle)+longPrefixLen]
		idx := bitapFind[uint64](window, prefix)
		if idx == -1 {
			return -1
		}
		pos := searchFrom + idx
		if simd.Equal(hay[pos+longPrefixLen:pos+len(needle)], tail) {
			return pos
		}
		searchFrom = pos + 1
	}
}

// rFindLong mirrors findLong, scanning from the end.
func rFindLong(hay, needle []byte) int {
	prefix := needle[:longPrefixLen]
	tail := needle[longPrefixLen:]
	searchTo := len(hay)
	for {
		if searchTo < len(needle) {
			return -1
		}
		window := hay[:searchTo-len(needle)+longPrefixLen]
		idx := bitapRFind[uint64](window, prefix)
		if idx == -1 {
			return -1
		}
		if simd.Equal(hay[idx+longPrefixLen:idx+len(needle)], tail) {
			return idx
		}
		searchTo = idx + len(needle) - 1
	}
}
