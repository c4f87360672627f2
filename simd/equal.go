// Package simd provides SWAR/SIMD-flavoured byte primitives for the search,
// similarity, and sorting engines: equality, lexicographic order, fill,
// copy, move, single-byte search, and byte-set membership search.
//
// Equal and Order are dispatch-gated: for inputs at or above a size
// threshold and an active capability tier other than Serial, an
// implementation processes multiple 64-bit lanes per step ("wide" tier);
// below the threshold, or with no capability beyond Serial, a portable
// byte/lane implementation runs. The other primitives have a single
// portable implementation. Both tiers are pure Go — there is no
// hand-written assembly backing this package (see DESIGN.md's Open
// Questions for why) — but the dispatch contract of spec.md §4.B/§4.C is
// otherwise exactly followed: one scalar baseline, one or more wider
// tiers, selected by detected capability and tolerant of any alignment.
package simd

import "github.com/stringzilla-go/stringzilla/dispatch"

// wideThreshold is the minimum input length, in bytes, before a wide tier
// is worth its setup cost. Below it the generic per-byte/per-lane loop
// wins, mirroring the teacher's "< 32 bytes: setup cost outweighs benefit"
// reasoning for its AVX2 primitives.
const wideThreshold = 32

// wideWords is the number of uint64 lanes processed per step in the wide
// tier, standing in for a vector register width (4 lanes ~= one 256-bit
// register of 8-byte fields).
const wideWords = 4

// Table is the process-wide dispatch table this package consults. Callers
// that want reproducible or constrained dispatch can call Table.Reset.
var Table = dispatch.NewTable()

// wideCapable reports whether the table's strongest installed tier is
// anything beyond the universal Serial baseline.
func wideCapable() bool {
	return Table.Strongest() != dispatch.Serial
}

// Equal reports whether a and b hold identical bytes. Lengths must match;
// Equal returns false immediately otherwise without inspecting contents,
// since spec.md's equality invariant is stated for strings "of equal
// length" and unequal lengths are trivially unequal.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n >= wideThreshold && wideCapable() {
		return equalWide(a, b, n)
	}
	return equalGeneric(a, b, n)
}

func equalGeneric(a, b []byte, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// equalWide compares wideWords*8-byte blocks at a time by XOR-ing
// corresponding uint64 lanes and OR-ing the results together; any nonzero
// lane means a mismatch. The tail shorter than one block falls back to the
// byte loop.
func equalWide(a, b []byte, n int) bool {
	blockSize := wideWords * 8
	i := 0
	for ; i+blockSize <= n; i += blockSize {
		var acc uint64
		for w := 0; w < wideWords; w++ {
			off := i + w*8
			acc |= loadLE64(a[off:]) ^ loadLE64(b[off:])
		}
		if acc != 0 {
			return false
		}
	}
	return equalGeneric(a[i:], b[i:], n-i)
}

func loadLE64(b []byte) uint64 {
	_ = b[7] // bounds-check hint for the compiler
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}
