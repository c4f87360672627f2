package simd

// ByteSet is a 256-bit membership bitmap over byte values, addressed as a
// two-level lookup: the high nibble selects one of 16 rows, the low nibble
// selects a bit within that row. This mirrors the "shuffle-based two-level
// lookup" SIMD byte-set search spec.md §4.D describes (high nibble indexes
// a 16-byte table, low nibble selects a bit within the retrieved byte) and
// the bucket-membership nibble masks in the teacher's Teddy prefilter
// (prefilter/teddy.go), generalized from pattern buckets to raw byte
// membership.
type ByteSet [16]uint16

// NewByteSet builds a ByteSet containing every byte in members.
func NewByteSet(members []byte) ByteSet {
	var s ByteSet
	for _, m := range members {
		s.Add(m)
	}
	return s
}

// Add inserts b into the set.
func (s *ByteSet) Add(b byte) {
	row := b >> 4
	bit := b & 0x0f
	s[row] |= 1 << bit
}

// Contains reports whether b is a member of the set.
func (s ByteSet) Contains(b byte) bool {
	row := b >> 4
	bit := b & 0x0f
	return s[row]&(1<<bit) != 0
}

// FindAnyOf returns the index of the first byte in hay that belongs to set,
// or -1 if none does.
func FindAnyOf(hay []byte, set ByteSet) int {
	for i, b := range hay {
		if set.Contains(b) {
			return i
		}
	}
	return -1
}

// FindNoneOf returns the index of the first byte in hay that does NOT
// belong to set, or -1 if every byte is a member.
func FindNoneOf(hay []byte, set ByteSet) int {
	for i, b := range hay {
		if !set.Contains(b) {
			return i
		}
	}
	return -1
}

// RFindAnyOf returns the index of the last byte in hay that belongs to
// set, or -1 if none does. It is the mirror image of FindAnyOf per
// spec.md §4.D's "Reverse variants are mirror images".
func RFindAnyOf(hay []byte, set ByteSet) int {
	for i := len(hay) - 1; i >= 0; i-- {
		if set.Contains(hay[i]) {
			return i
		}
	}
	return -1
}

// RFindNoneOf returns the index of the last byte in hay that does NOT
// belong to set, or -1 if every byte is a member.
func RFindNoneOf(hay []byte, set ByteSet) int {
	for i := len(hay) - 1; i >= 0; i-- {
		if !set.Contains(hay[i]) {
			return i
		}
	}
	return -1
}
