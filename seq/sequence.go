// Package seq implements the string-sequence ABI shared by every engine:
// a polymorphic view over N strings, exposed through the three shapes
// spec.md §3/§6 describes — an index-callback form, a 32-bit tape, and a
// 64-bit tape — unified behind one Sequence interface so search,
// similarity, fingerprint, and sortseq engines can stay shape-agnostic.
package seq

import "github.com/stringzilla-go/stringzilla/internal/conv"

// Sequence is a read view over N byte strings plus a mutable permutation
// used by the sorting engine. Implementations must keep Order a
// permutation of [0,Len()) at all times; callers (chiefly sortseq.ArgSort)
// rearrange it in place rather than moving the underlying string data.
type Sequence interface {
	// Len returns the number of strings in the sequence.
	Len() int
	// At returns the i'th string by logical position, independent of the
	// current Order permutation — callers that want sorted access index
	// through Order themselves: seq.At(seq.Order()[i]).
	At(i int) []byte
	// Order returns the mutable permutation array. len(Order()) == Len().
	Order() []uint32
}

// IndexCallback is the accessor-handle shape: an opaque handle plus
// closures returning each element's start offset and length into a
// caller-owned backing buffer, plus a mutable permutation array.
type IndexCallback struct {
	Handle    any
	GetStart  func(handle any, i int) int
	GetLength func(handle any, i int) int
	Data      []byte
	order     []uint32
}

// NewIndexCallback builds an IndexCallback sequence of n elements backed by
// data, with order initialised to the identity permutation.
func NewIndexCallback(handle any, data []byte, n int, getStart, getLength func(handle any, i int) int) *IndexCallback {
	order := make([]uint32, n)
	for i := range order {
		order[i] = conv.IntToUint32(i)
	}
	return &IndexCallback{Handle: handle, GetStart: getStart, GetLength: getLength, Data: data, order: order}
}

// Len implements Sequence.
func (s *IndexCallback) Len() int { return len(s.order) }

// At implements Sequence.
func (s *IndexCallback) At(i int) []byte {
	start := s.GetStart(s.Handle, i)
	length := s.GetLength(s.Handle, i)
	return s.Data[start : start+length]
}

// Order implements Sequence.
func (s *IndexCallback) Order() []uint32 { return s.order }

// Tape32 is a single byte buffer plus a u32 offset array of length N+1:
// element i is Buffer[Offsets[i]:Offsets[i+1]]. Total buffer length must
// fit in a uint32 (< 2^32 bytes).
type Tape32 struct {
	Buffer  []byte
	Offsets []uint32
	order   []uint32
}

// NewTape32 builds a Tape32 sequence, validating the invariants spec.md §3
// requires: offsets monotonically non-decreasing, Offsets[0]==0, and
// Offsets[N] equal to len(buffer). Panics if offsets is malformed — this
// is a programming-error contract violation, not a runtime Status.
func NewTape32(buffer []byte, offsets []uint32) *Tape32 {
	validateTapeOffsets32(buffer, offsets)
	n := len(offsets) - 1
	order := make([]uint32, n)
	for i := range order {
		order[i] = conv.IntToUint32(i)
	}
	return &Tape32{Buffer: buffer, Offsets: offsets, order: order}
}

func validateTapeOffsets32(buffer []byte, offsets []uint32) {
	if len(offsets) == 0 {
		panic("seq: Tape32 requires at least one offset (offsets[0]==0)")
	}
	if offsets[0] != 0 {
		panic("seq: Tape32 offsets[0] must be 0")
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			panic("seq: Tape32 offsets must be monotonically non-decreasing")
		}
	}
	if int(offsets[len(offsets)-1]) != len(buffer) {
		panic("seq: Tape32 offsets[N] must equal len(buffer)")
	}
}

// Len implements Sequence.
func (t *Tape32) Len() int { return len(t.order) }

// At implements Sequence.
func (t *Tape32) At(i int) []byte { return t.Buffer[t.Offsets[i]:t.Offsets[i+1]] }

// Order implements Sequence.
func (t *Tape32) Order() []uint32 { return t.order }

// Tape64 is the same shape as Tape32 with u64 offsets, lifting the 2^32
// byte-buffer limit.
type Tape64 struct {
	Buffer  []byte
	Offsets []uint64
	order   []uint32
}

// NewTape64 builds a Tape64 sequence with the same invariants as Tape32.
func NewTape64(buffer []byte, offsets []uint64) *Tape64 {
	validateTapeOffsets64(buffer, offsets)
	n := len(offsets) - 1
	order := make([]uint32, n)
	for i := range order {
		order[i] = conv.IntToUint32(i)
	}
	return &Tape64{Buffer: buffer, Offsets: offsets, order: order}
}

func validateTapeOffsets64(buffer []byte, offsets []uint64) {
	if len(offsets) == 0 {
		panic("seq: Tape64 requires at least one offset (offsets[0]==0)")
	}
	if offsets[0] != 0 {
		panic("seq: Tape64 offsets[0] must be 0")
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			panic("seq: Tape64 offsets must be monotonically non-decreasing")
		}
	}
	if offsets[len(offsets)-1] != uint64(len(buffer)) {
		panic("seq: Tape64 offsets[N] must equal len(buffer)")
	}
}

// Len implements Sequence.
func (t *Tape64) Len() int { return len(t.order) }

// At implements Sequence.
func (t *Tape64) At(i int) []byte { return t.Buffer[t.Offsets[i]:t.Offsets[i+1]] }

// Order implements Sequence.
func (t *Tape64) Order() []uint32 { return t.order }

// FromSlices builds a Tape32 sequence from a plain []string, the shape
// most Go callers reach for first. It is a convenience constructor, not
// part of the spec's three canonical forms.
func FromSlices(strs []string) *Tape32 {
	total := 0
	for _, s := range strs {
		total += len(s)
	}
	buffer := make([]byte, 0, total)
	offsets := make([]uint32, 0, len(strs)+1)
	offsets = append(offsets, 0)
	for _, s := range strs {
		buffer = append(buffer, s...)
		offsets = append(offsets, conv.IntToUint32(len(buffer)))
	}
	return NewTape32(buffer, offsets)
}
