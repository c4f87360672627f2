package search

import "github.com/stringzilla-go/stringzilla/simd"

// FindAnyOf returns the index of the first byte in hay that is also one of
// the bytes in chars, or -1 if none is. It builds a simd.ByteSet membership
// bitmap once per call; callers searching the same set repeatedly should
// build a simd.ByteSet themselves and call simd.FindAnyOf directly.
func FindAnyOf(hay, chars []byte) int {
	return simd.FindAnyOf(hay, simd.NewByteSet(chars))
}

// FindNoneOf returns the index of the first byte in hay that is NOT one of
// the bytes in chars, or -1 if every byte is a member.
func FindNoneOf(hay, chars []byte) int {
	return simd.FindNoneOf(hay, simd.NewByteSet(chars))
}

// RFindAnyOf returns the index of the last byte in hay that is also one of
// the bytes in chars, or -1 if none is.
func RFindAnyOf(hay, chars []byte) int {
	return simd.RFindAnyOf(hay, simd.NewByteSet(chars))
}

// RFindNoneOf returns the index of the last byte in hay that is NOT one of
// the bytes in chars, or -1 if every byte is a member.
func RFindNoneOf(hay, chars []byte) int {
	return simd.RFindNoneOf(hay, simd.NewByteSet(chars))
}
