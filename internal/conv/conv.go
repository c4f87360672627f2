// Package conv provides safe integer conversion helpers for the string engines.
//
// These functions perform bounds checking before narrowing integer conversions
// to prevent silent overflow. They panic on overflow since this indicates a
// programming error (e.g., a sequence too large for internal limits).
package conv

import "math"

// IntToUint32 safely converts an int to uint32. Used at every site across
// the seq and sortseq packages that packs a slice index or offset into a
// fixed u32 field.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
