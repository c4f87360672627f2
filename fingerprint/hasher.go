// Package fingerprint implements spec.md §4.F's rolling hashers and
// multi-dimension Count-Min-Sketch fingerprint builder: push bytes into a
// window, roll the window forward one byte at a time in O(1), and digest
// the current state into a 32-bit hash. Three hasher variants are
// supplied, matching spec.md's "integer Rabin-Karp; integer BuzHash ...;
// double-precision floating Rabin-Karp" list; RabinKarpInt is the default.
package fingerprint

// Hasher is a single rolling hasher's contract: Push advances the window
// while it is still filling (the first Window bytes of a stream), Roll
// advances an already-full window by one byte, and Digest truncates the
// current internal state to a 32-bit output, per spec.md §4.F.
type Hasher interface {
	// Push feeds the next byte into a window that is not yet full.
	Push(b byte)
	// Roll advances a full window: oldByte leaves, newByte enters.
	Roll(oldByte, newByte byte)
	// Digest truncates the current state to an output hash.
	Digest() uint32
	// Window returns W, the configured window width.
	Window() int
	// Reset returns the hasher to its zero, empty-window state.
	Reset()
}

// NewDefaultHasher builds this package's default rolling hasher for a
// window of width bytes: RabinKarpInt, the only variant without a flagged
// precision or speed caveat (BuzHash needs a per-dimension random table;
// RabinKarpFloat is the explicitly educational floating variant).
func NewDefaultHasher(width int) Hasher {
	return NewRabinKarpInt(width)
}
