package fingerprint

import (
	"math/rand"

	"github.com/chmduquesne/rollinghash/buzhash32"
)

// BuzHash is the cyclic-rotation rolling hasher of spec.md §4.F, backed by
// github.com/chmduquesne/rollinghash/buzhash32. Each instance gets its own
// 256-entry random substitution table, built the way
// other_examples/22ef4f32 (muscato_screen.go's genTables) builds one
// table per independent hash dimension: draw random uint32s and reject
// collisions until all 256 table slots are distinct.
type BuzHash struct {
	width int
	seed  int64
	inner *buzhash32.Buzhash32
	buf   []byte // pending bytes while filling, len < width
}

var _ Hasher = (*BuzHash)(nil)

// NewBuzHash builds a BuzHash rolling hasher for a window of width bytes,
// with its substitution table seeded deterministically from seed so
// repeated runs over the same input reproduce the same fingerprint.
func NewBuzHash(seed int64, width int) *BuzHash {
	return &BuzHash{
		width: width,
		seed:  seed,
		inner: buzhash32.NewFromUint32Array(randomTable(seed)),
		buf:   make([]byte, 0, width),
	}
}

// buzHashSeed returns the seed h was constructed with, so callers that
// need an independent clone (same table, fresh state) can rebuild it.
func buzHashSeed(h *BuzHash) int64 { return h.seed }

func randomTable(seed int64) [256]uint32 {
	rng := rand.New(rand.NewSource(seed))
	var table [256]uint32
	seen := make(map[uint32]bool, 256)
	for i := 0; i < 256; i++ {
		for {
			x := rng.Uint32()
			if !seen[x] {
				table[i] = x
				seen[x] = true
				break
			}
		}
	}
	return table
}

func (h *BuzHash) Push(b byte) {
	h.buf = append(h.buf, b)
	if len(h.buf) == h.width {
		_, _ = h.inner.Write(h.buf)
	}
}

func (h *BuzHash) Roll(_, newByte byte) {
	h.inner.Roll(newByte)
}

func (h *BuzHash) Digest() uint32 { return h.inner.Sum32() }

func (h *BuzHash) Window() int { return h.width }

func (h *BuzHash) Reset() {
	h.inner.Reset()
	h.buf = h.buf[:0]
}
