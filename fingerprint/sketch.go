package fingerprint

import (
	"math"

	"github.com/stringzilla-go/stringzilla/internal/alloc"
)

// unsetMin is the sentinel minimum for a dimension whose window never
// fully fit inside the input, per spec.md §4.F/§7.
const unsetMin = math.MaxUint32

// Sketch is a Count-Min-Sketch fingerprint: D independent dimensions,
// each holding the minimum hash observed over every window of its width
// and the count of windows tied at that minimum. Per spec.md §3,
// count == 0 iff Min == math.MaxUint32 (the unset sentinel), and the two
// arrays always have equal length.
type Sketch struct {
	Min   []uint32
	Count []uint32
}

// Dim describes one fingerprint dimension: its window width and which
// hasher variant produces it.
type Dim struct {
	Width  int
	Hasher Hasher
}

// RabinKarpDim builds a Dim backed by a fresh RabinKarpInt of the given
// width.
func RabinKarpDim(width int) Dim {
	return Dim{Width: width, Hasher: NewRabinKarpInt(width)}
}

// BuzHashDim builds a Dim backed by a fresh BuzHash of the given width,
// seeded so two calls with the same seed produce the same table.
func BuzHashDim(width int, seed int64) Dim {
	return Dim{Width: width, Hasher: NewBuzHash(seed, width)}
}

// Builder owns D independent rolling hashers, possibly at different
// widths, and accumulates one Sketch from a stream of bytes fed via
// Update, per spec.md §4.F's multi-dimension fingerprint builder.
type Builder struct {
	dims  []Dim
	pos   []int // bytes seen so far per dim, capped display at Width
	min   []uint32
	cnt   []uint32
	rings []*ringBuf
}

// NewBuilder constructs a Builder over dims. The Dim slice is retained;
// callers should not reuse a Dim's Hasher across Builders.
func NewBuilder(dims []Dim) *Builder {
	b := &Builder{
		dims: dims,
		pos:  make([]int, len(dims)),
		min:  make([]uint32, len(dims)),
		cnt:  make([]uint32, len(dims)),
	}
	for i := range b.min {
		b.min[i] = unsetMin
	}
	return b
}

// Update feeds one chunk of text through every dimension's hasher,
// maintaining the running per-dimension minimum and tie count (observe
// writes it with branches; the branchless form computes the same values):
//
//	count <- count*(new >= min) + (new <= min); min <- min(min, new)
//
// A per-dimension ring of the last Width bytes (see history) is kept so
// Roll's old-byte
// argument is available; callers that stream one chunk at a time across
// multiple Update calls must pass chunks from the same logical document
// in order (Update is not safe to call concurrently for the same
// Builder — spec.md §4.F's parallel case gives every thread its own
// Builder and merges Sketches afterward, see Merge).
func (b *Builder) Update(text []byte) {
	for i := range b.dims {
		b.updateDim(i, text)
	}
}

func (b *Builder) updateDim(i int, text []byte) {
	d := b.dims[i]
	w := d.Width
	for _, c := range text {
		if b.pos[i] < w {
			d.Hasher.Push(c)
			b.seed(i, c)
			b.pos[i]++
		} else {
			old := b.history(i, c)
			d.Hasher.Roll(old, c)
		}
		if b.pos[i] == w {
			b.observe(i, d.Hasher.Digest())
		}
	}
}

// history is a ring of the last Width bytes per dimension, needed
// because Roll's contract (spec.md §4.F) takes both the byte leaving the
// window and the byte entering it. Builder keeps one ring per dimension
// lazily, allocated on first use.
func (b *Builder) history(i int, incoming byte) byte {
	r := b.ring(i)
	old := r.buf[r.head]
	r.buf[r.head] = incoming
	r.head = (r.head + 1) % len(r.buf)
	return old
}

// seed records a byte pushed during the fill phase (before the window is
// full) into the ring at the same position history would later overwrite.
// Without this, the ring's zero-valued backing array stands in for the
// real departing byte on the window's first Width rolls, corrupting the
// rolled digest for every window after it.
func (b *Builder) seed(i int, c byte) {
	r := b.ring(i)
	r.buf[r.head] = c
	r.head = (r.head + 1) % len(r.buf)
}

type ringBuf struct {
	buf  []byte
	head int
}

func (b *Builder) ring(i int) *ringBuf {
	if b.rings == nil {
		b.rings = make([]*ringBuf, len(b.dims))
	}
	if b.rings[i] == nil {
		w := b.dims[i].Width
		// The ring buffer is per-builder scratch (spec.md §5): source it
		// from the shared byte pool instead of a bare make().
		b.rings[i] = &ringBuf{buf: alloc.Default.Allocate(w)}
	}
	return b.rings[i]
}

func (b *Builder) observe(i int, hash uint32) {
	if hash < b.min[i] {
		b.min[i] = hash
		b.cnt[i] = 1
	} else if hash == b.min[i] {
		b.cnt[i]++
	}
}

// Sketch exports the builder's current state as a Sketch.
func (b *Builder) Sketch() Sketch {
	min := make([]uint32, len(b.min))
	cnt := make([]uint32, len(b.cnt))
	copy(min, b.min)
	copy(cnt, b.cnt)
	return Sketch{Min: min, Count: cnt}
}

// Merge combines two Sketches computed over adjacent or overlapping
// spans of the same document: per dimension, the smaller minimum wins;
// on a tie, counts add. Both a per-document-mutex merge and a
// tree-reduction merge produce identical output, per spec.md §4.F,
// because Merge is associative and commutative.
func Merge(a, b Sketch) Sketch {
	out := Sketch{Min: make([]uint32, len(a.Min)), Count: make([]uint32, len(a.Count))}
	for i := range a.Min {
		switch {
		case a.Min[i] < b.Min[i]:
			out.Min[i], out.Count[i] = a.Min[i], a.Count[i]
		case b.Min[i] < a.Min[i]:
			out.Min[i], out.Count[i] = b.Min[i], b.Count[i]
		default:
			out.Min[i], out.Count[i] = a.Min[i], a.Count[i]+b.Count[i]
		}
	}
	return out
}
