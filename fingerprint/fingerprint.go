package fingerprint

import (
	"sync"

	"github.com/stringzilla-go/stringzilla/executor"
)

// cacheLineBytes is the chunk-alignment granularity spec.md §4.F asks for
// when slicing a large document across threads.
const cacheLineBytes = 64

// Fingerprint computes a Sketch over text in a single pass, one Builder,
// no parallelism — the small-document path of spec.md §4.F's parallelism
// contract.
func Fingerprint(text []byte, dims []Dim) Sketch {
	b := NewBuilder(dims)
	b.Update(text)
	return b.Sketch()
}

// ParallelFingerprint computes a Sketch over text the same way Fingerprint
// does, but for documents at or above threshold bytes it slices text into
// chunks of cacheLineBytes (or of the widest window, if that is larger),
// runs one Builder per chunk and dimension across ex, and
// merges the per-chunk Sketches under a single mutex, per spec.md §4.F:
// "each thread processes its chunk with overlap equal to
// max_window_width-1 so cross-boundary windows are not lost."
//
// dims' Hasher fields are used as templates: ParallelFingerprint builds a
// fresh Dim (same Width, same concrete Hasher type) per chunk so
// concurrent chunks never share hasher state.
func ParallelFingerprint(text []byte, dims []Dim, threshold int, ex executor.Executor) Sketch {
	if len(text) < threshold || ex.ThreadsCount() <= 1 {
		return Fingerprint(text, dims)
	}

	maxWidth := 0
	for _, d := range dims {
		if d.Width > maxWidth {
			maxWidth = d.Width
		}
	}
	overlap := maxWidth - 1
	if overlap < 0 {
		overlap = 0
	}

	chunkSize := cacheLineBytes
	if chunkSize < maxWidth {
		chunkSize = maxWidth
	}
	numChunks := (len(text) + chunkSize - 1) / chunkSize
	if numChunks < 1 {
		numChunks = 1
	}

	var (
		mu     sync.Mutex
		merged = unsetSketch(len(dims))
		first  = true
	)

	ex.ForEachStatic(numChunks, func(i int, _ executor.Prong) {
		begin := i * chunkSize
		end := begin + chunkSize
		if end > len(text) {
			end = len(text)
		}
		extended := end + overlap
		if extended > len(text) {
			extended = len(text)
		}
		local := cloneDims(dims)
		s := unsetSketch(len(dims))
		for d := range local {
			// Each dimension sees only the windows that start inside
			// [begin,end), so a window narrower than maxWidth that starts in
			// the overlap is counted by the next chunk alone.
			stop := end + local[d].Width - 1
			if stop > extended {
				stop = extended
			}
			one := Fingerprint(text[begin:stop], local[d:d+1])
			s.Min[d], s.Count[d] = one.Min[0], one.Count[0]
		}

		mu.Lock()
		if first {
			merged = s
			first = false
		} else {
			merged = Merge(merged, s)
		}
		mu.Unlock()
	})

	return merged
}

func unsetSketch(n int) Sketch {
	min := make([]uint32, n)
	cnt := make([]uint32, n)
	for i := range min {
		min[i] = unsetMin
	}
	return Sketch{Min: min, Count: cnt}
}

// cloneDims builds fresh, zeroed Hashers of the same width/variant as
// dims, so every chunk's Builder owns independent hasher state, per
// spec.md §4.F's "each thread owns its hasher instance."
func cloneDims(dims []Dim) []Dim {
	out := make([]Dim, len(dims))
	for i, d := range dims {
		switch h := d.Hasher.(type) {
		case *RabinKarpInt:
			out[i] = Dim{Width: d.Width, Hasher: NewRabinKarpInt(d.Width)}
		case *RabinKarpFloat:
			out[i] = Dim{Width: d.Width, Hasher: NewRabinKarpFloat(d.Width)}
		case *BuzHash:
			out[i] = Dim{Width: d.Width, Hasher: NewBuzHash(buzHashSeed(h), d.Width)}
		default:
			// Unknown hasher type: fall back to resetting and reusing the
			// shared instance, which is safe only under serial execution.
			d.Hasher.Reset()
			out[i] = d
		}
	}
	return out
}
