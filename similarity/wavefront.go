package similarity

import (
	"math"

	"github.com/stringzilla-go/stringzilla/internal/alloc"
)

// negInf stands in for an unreachable cell. It leaves enough headroom that
// repeated gap-extend additions along one full sequence length cannot wrap
// around before comparisons catch the cell as still-unreachable.
const negInf = math.MinInt32 / 2

// wavefrontScore implements the Gotoh affine-gap recurrence spec.md §4.E
// describes: for each cell, min/max over a delete, an insert, and a
// substitute transition, with separate gap-open and gap-extend costs
// tracked through two auxiliary matrices (E: gap consuming b, F: gap
// consuming a).
//
// The reference architecture in spec.md §4.E evaluates this matrix one
// anti-diagonal (constant i+j) at a time, each diagonal depending only on
// the previous two. That traversal order and a row-major sweep read
// exactly the same dependency set — a cell only ever needs
// (i-1,j), (i,j-1), (i-1,j-1) — so this implementation sweeps row-major
// with two rolling rows instead of diagonal-indexed rolling buffers. This
// is a deliberate simplification recorded in DESIGN.md: it keeps the
// affine-gap boundary conditions (row 0 / column 0) expressible as plain
// loop prologues instead of diagonal-relative index arithmetic, trading
// the anti-diagonal's SIMD-across-one-diagonal parallelism opportunity
// (spec.md §4.E "the inner loop is annotated for SIMD") for materially
// lower bug surface. Locality (Global vs Local) only changes whether H is
// clamped at zero and whether the answer is the corner cell or the
// running maximum.
func wavefrontScore(a, b []int32, model CostModel, locality Locality) int {
	n, m := len(a), len(b)
	gapOpen := model.gapOpen()
	gapExtend := model.gapExtend()
	local := locality == Local

	clamp := func(v int) int {
		if local && v < 0 {
			return 0
		}
		return v
	}

	// Six DP rows are per-call scratch, never shared across calls (spec.md
	// §5), so they come from the recyclable int pool instead of a fresh
	// make() on every invocation.
	hPrev := alloc.DefaultInts.Get(m + 1)
	ePrev := alloc.DefaultInts.Get(m + 1)
	fPrev := alloc.DefaultInts.Get(m + 1)
	hCur := alloc.DefaultInts.Get(m + 1)
	eCur := alloc.DefaultInts.Get(m + 1)
	fCur := alloc.DefaultInts.Get(m + 1)
	defer func() {
		alloc.DefaultInts.Put(hPrev)
		alloc.DefaultInts.Put(ePrev)
		alloc.DefaultInts.Put(fPrev)
		alloc.DefaultInts.Put(hCur)
		alloc.DefaultInts.Put(eCur)
		alloc.DefaultInts.Put(fCur)
	}()

	hPrev[0] = 0
	ePrev[0] = negInf
	fPrev[0] = negInf
	for j := 1; j <= m; j++ {
		ePrev[j] = maxInt(hPrev[j-1]+gapOpen, ePrev[j-1]+gapExtend)
		fPrev[j] = negInf
		hPrev[j] = clamp(ePrev[j])
	}

	runningMax := 0
	for j := 0; j <= m; j++ {
		if hPrev[j] > runningMax {
			runningMax = hPrev[j]
		}
	}

	for i := 1; i <= n; i++ {
		fCur[0] = maxInt(hPrev[0]+gapOpen, fPrev[0]+gapExtend)
		eCur[0] = negInf
		hCur[0] = clamp(fCur[0])
		if hCur[0] > runningMax {
			runningMax = hCur[0]
		}

		for j := 1; j <= m; j++ {
			diag := hPrev[j-1] + model.sub(a[i-1], b[j-1])
			eCur[j] = maxInt(hCur[j-1]+gapOpen, eCur[j-1]+gapExtend)
			fCur[j] = maxInt(hPrev[j]+gapOpen, fPrev[j]+gapExtend)
			best := diag
			if eCur[j] > best {
				best = eCur[j]
			}
			if fCur[j] > best {
				best = fCur[j]
			}
			hCur[j] = clamp(best)
			if hCur[j] > runningMax {
				runningMax = hCur[j]
			}
		}

		hPrev, hCur = hCur, hPrev
		ePrev, eCur = eCur, ePrev
		fPrev, fCur = fCur, fPrev
	}

	if local {
		return runningMax
	}
	final := hPrev[m]
	if ePrev[m] > final {
		final = ePrev[m]
	}
	if fPrev[m] > final {
		final = fPrev[m]
	}
	return final
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
