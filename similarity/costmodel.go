// Package similarity implements spec.md §4.E's edit-distance and
// alignment-scoring engines: Levenshtein (byte and UTF-8), Needleman-Wunsch
// global affine-gap alignment, and Smith-Waterman local affine-gap
// alignment. All three share one affine-gap scoring core (wavefrontScore,
// swept row-major), working on int32 characters (bytes or runes) and
// either cost model (uniform or 256x256 lookup); for Levenshtein only, a
// Wagner-Fischer fallback handles inputs whose shorter dimension is below
// 16 characters.
//
// Every engine here is a maximizing-score engine: higher is better.
// Levenshtein distance is derived by negating a score computed with match
// cost 0 and mismatch/gap costs -1, which is also exactly spec.md §8's
// "scoring consistency" invariant (uniform NW with match=0, mismatch=1,
// gap open=extend=1 equals negated Levenshtein).
package similarity

// Locality selects whether the DP final answer is the bottom-right corner
// cell (Global, Needleman-Wunsch) or the running maximum over every cell
// (Local, Smith-Waterman).
type Locality int

const (
	Global Locality = iota
	Local
)

// UniformCost is the "one value per category" cost model: a single match
// score, mismatch penalty, gap-open penalty, and gap-extend penalty, each
// within [-128,127] per spec.md §3.
type UniformCost struct {
	Match      int8
	Mismatch   int8
	GapOpen    int8
	GapExtend  int8
}

// LookupCost is the 256x256-substitution-matrix cost model: Subst[a][b] is
// the score of aligning byte a with byte b, plus a single gap-open and
// gap-extend penalty.
type LookupCost struct {
	Subst     [256][256]int8
	GapOpen   int8
	GapExtend int8
}

// CostModel holds exactly one of Uniform or Lookup. A zero CostModel is
// invalid; use NewUniformCost or NewLookupCost.
type CostModel struct {
	Uniform *UniformCost
	Lookup  *LookupCost
}

// NewUniformCost builds a CostModel backed by a UniformCost.
func NewUniformCost(match, mismatch, gapOpen, gapExtend int8) CostModel {
	return CostModel{Uniform: &UniformCost{Match: match, Mismatch: mismatch, GapOpen: gapOpen, GapExtend: gapExtend}}
}

// NewLookupCost builds a CostModel backed by a 256x256 substitution matrix.
func NewLookupCost(subst [256][256]int8, gapOpen, gapExtend int8) CostModel {
	return CostModel{Lookup: &LookupCost{Subst: subst, GapOpen: gapOpen, GapExtend: gapExtend}}
}

// IdentityLookupCost builds a LookupCost where matching bytes score
// matchScore and every mismatch scores mismatchScore, used by callers (and
// spec.md §8's scenario 5) that want NW/SW behaviour identical to a
// UniformCost but expressed as a lookup table.
func IdentityLookupCost(matchScore, mismatchScore, gapOpen, gapExtend int8) CostModel {
	var subst [256][256]int8
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			if i == j {
				subst[i][j] = matchScore
			} else {
				subst[i][j] = mismatchScore
			}
		}
	}
	return NewLookupCost(subst, gapOpen, gapExtend)
}

func (m CostModel) gapOpen() int {
	if m.Uniform != nil {
		return int(m.Uniform.GapOpen)
	}
	return int(m.Lookup.GapOpen)
}

func (m CostModel) gapExtend() int {
	if m.Uniform != nil {
		return int(m.Uniform.GapExtend)
	}
	return int(m.Lookup.GapExtend)
}

// sub returns the substitution score for aligning characters a and b. For
// a LookupCost, a and b must each fit in a byte (the 256x256 matrix is
// byte-indexed, per spec.md §3); a rune beyond that range with a
// LookupCost model scores -128, the lowest int8 value, whatever the
// matrix holds.
func (m CostModel) sub(a, b int32) int {
	if m.Uniform != nil {
		if a == b {
			return int(m.Uniform.Match)
		}
		return int(m.Uniform.Mismatch)
	}
	ai, bi := a, b
	if ai < 0 || ai > 255 || bi < 0 || bi > 255 {
		// Outside the lookup table's domain: treat as maximally dissimilar.
		return int(minInt8)
	}
	return int(m.Lookup.Subst[ai][bi])
}

const minInt8 = -128
