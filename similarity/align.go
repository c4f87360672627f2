package similarity

import (
	"github.com/stringzilla-go/stringzilla/executor"
	"github.com/stringzilla-go/stringzilla/status"
)

// NeedlemanWunsch computes the global affine-gap alignment score between a
// and b under model, via the shared wavefront engine. Unlike Levenshtein,
// it has no small-input Wagner-Fischer fast path: that fallback only
// handles the degenerate unit-cost case Levenshtein needs, not an
// arbitrary CostModel's affine gap parameters.
func NeedlemanWunsch(a, b string, model CostModel) int {
	ra, rb := bytesToInt32([]byte(a)), bytesToInt32([]byte(b))
	return wavefrontScore(ra, rb, model, Global)
}

// SmithWaterman computes the local affine-gap alignment score between a
// and b under model: the best-scoring contiguous substring pair, with
// every DP cell clamped at zero.
func SmithWaterman(a, b string, model CostModel) int {
	ra, rb := bytesToInt32([]byte(a)), bytesToInt32([]byte(b))
	return wavefrontScore(ra, rb, model, Local)
}

// NeedlemanWunschSequences computes, pairwise, the NW score of every
// element in as against the corresponding element of bs using ex, an
// executor for between-pair parallelism (spec.md §4.E: "between-pair
// parallelism happens one level up in the bulk driver"). Returns a
// *status.Status of kind status.KindUnexpectedDimensions if the sequences
// disagree in length.
func NeedlemanWunschSequences(as, bs []string, model CostModel, ex executor.Executor) ([]int, error) {
	if len(as) != len(bs) {
		return nil, status.NewUnexpectedDimensions("paired sequences must have equal length")
	}
	out := make([]int, len(as))
	ex.ForEachStatic(len(as), func(i int, _ executor.Prong) {
		out[i] = NeedlemanWunsch(as[i], bs[i], model)
	})
	return out, nil
}
