package stringzilla

import (
	"github.com/stringzilla-go/stringzilla/dispatch"
	"github.com/stringzilla-go/stringzilla/executor"
	"github.com/stringzilla-go/stringzilla/fingerprint"
	"github.com/stringzilla-go/stringzilla/multisearch"
	"github.com/stringzilla-go/stringzilla/search"
	"github.com/stringzilla-go/stringzilla/seq"
	"github.com/stringzilla-go/stringzilla/similarity"
	"github.com/stringzilla-go/stringzilla/simd"
	"github.com/stringzilla-go/stringzilla/sortseq"
)

// Config selects an Engine's executor and dispatch capability mask. The
// zero Config behaves like DefaultConfig: NewWithConfig substitutes
// executor.Serial for a nil Executor.
type Config struct {
	// Executor runs bulk/parallel operations (ParallelFingerprint,
	// NeedlemanWunschSequences). Defaults to executor.Serial.
	Executor executor.Executor
	// Capability restricts which CPU tiers the process-wide dispatch
	// table may select; the zero value leaves the table's current mask
	// unchanged (the detected mask, unless an earlier Reset changed it).
	Capability dispatch.Capability
}

// DefaultConfig returns a Config running everything on the calling
// goroutine, leaving the process-wide dispatch table as it is.
func DefaultConfig() Config {
	return Config{Executor: executor.Serial{}}
}

// Engine is the single entry point gathering every sub-package's
// constructors behind one type, the way the teacher's top-level Regex
// wraps meta.Engine: construct once with Compile-style functions below,
// then call its methods from as many goroutines as the chosen Executor
// supports.
//
// Basic usage:
//
//	e := stringzilla.New()
//	pos := e.Find([]byte("abbabbaaaaaa"), []byte("aa")) // 6
//	dist := e.Levenshtein("listen", "silent")           // 4
//
// Advanced usage:
//
//	cfg := stringzilla.DefaultConfig()
//	cfg.Executor = executor.ForkJoin{Workers: 8}
//	e := stringzilla.NewWithConfig(cfg)
//	sketch := e.ParallelFingerprint(doc, dims, 1<<20)
type Engine struct {
	cfg Config
}

// New builds an Engine with DefaultConfig.
func New() *Engine { return NewWithConfig(DefaultConfig()) }

// NewWithConfig builds an Engine from an explicit Config. If cfg.Capability
// is non-zero, it is installed into the process-wide dispatch table via
// dispatch.Table.Reset, matching spec.md §9's Reset semantics (last writer
// wins, no in-flight-call safety).
func NewWithConfig(cfg Config) *Engine {
	if cfg.Executor == nil {
		cfg.Executor = executor.Serial{}
	}
	if cfg.Capability != 0 {
		simd.Table.Reset(cfg.Capability)
	}
	return &Engine{cfg: cfg}
}

// Capabilities reports the capability names currently active in the
// process-wide dispatch table, strongest first.
func (e *Engine) Capabilities() []string {
	return dispatch.Names(simd.Table.Active())
}

// Find locates the first occurrence of needle in haystack.
func (e *Engine) Find(haystack, needle []byte) int { return search.Find(haystack, needle) }

// RFind locates the last occurrence of needle in haystack.
func (e *Engine) RFind(haystack, needle []byte) int { return search.RFind(haystack, needle) }

// Levenshtein returns the byte-level edit distance between a and b.
func (e *Engine) Levenshtein(a, b string) int { return similarity.Levenshtein(a, b) }

// UTF8Levenshtein returns the codepoint-level edit distance between UTF-8
// strings a and b.
func (e *Engine) UTF8Levenshtein(a, b string) (int, bool) { return similarity.UTF8Levenshtein(a, b) }

// NeedlemanWunsch computes the global affine-gap alignment score between
// a and b under model.
func (e *Engine) NeedlemanWunsch(a, b string, model similarity.CostModel) int {
	return similarity.NeedlemanWunsch(a, b, model)
}

// SmithWaterman computes the local affine-gap alignment score between a
// and b under model.
func (e *Engine) SmithWaterman(a, b string, model similarity.CostModel) int {
	return similarity.SmithWaterman(a, b, model)
}

// NeedlemanWunschSequences scores every pair (as[i], bs[i]) using the
// Engine's configured Executor for between-pair parallelism.
func (e *Engine) NeedlemanWunschSequences(as, bs []string, model similarity.CostModel) ([]int, error) {
	return similarity.NeedlemanWunschSequences(as, bs, model, e.cfg.Executor)
}

// Fingerprint computes a Count-Min-Sketch fingerprint over text in a
// single pass.
func (e *Engine) Fingerprint(text []byte, dims []fingerprint.Dim) fingerprint.Sketch {
	return fingerprint.Fingerprint(text, dims)
}

// ParallelFingerprint computes a fingerprint the same way Fingerprint
// does, but splits documents at or above threshold bytes across the
// Engine's configured Executor.
func (e *Engine) ParallelFingerprint(text []byte, dims []fingerprint.Dim, threshold int) fingerprint.Sketch {
	return fingerprint.ParallelFingerprint(text, dims, threshold, e.cfg.Executor)
}

// ArgSort sorts s.Order() in place into lexicographic order.
func (e *Engine) ArgSort(s seq.Sequence) []uint32 { return sortseq.ArgSort(s) }

// PartialArgSort sorts only the first k positions of s.Order() to
// convergence.
func (e *Engine) PartialArgSort(s seq.Sequence, k int) []uint32 {
	return sortseq.PartialArgSort(s, k)
}

// NewMultiSearcher compiles a reusable multi-needle searcher.
func (e *Engine) NewMultiSearcher(needles [][]byte) (*multisearch.MultiSearcher, error) {
	return multisearch.New(needles)
}
