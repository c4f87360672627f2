// Package stringzilla provides hardware-dispatched primitives for
// byte and UTF-8 string processing: substring search, edit-distance and
// alignment scoring, rolling Min-Hash fingerprinting, and arg-sort over
// string sequences.
//
// Most operations are plain functions that return their result directly.
// Operations that can fail at run time (NeedlemanWunschSequences on
// mismatched inputs, multisearch.New) return a *Status error value;
// constructors given malformed arguments, such as seq.NewTape32 with bad
// offsets, panic.
//
// Basic usage:
//
//	pos := search.Find([]byte("abbabbaaaaaa"), []byte("aa"))
//	fmt.Println(pos) // 6
//
//	dist := similarity.Levenshtein("listen", "silent")
//	fmt.Println(dist) // 4
package stringzilla

import "github.com/stringzilla-go/stringzilla/status"

// Status is the error type returned by every engine invocation. It is an
// alias for status.Status so callers holding a value produced by any
// sub-package (which depend on status, not on this root package, to avoid
// an import cycle) can still type-assert against stringzilla.Status.
type Status = status.Status

// Sentinel status kinds, one per spec.md §6 status enum entry (Success is
// represented by a nil error and has no sentinel).
const (
	KindBadAlloc             = status.KindBadAlloc
	KindInvalidUTF8          = status.KindInvalidUTF8
	KindOverflowRisk         = status.KindOverflowRisk
	KindUnexpectedDimensions = status.KindUnexpectedDimensions
	KindMissingGPU           = status.KindMissingGPU
	KindDeviceCodeMismatch   = status.KindDeviceCodeMismatch
	KindDeviceMemoryMismatch = status.KindDeviceMemoryMismatch
)

// NewBadAlloc reports a scratch-allocation failure.
func NewBadAlloc(detail string) *Status { return status.NewBadAlloc(detail) }

// NewInvalidUTF8 reports malformed UTF-8 encountered by a rune parser.
func NewInvalidUTF8() *Status { return status.NewInvalidUTF8() }

// NewOverflowRisk reports that the chosen cell width cannot hold the
// computation's bound.
func NewOverflowRisk(detail string) *Status { return status.NewOverflowRisk(detail) }

// NewUnexpectedDimensions reports paired sequences that disagree in
// length, or an output buffer too small for the result.
func NewUnexpectedDimensions(detail string) *Status { return status.NewUnexpectedDimensions(detail) }

// NewMissingGPU reports a request routed at a GPU-only backend.
func NewMissingGPU() *Status { return status.NewMissingGPU() }

// NewDeviceCodeMismatch is reserved for GPU backends; surfaced unchanged
// here per spec.md §7.
func NewDeviceCodeMismatch() *Status { return status.NewDeviceCodeMismatch() }

// NewDeviceMemoryMismatch is reserved for GPU backends; surfaced unchanged
// here per spec.md §7.
func NewDeviceMemoryMismatch() *Status { return status.NewDeviceMemoryMismatch() }

// Is reports whether err is a *Status of the given kind.
func Is(err error, kind string) bool { return status.Is(err, kind) }
