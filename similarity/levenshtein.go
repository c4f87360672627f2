package similarity

import "unicode/utf8"

// Levenshtein returns the byte-level edit distance between a and b: the
// minimum number of single-byte insertions, deletions, and substitutions
// to transform a into b.
func Levenshtein(a, b string) int {
	return levenshteinBytes([]byte(a), []byte(b))
}

func levenshteinBytes(a, b []byte) int {
	if min(len(a), len(b)) < wagnerFischerThreshold {
		return wagnerFischerDistance(bytesToInt32(a), bytesToInt32(b))
	}
	model := NewUniformCost(0, -1, -1, -1)
	return -wavefrontScore(bytesToInt32(a), bytesToInt32(b), model, Global)
}

// UTF8Levenshtein returns the codepoint-level edit distance between UTF-8
// strings a and b. Each insertion/deletion/substitution moves one
// codepoint, not one byte. Returns ok=false if either string contains
// malformed UTF-8 (spec.md §7's InvalidUTF8 status — the offending offset
// is not surfaced here per spec.md §7, matching the core's contract that a
// richer parser belongs outside).
//
// Pure-ASCII inputs short-circuit back to the byte path, per spec.md
// §4.E, since every codepoint is exactly one byte in that case.
func UTF8Levenshtein(a, b string) (distance int, ok bool) {
	if isASCII(a) && isASCII(b) {
		return Levenshtein(a, b), true
	}
	runesA, ok1 := decodeRunes(a)
	runesB, ok2 := decodeRunes(b)
	if !ok1 || !ok2 {
		return 0, false
	}
	if min(len(runesA), len(runesB)) < wagnerFischerThreshold {
		return wagnerFischerDistance(runesA, runesB), true
	}
	model := NewUniformCost(0, -1, -1, -1)
	return -wavefrontScore(runesA, runesB, model, Global), true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func decodeRunes(s string) ([]int32, bool) {
	runes := make([]int32, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, false
		}
		runes = append(runes, r)
		i += size
	}
	return runes, true
}

func bytesToInt32(b []byte) []int32 {
	out := make([]int32, len(b))
	for i, c := range b {
		out[i] = int32(c)
	}
	return out
}

// LevenshteinBounded computes the byte-level edit distance as Levenshtein
// does, but first checks spec.md §4.E's overflow-unreachable shortcut:
// when |len(a)-len(b)| > bound, no sequence of at most bound edits can
// transform a into b, so the distinguished sentinel (reachable=false) is
// returned without running the DP at all.
func LevenshteinBounded(a, b string, bound int) (distance int, reachable bool) {
	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	if diff > bound {
		return 0, false
	}
	d := Levenshtein(a, b)
	if d > bound {
		return d, false
	}
	return d, true
}
