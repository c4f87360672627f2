package similarity

import "testing"

func TestLevenshteinScenario(t *testing.T) {
	if d := Levenshtein("listen", "silent"); d != 4 {
		t.Fatalf("Levenshtein(listen,silent) = %d, want 4", d)
	}
}

func TestLevenshteinSingleDeletion(t *testing.T) {
	if d := Levenshtein("ggbuzgjux{}l", "gbuzgjux{}l"); d != 1 {
		t.Fatalf("Levenshtein = %d, want 1", d)
	}
}

func TestUTF8LevenshteinSingleCodepointDeletion(t *testing.T) {
	d, ok := UTF8Levenshtein("αβγδ", "αγδ")
	if !ok {
		t.Fatal("expected ok=true for valid UTF-8")
	}
	if d != 1 {
		t.Fatalf("UTF8Levenshtein = %d, want 1", d)
	}
}

func TestUTF8LevenshteinInvalidUTF8(t *testing.T) {
	_, ok := UTF8Levenshtein("abc", "ab\xff")
	if ok {
		t.Fatal("expected ok=false for malformed UTF-8")
	}
}

func TestLevenshteinMetricInvariants(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "abc"},
		{"same", "same"},
		{"a", ""},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if Levenshtein(a, a) != 0 {
			t.Fatalf("d(a,a) != 0 for %q", a)
		}
		if Levenshtein(a, b) != Levenshtein(b, a) {
			t.Fatalf("not symmetric for %q,%q", a, b)
		}
	}
	// triangle inequality over a small fixed triple.
	a, b, c := "kitten", "sitting", "mitten"
	if Levenshtein(a, c) > Levenshtein(a, b)+Levenshtein(b, c) {
		t.Fatalf("triangle inequality violated")
	}
}

func TestNeedlemanWunschScenario(t *testing.T) {
	model := IdentityLookupCost(0, -1, -1, -1)
	score := NeedlemanWunsch("listen", "silent", model)
	if score != -4 {
		t.Fatalf("NeedlemanWunsch = %d, want -4", score)
	}
}

func TestScoringConsistencyWithLevenshtein(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"abcdefghijklmno", "abdefghijklmn"},
		{"", "xyz"},
	}
	model := NewUniformCost(0, -1, -1, -1)
	for _, p := range pairs {
		score := NeedlemanWunsch(p[0], p[1], model)
		want := -Levenshtein(p[0], p[1])
		if score != want {
			t.Fatalf("NW(%q,%q)=%d, want %d (=-Levenshtein)", p[0], p[1], score, want)
		}
	}
}

func TestSmithWatermanLocalAtLeastAsGoodAsZero(t *testing.T) {
	model := NewUniformCost(2, -1, -2, -1)
	score := SmithWaterman("completely-different-prefix-ACGT-suffix", "ACGT", model)
	if score < 0 {
		t.Fatalf("local alignment score should never be negative, got %d", score)
	}
	if score < 8 { // 4 matches * 2
		t.Fatalf("expected SmithWaterman to find the ACGT exact match, got %d", score)
	}
}

func TestLevenshteinBoundedUnreachable(t *testing.T) {
	_, reachable := LevenshteinBounded("short", "a much much longer string indeed", 3)
	if reachable {
		t.Fatal("expected unreachable sentinel when |lenA-lenB| > bound")
	}
}

func TestLevenshteinBoundedReachable(t *testing.T) {
	d, reachable := LevenshteinBounded("kitten", "sitting", 5)
	if !reachable || d != 3 {
		t.Fatalf("d=%d reachable=%v, want 3,true", d, reachable)
	}
}
