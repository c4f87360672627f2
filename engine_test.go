package stringzilla

import (
	"testing"

	"github.com/stringzilla-go/stringzilla/executor"
	"github.com/stringzilla-go/stringzilla/fingerprint"
	"github.com/stringzilla-go/stringzilla/seq"
	"github.com/stringzilla-go/stringzilla/similarity"
)

func TestEngineFindAndLevenshtein(t *testing.T) {
	e := New()
	if pos := e.Find([]byte("abbabbaaaaaa"), []byte("aa")); pos != 6 {
		t.Fatalf("Find = %d, want 6", pos)
	}
	if d := e.Levenshtein("listen", "silent"); d != 4 {
		t.Fatalf("Levenshtein = %d, want 4", d)
	}
}

func TestEngineNeedlemanWunschSequences(t *testing.T) {
	e := New()
	model := similarity.NewUniformCost(0, -1, -1, -1)
	scores, err := e.NeedlemanWunschSequences([]string{"listen", "abc"}, []string{"silent", "abd"}, model)
	if err != nil {
		t.Fatalf("NeedlemanWunschSequences: %v", err)
	}
	if scores[0] != -4 {
		t.Fatalf("scores[0] = %d, want -4", scores[0])
	}
	if scores[1] != -1 {
		t.Fatalf("scores[1] = %d, want -1", scores[1])
	}
}

func TestEngineNeedlemanWunschSequencesMismatchedLengths(t *testing.T) {
	e := New()
	model := similarity.NewUniformCost(0, -1, -1, -1)
	_, err := e.NeedlemanWunschSequences([]string{"a"}, []string{"a", "b"}, model)
	if err == nil {
		t.Fatal("expected an error for mismatched slice lengths")
	}
	if !Is(err, KindUnexpectedDimensions) {
		t.Fatalf("expected KindUnexpectedDimensions, got %v", err)
	}
}

func TestEngineFingerprintAndArgSort(t *testing.T) {
	e := New()
	sketch := e.Fingerprint([]byte("aaaa"), []fingerprint.Dim{fingerprint.RabinKarpDim(3)})
	if sketch.Count[0] != 2 {
		t.Fatalf("count = %d, want 2", sketch.Count[0])
	}

	s := seq.FromSlices([]string{"banana", "apple", "cherry"})
	order := e.ArgSort(s)
	want := []uint32{1, 0, 2}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestEngineWithForkJoinExecutor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Executor = executor.ForkJoin{Workers: 4}
	e := NewWithConfig(cfg)

	model := similarity.NewUniformCost(0, -1, -1, -1)
	scores, err := e.NeedlemanWunschSequences([]string{"kitten"}, []string{"sitting"}, model)
	if err != nil {
		t.Fatalf("NeedlemanWunschSequences: %v", err)
	}
	if scores[0] != -3 {
		t.Fatalf("scores[0] = %d, want -3", scores[0])
	}
}

func TestEngineMultiSearcher(t *testing.T) {
	e := New()
	m, err := e.NewMultiSearcher([][]byte{[]byte("foo"), []byte("bar")})
	if err != nil {
		t.Fatalf("NewMultiSearcher: %v", err)
	}
	if !m.IsMatch([]byte("a foo walks into a bar")) {
		t.Fatal("expected a match")
	}
}

func TestEngineCapabilitiesNonEmpty(t *testing.T) {
	e := New()
	caps := e.Capabilities()
	if len(caps) == 0 {
		t.Fatal("expected at least the serial capability")
	}
}
