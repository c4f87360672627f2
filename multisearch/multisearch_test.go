package multisearch

import "testing"

func TestIsMatch(t *testing.T) {
	m, err := New([][]byte{[]byte("apple"), []byte("banana"), []byte("cherry")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !m.IsMatch([]byte("I really like banana bread")) {
		t.Fatal("expected a match")
	}
	if m.IsMatch([]byte("nothing here matches at all")) {
		t.Fatal("expected no match")
	}
}

func TestFindIdentifiesNeedle(t *testing.T) {
	needles := [][]byte{[]byte("apple"), []byte("banana"), []byte("cherry")}
	m, err := New(needles)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	match, ok := m.Find([]byte("a bowl of cherry jam"), 0)
	if !ok {
		t.Fatal("expected a match")
	}
	if match.NeedleIndex != 2 {
		t.Fatalf("NeedleIndex = %d, want 2 (cherry)", match.NeedleIndex)
	}
	if string([]byte("a bowl of cherry jam")[match.Start:match.End]) != "cherry" {
		t.Fatalf("matched slice = %q, want cherry", string([]byte("a bowl of cherry jam")[match.Start:match.End]))
	}
}

func TestFindAllNonOverlapping(t *testing.T) {
	needles := [][]byte{[]byte("ab"), []byte("ba")}
	m, err := New(needles)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	matches := m.FindAll([]byte("ababab"))
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Start < matches[i-1].End {
			t.Fatalf("matches overlap: %+v", matches)
		}
	}
}

func TestNoMatchesReturnsEmpty(t *testing.T) {
	m, err := New([][]byte{[]byte("xyz")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if matches := m.FindAll([]byte("abcdefg")); len(matches) != 0 {
		t.Fatalf("expected no matches, got %v", matches)
	}
}
