package seq

import (
	"testing"
)

func TestFromSlicesRoundTrip(t *testing.T) {
	strs := []string{"banana", "apple", "cherry"}
	s := FromSlices(strs)
	if s.Len() != len(strs) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(strs))
	}
	for i, want := range strs {
		if got := string(s.At(i)); got != want {
			t.Fatalf("At(%d) = %q, want %q", i, got, want)
		}
	}
	for i, o := range s.Order() {
		if int(o) != i {
			t.Fatalf("identity order expected, got order[%d]=%d", i, o)
		}
	}
}

func TestTape32InvariantPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on malformed offsets")
		}
	}()
	NewTape32([]byte("ab"), []uint32{0, 5})
}

func TestIndexCallback(t *testing.T) {
	data := []byte("foobarbaz")
	starts := []int{0, 3, 6}
	lens := []int{3, 3, 3}
	s := NewIndexCallback(nil, data, 3,
		func(_ any, i int) int { return starts[i] },
		func(_ any, i int) int { return lens[i] },
	)
	want := []string{"foo", "bar", "baz"}
	for i, w := range want {
		if string(s.At(i)) != w {
			t.Fatalf("At(%d) = %q, want %q", i, s.At(i), w)
		}
	}
}

func TestTape64(t *testing.T) {
	buf := []byte("hizthere")
	offs := []uint64{0, 3, 8}
	s := NewTape64(buf, offs)
	if string(s.At(0)) != "hiz" || string(s.At(1)) != "there" {
		t.Fatalf("Tape64 At mismatch: %q %q", s.At(0), s.At(1))
	}
}
