package simd

import (
	"bytes"
	"testing"
)

func TestEqualSymmetry(t *testing.T) {
	cases := [][2]string{
		{"", ""},
		{"a", "a"},
		{"a", "b"},
		{"hello world", "hello world"},
		{bigString('x', 200), bigString('x', 200)},
		{bigString('x', 200), bigString('y', 200)},
	}
	for _, c := range cases {
		a, b := []byte(c[0]), []byte(c[1])
		if Equal(a, b) != Equal(b, a) {
			t.Fatalf("Equal not symmetric for %q, %q", c[0], c[1])
		}
		if Equal(a, b) != bytes.Equal(a, b) {
			t.Fatalf("Equal(%q,%q) = %v, want %v", c[0], c[1], Equal(a, b), bytes.Equal(a, b))
		}
	}
}

func TestOrderTrichotomy(t *testing.T) {
	cases := []([2]string){
		{"abc", "abd"},
		{"abc", "ab"},
		{"", ""},
		{"", "a"},
		{bigString('a', 100), bigString('a', 100) + "b"},
	}
	for _, c := range cases {
		a, b := []byte(c[0]), []byte(c[1])
		o1 := Order(a, b)
		o2 := Order(b, a)
		if o1 == OrderLess && o2 != OrderGreater {
			t.Fatalf("Order(%q,%q)=Less but Order(%q,%q)!=Greater", c[0], c[1], c[1], c[0])
		}
		if o1 == OrderEqual && !(len(a) == len(b) && Equal(a, b)) {
			t.Fatalf("Order(%q,%q)=Equal but inputs differ", c[0], c[1])
		}
	}
}

func TestOrderEqualIffEqual(t *testing.T) {
	a := []byte("matching")
	b := []byte("matching")
	if Order(a, b) != OrderEqual || !Equal(a, b) {
		t.Fatalf("expected equal order and Equal() for identical inputs")
	}
}

func TestFindByteIdentity(t *testing.T) {
	hay := []byte("abbabbaaaaaa")
	k := FindByte(hay, 'a')
	if k < 0 {
		t.Fatal("expected a match")
	}
	if hay[k] != 'a' {
		t.Fatalf("hay[%d] = %q, want 'a'", k, hay[k])
	}
	for _, c := range hay[:k] {
		if c == 'a' {
			t.Fatalf("byte 'a' present before reported offset %d", k)
		}
	}
}

func TestFindByteNotFound(t *testing.T) {
	if FindByte([]byte("xyz"), 'q') != -1 {
		t.Fatal("expected not-found sentinel")
	}
	if FindByte(nil, 'q') != -1 {
		t.Fatal("expected not-found sentinel on empty haystack")
	}
}

func TestRFindByteDuality(t *testing.T) {
	hay := []byte("mississippi")
	fwd := FindByte(hay, 's')
	rev := RFindByte(hay, 's')
	if fwd == -1 || rev == -1 {
		t.Fatal("expected matches")
	}
	if fwd > rev {
		t.Fatalf("forward index %d should not exceed reverse index %d", fwd, rev)
	}
	// reverse-of-reversed-haystack forward search should locate the mirror offset
	reversed := reverseBytes(hay)
	mirrorFwd := FindByte(reversed, 's')
	want := len(hay) - 1 - rev
	if mirrorFwd != want {
		t.Fatalf("mirror search = %d, want %d", mirrorFwd, want)
	}
}

func TestFillCopyMove(t *testing.T) {
	dst := make([]byte, 17)
	Fill(dst, 'z')
	for _, b := range dst {
		if b != 'z' {
			t.Fatal("Fill left a non-filled byte")
		}
	}

	src := []byte("hello, world!")
	cp := make([]byte, len(src))
	Copy(cp, src)
	if !bytes.Equal(cp, src) {
		t.Fatal("Copy mismatch")
	}

	overlap := append([]byte{}, "abcdefgh"...)
	Move(overlap[2:], overlap[:6])
	if string(overlap) != "ababcdef" {
		t.Fatalf("Move overlap result = %q", overlap)
	}
}

func TestByteSet(t *testing.T) {
	set := NewByteSet([]byte("aeiou"))
	hay := []byte("xyz hello world")
	k := FindAnyOf(hay, set)
	if k == -1 || !set.Contains(hay[k]) {
		t.Fatalf("FindAnyOf failed: k=%d", k)
	}
	none := FindNoneOf([]byte("aeiou"), set)
	if none != -1 {
		t.Fatalf("FindNoneOf over an all-member haystack should be -1, got %d", none)
	}
	j := RFindAnyOf(hay, set)
	if j == -1 || j < k {
		t.Fatalf("RFindAnyOf should find an index >= forward index: got %d, fwd=%d", j, k)
	}
}

func bigString(c byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return string(b)
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
