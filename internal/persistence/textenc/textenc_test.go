package textenc

import (
	"bytes"
	"testing"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{"Park", []byte("Park")},
		{"Café", []byte{'C', 'a', 'f', 0xE9}},
		{"€5", []byte{0x80, '5'}},
		{"ÿ", []byte{0xFF, 0x00, 0xFF}},
		{"Ω", []byte{0xFF, 0x03, 0xA9}},
		{"😀", []byte{'?'}},
	}
	for _, c := range cases {
		if got := Encode(c.in); !bytes.Equal(got, c.want) {
			t.Fatalf("Encode(%q): got=%x want=%x", c.in, got, c.want)
		}
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "Mr. Bones' Wild Ride", "Café €5", "Ω-Coaster", "ÿes"} {
		if got := Decode(Encode(s)); got != s {
			t.Fatalf("round trip %q: got=%q", s, got)
		}
	}
}

func TestPutLegacy_NeverSplitsEscape(t *testing.T) {
	dst := make([]byte, 6)
	n := PutLegacy(dst, "abΩΩ")
	// "ab" + one escape = 5 bytes; the second escape would need 8 + NUL.
	if n != 5 {
		t.Fatalf("PutLegacy: n=%d want=5", n)
	}
	if !bytes.Equal(dst, []byte{'a', 'b', 0xFF, 0x03, 0xA9, 0}) {
		t.Fatalf("PutLegacy: got=%x", dst)
	}
	if got := Decode(dst); got != "abΩ" {
		t.Fatalf("Decode: got=%q", got)
	}
}

func TestPutUTF8_TruncatesOnRuneBoundary(t *testing.T) {
	dst := make([]byte, 5)
	// "aé" is 3 bytes, "aéé" is 5: only 4 content bytes fit.
	if n := PutUTF8(dst, "aéé"); n != 3 {
		t.Fatalf("PutUTF8: n=%d want=3", n)
	}
	if got := CString(dst); got != "aé" {
		t.Fatalf("CString: got=%q", got)
	}

	dst = []byte{1, 2, 3, 4}
	PutUTF8(dst, "")
	if !bytes.Equal(dst, []byte{0, 0, 0, 0}) {
		t.Fatalf("PutUTF8 empty: got=%v", dst)
	}
}

func TestPutUTF8_ExactFit(t *testing.T) {
	dst := make([]byte, 4)
	if n := PutUTF8(dst, "abc"); n != 3 || CString(dst) != "abc" {
		t.Fatalf("exact fit: n=%d s=%q", n, CString(dst))
	}
	if n := PutUTF8(dst, "abcd"); n != 3 || CString(dst) != "abc" {
		t.Fatalf("overflow by one: n=%d s=%q", n, CString(dst))
	}
}
