package encoding

import "testing"

func TestPackBits_MatchesPredicate(t *testing.T) {
	preds := map[string]func(int) bool{
		"none":  func(int) bool { return false },
		"all":   func(int) bool { return true },
		"odd":   func(i int) bool { return i%2 == 1 },
		"prime": func(i int) bool { return i == 2 || i == 3 || i == 5 || i == 7 || i == 31 || i == 32 || i == 89 },
	}
	for _, n := range []int{1, 31, 32, 33, 91, 128, 1792} {
		for name, pred := range preds {
			words := PackBits(n, pred)
			if want := (n + 31) / 32; len(words) != want {
				t.Fatalf("%s n=%d: words=%d want=%d", name, n, len(words), want)
			}
			for i := 0; i < n; i++ {
				if Bit(words, i) != pred(i) {
					t.Fatalf("%s n=%d: bit %d got=%v want=%v", name, n, i, Bit(words, i), pred(i))
				}
			}
			for i := n; i < len(words)*32; i++ {
				if Bit(words, i) {
					t.Fatalf("%s n=%d: trailing bit %d set", name, n, i)
				}
			}
		}
	}
}

func TestPackBits_WordLayout(t *testing.T) {
	words := PackBits(64, func(i int) bool { return i == 0 || i == 33 })
	if words[0] != 0x00000001 || words[1] != 0x00000002 {
		t.Fatalf("layout: got=%#x,%#x", words[0], words[1])
	}
}

func TestPackBits_EmptyDomain(t *testing.T) {
	if got := PackBits(0, func(int) bool { return true }); got != nil {
		t.Fatalf("PackBits(0): got=%v want nil", got)
	}
}

func TestPackBitsInto_ClearsAndClamps(t *testing.T) {
	dst := []uint32{0xFFFFFFFF, 0xFFFFFFFF}
	PackBitsInto(dst, 200, func(i int) bool { return i == 40 || i == 100 })
	if dst[0] != 0 || dst[1] != 1<<8 {
		t.Fatalf("PackBitsInto: got=%#x,%#x", dst[0], dst[1])
	}

	// Idempotent.
	again := []uint32{0, 0}
	PackBitsInto(again, 200, func(i int) bool { return i == 40 || i == 100 })
	if again[0] != dst[0] || again[1] != dst[1] {
		t.Fatalf("not idempotent: %v vs %v", again, dst)
	}
}

func TestPackByteBits(t *testing.T) {
	dst := []uint8{0xFF, 0xFF, 0xFF, 0xFF}
	set := map[int]bool{0: true, 9: true, 31: true, 40: true}
	PackByteBits(dst, func(i int) bool { return set[i] })
	want := []uint8{0x01, 0x02, 0x00, 0x80}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("byte %d: got=%#x want=%#x", i, dst[i], want[i])
		}
	}
}
