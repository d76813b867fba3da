package encoding

// PackBits packs pred over [0,n) into ceil(n/32) words. Bit i%32 of word i/32
// is set iff pred(i) holds.
func PackBits(n int, pred func(i int) bool) []uint32 {
	if n <= 0 {
		return nil
	}
	words := make([]uint32, (n+31)/32)
	for i := 0; i < n; i++ {
		if pred(i) {
			words[i>>5] |= 1 << uint(i&0x1F)
		}
	}
	return words
}

// PackBitsInto clears dst and packs pred over [0,n) into it. Indices that do
// not fit in dst are ignored.
func PackBitsInto(dst []uint32, n int, pred func(i int) bool) {
	for i := range dst {
		dst[i] = 0
	}
	if limit := len(dst) * 32; n > limit {
		n = limit
	}
	copy(dst, PackBits(n, pred))
}

// Bit reports whether bit i is set in words.
func Bit(words []uint32, i int) bool {
	if i < 0 || i>>5 >= len(words) {
		return false
	}
	return words[i>>5]&(1<<uint(i&0x1F)) != 0
}

// PackByteBits clears dst and sets bit i%8 of byte i/8 for every index that
// fits in dst and satisfies pred.
func PackByteBits(dst []uint8, pred func(i int) bool) {
	for i := range dst {
		dst[i] = 0
		for b := 0; b < 8; b++ {
			if pred(i*8 + b) {
				dst[i] |= 1 << uint(b)
			}
		}
	}
}
