package sawyer

// Checksum is the whole-file checksum appended after the last chunk: the
// 32-bit wrapping sum of every byte.
func Checksum(data []byte) uint32 {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
	}
	return sum
}
