package sawyer

import "math/bits"

// EncodeRotate rotates every byte left by 1,3,5,7,1,... bits.
func EncodeRotate(src []byte) []byte {
	out := make([]byte, len(src))
	code := 1
	for i, b := range src {
		out[i] = bits.RotateLeft8(b, code)
		code = (code + 2) % 8
	}
	return out
}

// DecodeRotate reverses EncodeRotate.
func DecodeRotate(src []byte) []byte {
	out := make([]byte, len(src))
	code := 1
	for i, b := range src {
		out[i] = bits.RotateLeft8(b, -code)
		code = (code + 2) % 8
	}
	return out
}
