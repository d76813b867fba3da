package sawyer

import "fmt"

const maxRun = 125

// EncodeRLE run-length encodes src. A control byte c in [0,127] is followed
// by c+1 literal bytes; a control byte c in [129,255] repeats the next byte
// 257-c times.
func EncodeRLE(src []byte) []byte {
	out := make([]byte, 0, len(src)+len(src)/maxRun+2)
	lit := 0 // start of the pending literal run
	i := 0
	for i < len(src) {
		run := 1
		for i+run < len(src) && src[i+run] == src[i] && run < maxRun {
			run++
		}
		if run >= 2 {
			out = flushLiterals(out, src[lit:i])
			out = append(out, byte(257-run), src[i])
			i += run
			lit = i
			continue
		}
		i++
		if i-lit == maxRun+1 {
			out = flushLiterals(out, src[lit:i])
			lit = i
		}
	}
	return flushLiterals(out, src[lit:])
}

func flushLiterals(out, lit []byte) []byte {
	if len(lit) == 0 {
		return out
	}
	out = append(out, byte(len(lit)-1))
	return append(out, lit...)
}

// DecodeRLE reverses EncodeRLE.
func DecodeRLE(src []byte) ([]byte, error) {
	var out []byte
	for i := 0; i < len(src); {
		c := int8(src[i])
		i++
		if c >= 0 {
			n := int(c) + 1
			if i+n > len(src) {
				return nil, fmt.Errorf("rle: literal run of %d at %d overruns input", n, i-1)
			}
			out = append(out, src[i:i+n]...)
			i += n
			continue
		}
		if i >= len(src) {
			return nil, fmt.Errorf("rle: missing repeat byte at %d", i-1)
		}
		for k := 0; k < 1-int(c); k++ {
			out = append(out, src[i])
		}
		i++
	}
	return out, nil
}
