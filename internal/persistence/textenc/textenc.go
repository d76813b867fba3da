// Package textenc converts user-facing text between UTF-8 and the legacy
// single-byte encoding stored in snapshots, and copies strings into
// fixed-width NUL-terminated buffers.
//
// Legacy text is Windows-1252 for every rune that code page can represent.
// Anything else is written as a three byte escape: 0xFF followed by the
// rune's 16-bit value, big endian. Runes beyond the BMP become '?'.
//
// Truncation never splits a UTF-8 sequence or an escape and always leaves
// room for the terminating NUL.
package textenc

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const escape = 0xFF

// Encode converts s to legacy bytes without a terminator.
func Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = appendRune(out, r)
	}
	return out
}

func appendRune(out []byte, r rune) []byte {
	if r == utf8.RuneError || r == 0 {
		return append(out, '?')
	}
	if r < utf8.RuneSelf {
		return append(out, byte(r))
	}
	if b, ok := charmap.Windows1252.EncodeRune(r); ok && b != escape {
		return append(out, b)
	}
	if r > 0xFFFF {
		return append(out, '?')
	}
	return append(out, escape, byte(r>>8), byte(r))
}

// Decode converts legacy bytes up to the first NUL back to UTF-8.
func Decode(b []byte) string {
	b = CBytes(b)
	out := make([]rune, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] == escape {
			if i+2 >= len(b) {
				out = append(out, utf8.RuneError)
				break
			}
			out = append(out, rune(b[i+1])<<8|rune(b[i+2]))
			i += 2
			continue
		}
		out = append(out, charmap.Windows1252.DecodeByte(b[i]))
	}
	return string(out)
}

// PutLegacy encodes s into dst, truncated on a character boundary and
// NUL-padded. It returns the number of content bytes written.
func PutLegacy(dst []byte, s string) int {
	clear(dst)
	if len(dst) == 0 {
		return 0
	}
	n := 0
	var tmp []byte
	for _, r := range s {
		tmp = appendRune(tmp[:0], r)
		if n+len(tmp) > len(dst)-1 {
			break
		}
		n += copy(dst[n:], tmp)
	}
	return n
}

// PutUTF8 copies s into dst, truncated on a rune boundary and NUL-padded.
func PutUTF8(dst []byte, s string) int {
	clear(dst)
	if len(dst) == 0 {
		return 0
	}
	limit := len(dst) - 1
	if len(s) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return copy(dst, s)
}

// CBytes returns b up to (not including) the first NUL.
func CBytes(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

// CString returns the NUL-terminated UTF-8 string stored in b.
func CString(b []byte) string { return string(CBytes(b)) }
