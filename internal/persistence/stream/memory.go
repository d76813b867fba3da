// Package stream provides an in-memory seekable stream for saves that are not
// written straight to disk (network transfer, tests).
package stream

import (
	"errors"
	"io"
)

var ErrNegativePosition = errors.New("stream: negative position")

// Memory is a growable byte buffer implementing io.ReadWriteSeeker. Writing
// past the end extends it; seeking past the end and writing zero-fills the gap.
type Memory struct {
	buf []byte
	pos int64
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.buf)) {
		if end > int64(cap(m.buf)) {
			grown := make([]byte, end, 2*end)
			copy(grown, m.buf)
			m.buf = grown
		} else {
			m.buf = m.buf[:end]
		}
	}
	copy(m.buf[m.pos:end], p)
	m.pos = end
	return len(p), nil
}

func (m *Memory) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.buf)) {
		return 0, io.EOF
	}
	n := copy(p, m.buf[m.pos:])
	m.pos += int64(n)
	return n, nil
}

func (m *Memory) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = m.pos
	case io.SeekEnd:
		base = int64(len(m.buf))
	default:
		return 0, errors.New("stream: invalid whence")
	}
	next := base + offset
	if next < 0 {
		return 0, ErrNegativePosition
	}
	m.pos = next
	return next, nil
}

// Len is the number of bytes written so far.
func (m *Memory) Len() int { return len(m.buf) }

// Bytes returns the written bytes. The slice aliases the buffer.
func (m *Memory) Bytes() []byte { return m.buf }
