package stream

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestMemory_WriteSeekReadBack(t *testing.T) {
	m := NewMemory()
	if _, err := m.Write([]byte("hello ")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := m.Write([]byte("world")); err != nil {
		t.Fatalf("write: %v", err)
	}
	size, err := m.Seek(0, io.SeekEnd)
	if err != nil || size != 11 {
		t.Fatalf("Seek end: size=%d err=%v", size, err)
	}
	if _, err := m.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek start: %v", err)
	}
	got, err := io.ReadAll(m)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "hello world" {
		t.Fatalf("read back: got=%q", got)
	}

	// Overwrite in place, then append.
	if _, err := m.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("seek: %v", err)
	}
	_, _ = m.Write([]byte("J"))
	_, _ = m.Seek(0, io.SeekEnd)
	_, _ = m.Write([]byte("!"))
	if !bytes.Equal(m.Bytes(), []byte("Jello world!")) {
		t.Fatalf("bytes: got=%q", m.Bytes())
	}
}

func TestMemory_SeekPastEndZeroFills(t *testing.T) {
	m := NewMemory()
	_, _ = m.Seek(3, io.SeekStart)
	_, _ = m.Write([]byte{9})
	if !bytes.Equal(m.Bytes(), []byte{0, 0, 0, 9}) {
		t.Fatalf("bytes: got=%v", m.Bytes())
	}
	if _, err := m.Seek(-10, io.SeekCurrent); !errors.Is(err, ErrNegativePosition) {
		t.Fatalf("negative seek: err=%v", err)
	}
}
