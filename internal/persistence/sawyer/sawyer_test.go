package sawyer

import (
	"bytes"
	"errors"
	"testing"
)

func sampleData() []byte {
	in := make([]byte, 0, 1024)
	in = append(in, 1, 1, 1, 2, 2, 3)
	for i := 0; i < 300; i++ {
		in = append(in, 7)
	}
	for i := 0; i < 300; i++ {
		in = append(in, byte(i*31))
	}
	in = append(in, 9, 10, 10, 10, 0xFF)
	return in
}

func TestRLE_RoundTrip(t *testing.T) {
	for _, in := range [][]byte{nil, {5}, {5, 5}, {1, 2}, sampleData(), make([]byte, 0x10000)} {
		enc := EncodeRLE(in)
		out, err := DecodeRLE(enc)
		if err != nil {
			t.Fatalf("DecodeRLE: %v", err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("round trip mismatch: len got=%d want=%d", len(out), len(in))
		}
	}
}

func TestRLE_CompressesRuns(t *testing.T) {
	zeros := make([]byte, 0x180000)
	enc := EncodeRLE(zeros)
	if len(enc) > len(zeros)/60 {
		t.Fatalf("EncodeRLE(zeros): %d bytes, want <= %d", len(enc), len(zeros)/60)
	}
	if got := EncodeRLE([]byte{4, 4, 4}); !bytes.Equal(got, []byte{254, 4}) {
		t.Fatalf("EncodeRLE(444): got=%v", got)
	}
	if got := EncodeRLE([]byte{1, 2, 3}); !bytes.Equal(got, []byte{2, 1, 2, 3}) {
		t.Fatalf("EncodeRLE(123): got=%v", got)
	}
}

func TestDecodeRLE_Truncated(t *testing.T) {
	if _, err := DecodeRLE([]byte{5, 1, 2}); err == nil {
		t.Fatalf("expected error for short literal run")
	}
	if _, err := DecodeRLE([]byte{0xFE}); err == nil {
		t.Fatalf("expected error for missing repeat byte")
	}
}

func TestRotate_RoundTrip(t *testing.T) {
	in := sampleData()
	enc := EncodeRotate(in)
	if bytes.Equal(enc, in) {
		t.Fatalf("rotate left data unchanged")
	}
	if got := DecodeRotate(enc); !bytes.Equal(got, in) {
		t.Fatalf("rotate round trip mismatch")
	}
	if got := EncodeRotate([]byte{0x01, 0x01, 0x01, 0x01, 0x01}); !bytes.Equal(got, []byte{0x02, 0x08, 0x20, 0x80, 0x02}) {
		t.Fatalf("EncodeRotate: got=%x", got)
	}
}

func TestChunkWriter_FramesChunks(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)
	payloads := []struct {
		data []byte
		enc  Encoding
	}{
		{[]byte("header"), EncodingRotate},
		{sampleData(), EncodingRLE},
		{[]byte{1, 2, 3}, EncodingRaw},
	}
	for _, p := range payloads {
		if err := cw.WriteChunk(p.data, p.enc); err != nil {
			t.Fatalf("WriteChunk(%s): %v", p.enc, err)
		}
	}
	r := bytes.NewReader(buf.Bytes())
	for _, p := range payloads {
		data, enc, err := ReadChunk(r)
		if err != nil {
			t.Fatalf("ReadChunk: %v", err)
		}
		if enc != p.enc || !bytes.Equal(data, p.data) {
			t.Fatalf("chunk mismatch: enc got=%s want=%s", enc, p.enc)
		}
	}
	if r.Len() != 0 {
		t.Fatalf("trailing bytes: %d", r.Len())
	}
}

func TestChunkWriter_UnknownEncoding(t *testing.T) {
	var buf bytes.Buffer
	err := NewChunkWriter(&buf).WriteChunk([]byte{1}, Encoding(9))
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("err=%v want ErrUnknownEncoding", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("wrote %d bytes for a rejected chunk", buf.Len())
	}
}

func TestChecksum(t *testing.T) {
	if got := Checksum([]byte{1, 2, 3, 250}); got != 256 {
		t.Fatalf("Checksum: got=%d want=256", got)
	}
	if got := Checksum(nil); got != 0 {
		t.Fatalf("Checksum(nil): got=%d", got)
	}
}
