// Package sawyer implements the chunk framing used by the legacy save format:
// every chunk is a 5-byte header (encoding, encoded length) followed by the
// encoded payload.
package sawyer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

type Encoding uint8

const (
	EncodingRaw    Encoding = 0
	EncodingRLE    Encoding = 1
	EncodingRotate Encoding = 3
)

const HeaderSize = 5

func (e Encoding) String() string {
	switch e {
	case EncodingRaw:
		return "raw"
	case EncodingRLE:
		return "rle"
	case EncodingRotate:
		return "rotate"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}

var ErrUnknownEncoding = errors.New("unknown chunk encoding")

// Encode returns the chunk payload for data under enc.
func Encode(data []byte, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingRaw:
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	case EncodingRLE:
		return EncodeRLE(data), nil
	case EncodingRotate:
		return EncodeRotate(data), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(enc))
	}
}

// Decode reverses Encode.
func Decode(payload []byte, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingRaw:
		out := make([]byte, len(payload))
		copy(out, payload)
		return out, nil
	case EncodingRLE:
		return DecodeRLE(payload)
	case EncodingRotate:
		return DecodeRotate(payload), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint8(enc))
	}
}

// ChunkWriter frames and encodes chunks onto an underlying writer.
type ChunkWriter struct {
	w io.Writer
}

func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{w: w}
}

func (c *ChunkWriter) WriteChunk(data []byte, enc Encoding) error {
	payload, err := Encode(data, enc)
	if err != nil {
		return err
	}
	var hdr [HeaderSize]byte
	hdr[0] = byte(enc)
	binary.LittleEndian.PutUint32(hdr[1:], uint32(len(payload)))
	if _, err := c.w.Write(hdr[:]); err != nil {
		return fmt.Errorf("write %s chunk header: %w", enc, err)
	}
	if _, err := c.w.Write(payload); err != nil {
		return fmt.Errorf("write %s chunk payload: %w", enc, err)
	}
	return nil
}

// ReadChunk reads one framed chunk from r and returns its decoded data.
func ReadChunk(r io.Reader) ([]byte, Encoding, error) {
	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, 0, err
	}
	enc := Encoding(hdr[0])
	n := binary.LittleEndian.Uint32(hdr[1:])
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, enc, fmt.Errorf("read %s chunk payload: %w", enc, err)
	}
	data, err := Decode(payload, enc)
	return data, enc, err
}
