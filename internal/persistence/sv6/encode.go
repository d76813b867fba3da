package sv6

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrSlotOverflow = errors.New("record exceeds slot size")

func putLE(buf *bytes.Buffer, v any) error {
	return binary.Write(buf, binary.LittleEndian, v)
}

// Marshal encodes a fixed-layout value little-endian.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(binary.Size(v))
	if err := putLE(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeSlot(buf *bytes.Buffer, size int, parts ...any) error {
	start := buf.Len()
	for _, p := range parts {
		if p == nil {
			continue
		}
		if err := putLE(buf, p); err != nil {
			return err
		}
	}
	n := buf.Len() - start
	if n > size {
		return fmt.Errorf("%w: %d > %d", ErrSlotOverflow, n, size)
	}
	buf.Write(make([]byte, size-n))
	return nil
}

// EncodeSprite writes one sprite into a SpriteSlotSize slot.
func EncodeSprite(buf *bytes.Buffer, rec SpriteRecord) error {
	var body any
	if rec.Body != nil {
		body = rec.Body
	}
	if err := encodeSlot(buf, SpriteSlotSize, &rec.Base, body); err != nil {
		return fmt.Errorf("sprite %d: %w", rec.Base.SpriteIndex, err)
	}
	return nil
}

// EncodeRide writes one ride into a RideSlotSize slot.
func EncodeRide(buf *bytes.Buffer, r *RideRecord) error {
	return encodeSlot(buf, RideSlotSize, r)
}

// EncodeTiles writes the tile grid, 8 bytes per element.
func EncodeTiles(tiles []TileElement) []byte {
	out := make([]byte, 0, len(tiles)*8)
	for _, t := range tiles {
		out = append(out, t.Type, t.Flags, t.BaseHeight, t.ClearanceHeight,
			t.Data[0], t.Data[1], t.Data[2], t.Data[3])
	}
	return out
}

func (p *ParkBlock) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(4 + MaxSprites*SpriteSlotSize + binary.Size(&p.Lists) + binary.Size(&p.Scalars))
	if err := putLE(&buf, p.NextFreeTileElement); err != nil {
		return nil, err
	}
	for i := range p.Sprites {
		if err := EncodeSprite(&buf, p.Sprites[i]); err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
	}
	if err := putLE(&buf, &p.Lists); err != nil {
		return nil, err
	}
	if err := putLE(&buf, &p.Scalars); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *RestBlock) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(binary.Size(&r.Company) + MaxRides*RideSlotSize + binary.Size(&r.Env))
	if err := putLE(&buf, &r.Company); err != nil {
		return nil, err
	}
	for i := range r.Rides {
		if err := EncodeRide(&buf, &r.Rides[i]); err != nil {
			return nil, fmt.Errorf("ride %d: %w", i, err)
		}
	}
	if err := putLE(&buf, &r.Env); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ScenarioTail returns the tail blocks a scenario template carries, one
// payload per chunk.
func (s *S6) ScenarioTail() ([][]byte, error) {
	return s.tail(&s.Park, &s.Guests, &s.Staff, &s.Rating, &s.Research,
		&s.Finance, &s.Value, &s.Rest)
}

// FullTail returns the saved-game tail as one contiguous payload.
func (s *S6) FullTail() ([]byte, error) {
	parts, err := s.tail(&s.Park, &s.Inventions, &s.Guests, &s.Expenditure,
		&s.Staff, &s.Scenery, &s.Rating, &s.History, &s.Research, &s.Balance,
		&s.Finance, &s.WeeklyProfit, &s.Value, &s.ValueHistory, &s.Rest)
	if err != nil {
		return nil, err
	}
	return bytes.Join(parts, nil), nil
}

type binaryMarshaler interface {
	MarshalBinary() ([]byte, error)
}

func (s *S6) tail(blocks ...any) ([][]byte, error) {
	out := make([][]byte, 0, len(blocks))
	for _, b := range blocks {
		var (
			data []byte
			err  error
		)
		if m, ok := b.(binaryMarshaler); ok {
			data, err = m.MarshalBinary()
		} else {
			data, err = Marshal(b)
		}
		if err != nil {
			return nil, fmt.Errorf("encode %T: %w", b, err)
		}
		out = append(out, data)
	}
	return out, nil
}
