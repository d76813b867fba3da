package sv6

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"parksave.dev/internal/persistence/sawyer"
)

// ChunkWriter frames one encoded chunk onto the output.
type ChunkWriter interface {
	WriteChunk(data []byte, enc sawyer.Encoding) error
}

// ObjectRepository serializes the packed object blobs that follow the header.
type ObjectRepository interface {
	WritePackedObjects(w io.Writer, objs []ObjectEntry) error
}

var ErrNoObjectRepository = errors.New("packed objects requested without an object repository")

// Saver persists exported snapshots. The zero value writes chunks with
// sawyer.ChunkWriter and refuses snapshots that carry packed objects.
type Saver struct {
	Objects ObjectRepository
	Chunks  func(io.Writer) ChunkWriter
	// GameVersion overrides the build stamp already present in the snapshot.
	GameVersion uint32
}

func (sv *Saver) chunkWriter(w io.Writer) ChunkWriter {
	if sv.Chunks != nil {
		return sv.Chunks(w)
	}
	return sawyer.NewChunkWriter(w)
}

// SaveGame writes s as a resumable saved game.
func (sv *Saver) SaveGame(w io.ReadWriteSeeker, s *S6) error {
	return sv.save(w, s, false)
}

// SaveScenario writes s as a scenario template.
func (sv *Saver) SaveScenario(w io.ReadWriteSeeker, s *S6) error {
	return sv.save(w, s, true)
}

func (sv *Saver) SaveGameFile(path string, s *S6) error {
	return sv.saveFile(path, s, false)
}

func (sv *Saver) SaveScenarioFile(path string, s *S6) error {
	return sv.saveFile(path, s, true)
}

func (sv *Saver) saveFile(path string, s *S6, scenario bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := sv.save(f, s, scenario); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// stampHeader sets every header field from the save mode.
func (sv *Saver) stampHeader(s *S6, scenario bool) {
	s.Header.Type = TypeSavedGame
	if scenario {
		s.Header.Type = TypeScenario
	}
	s.Header.ClassicFlag = 0
	s.Header.NumPackedObjects = uint16(len(s.Packed))
	s.Header.Version = FormatVersion
	s.Header.MagicNumber = MagicNumber
	switch {
	case sv.GameVersion != 0:
		s.Rest.Company.GameVersionNumber = sv.GameVersion
	case s.Rest.Company.GameVersionNumber == 0:
		s.Rest.Company.GameVersionNumber = GameVersion
	}
}

func (sv *Saver) save(w io.ReadWriteSeeker, s *S6, scenario bool) error {
	if len(s.Packed) > 0 && sv.Objects == nil {
		return ErrNoObjectRepository
	}
	sv.stampHeader(s, scenario)
	cw := sv.chunkWriter(w)

	hdr, err := Marshal(&s.Header)
	if err != nil {
		return err
	}
	if err := cw.WriteChunk(hdr, sawyer.EncodingRotate); err != nil {
		return fmt.Errorf("header: %w", err)
	}

	if scenario {
		info, err := Marshal(&s.Info)
		if err != nil {
			return err
		}
		if err := cw.WriteChunk(info, sawyer.EncodingRotate); err != nil {
			return fmt.Errorf("scenario info: %w", err)
		}
	}

	if len(s.Packed) > 0 {
		if err := sv.Objects.WritePackedObjects(w, s.Packed); err != nil {
			return fmt.Errorf("packed objects: %w", err)
		}
	}

	objs, err := Marshal(&s.Objects)
	if err != nil {
		return err
	}
	if err := cw.WriteChunk(objs, sawyer.EncodingRotate); err != nil {
		return fmt.Errorf("object table: %w", err)
	}

	clock, err := Marshal(&s.Clock)
	if err != nil {
		return err
	}
	if err := cw.WriteChunk(clock, sawyer.EncodingRLE); err != nil {
		return fmt.Errorf("clock: %w", err)
	}
	if err := cw.WriteChunk(EncodeTiles(s.Tiles[:]), sawyer.EncodingRLE); err != nil {
		return fmt.Errorf("tiles: %w", err)
	}

	if scenario {
		parts, err := s.ScenarioTail()
		if err != nil {
			return err
		}
		for i, p := range parts {
			if err := cw.WriteChunk(p, sawyer.EncodingRLE); err != nil {
				return fmt.Errorf("scenario tail %d: %w", i, err)
			}
		}
	} else {
		tail, err := s.FullTail()
		if err != nil {
			return err
		}
		if err := cw.WriteChunk(tail, sawyer.EncodingRLE); err != nil {
			return fmt.Errorf("game tail: %w", err)
		}
	}

	return appendChecksum(w)
}

// appendChecksum reads back everything written so far and appends its
// checksum, so framing bytes are covered too.
func appendChecksum(w io.ReadWriteSeeker) error {
	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("checksum seek: %w", err)
	}
	data, err := io.ReadAll(w)
	if err != nil {
		return fmt.Errorf("checksum read-back: %w", err)
	}
	if _, err := w.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("checksum seek: %w", err)
	}
	var sum [4]byte
	binary.LittleEndian.PutUint32(sum[:], sawyer.Checksum(data))
	if _, err := w.Write(sum[:]); err != nil {
		return fmt.Errorf("checksum write: %w", err)
	}
	return nil
}
