package archive

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

type SaveArchiveMeta struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Source       string `json:"source"`
	Archive      string `json:"archive"`
	ScenarioName string `json:"scenario_name,omitempty"`
	Bytes        int64  `json:"bytes"`
	CreatedAt    string `json:"created_at"`
}

// ArchiveSave compresses a written save into `archiveDir/<id>/<base>.zst`
// and records meta.json next to it. meta.ID is generated when empty; the
// completed meta is returned.
func ArchiveSave(archiveDir, savePath string, meta SaveArchiveMeta) (SaveArchiveMeta, error) {
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	dir := filepath.Join(archiveDir, meta.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return meta, err
	}

	dst := filepath.Join(dir, filepath.Base(savePath)+".zst")
	n, err := compressFile(savePath, dst)
	if err != nil {
		return meta, fmt.Errorf("compress %s: %w", savePath, err)
	}

	meta.Source = savePath
	meta.Archive = filepath.Base(dst)
	meta.Bytes = n
	meta.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	b, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return meta, err
	}
	if err := os.WriteFile(filepath.Join(dir, "meta.json"), b, 0o644); err != nil {
		return meta, err
	}
	return meta, nil
}

// ReadArchived returns the decompressed save stored at path.
func ReadArchived(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(bufio.NewReaderSize(dec, 256*1024))
}

func compressFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer func() { _ = out.Close() }()

	enc, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(enc, in)
	if err != nil {
		_ = enc.Close()
		return 0, err
	}
	if err := enc.Close(); err != nil {
		return 0, err
	}
	return n, out.Close()
}
