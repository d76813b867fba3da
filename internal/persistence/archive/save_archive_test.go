package archive

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestArchiveSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "saves", "park.sv6")
	if err := os.MkdirAll(filepath.Dir(src), 0o755); err != nil {
		t.Fatalf("mkdir saves: %v", err)
	}
	want := bytes.Repeat([]byte{0x01, 0x00, 0xFF}, 4096)
	if err := os.WriteFile(src, want, 0o644); err != nil {
		t.Fatalf("write src: %v", err)
	}

	meta, err := ArchiveSave(filepath.Join(dir, "archive"), src, SaveArchiveMeta{Kind: "game", ScenarioName: "Forest Frontiers"})
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if meta.ID == "" {
		t.Fatalf("expected generated id")
	}
	if meta.Bytes != int64(len(want)) {
		t.Fatalf("bytes: got=%d want=%d", meta.Bytes, len(want))
	}

	archived := filepath.Join(dir, "archive", meta.ID, meta.Archive)
	got, err := ReadArchived(archived)
	if err != nil {
		t.Fatalf("read archived: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("archived content mismatch: got %d bytes want %d", len(got), len(want))
	}

	b, err := os.ReadFile(filepath.Join(dir, "archive", meta.ID, "meta.json"))
	if err != nil {
		t.Fatalf("expected meta.json to exist: %v", err)
	}
	var onDisk SaveArchiveMeta
	if err := json.Unmarshal(b, &onDisk); err != nil {
		t.Fatalf("decode meta: %v", err)
	}
	if onDisk.ID != meta.ID || onDisk.Kind != "game" || onDisk.Source != src {
		t.Fatalf("meta mismatch: got=%+v", onDisk)
	}
}

func TestArchiveSave_KeepsGivenID(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "s.sc6")
	if err := os.WriteFile(src, []byte("scenario"), 0o644); err != nil {
		t.Fatalf("write src: %v", err)
	}
	meta, err := ArchiveSave(dir, src, SaveArchiveMeta{ID: "fixed", Kind: "scenario"})
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if meta.ID != "fixed" || meta.Archive != "s.sc6.zst" {
		t.Fatalf("meta: got=%+v", meta)
	}
}
