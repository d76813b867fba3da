package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"parksave.dev/internal/persistence/exportlog"
	"parksave.dev/internal/persistence/indexdb"
	"parksave.dev/internal/persistence/sawyer"
)

const state = `{
  "scenario": {"name": "Forest Frontiers"},
  "clock": {"months_elapsed": 2},
  "park": {},
  "finance": {"cash": 10000, "initial_cash": 10000, "loan": 5000, "max_loan": 20000},
  "rides": [{"id": 0, "type": 2}]
}`

func TestRun_WritesScenarioArchiveAndIndex(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state.json")
	if err := os.WriteFile(statePath, []byte(state), 0o644); err != nil {
		t.Fatalf("write state: %v", err)
	}
	dbPath := filepath.Join(dir, "index.db")
	t.Setenv("PARKSAVE_ARCHIVE_DIR", filepath.Join(dir, "archive"))
	t.Setenv("PARKSAVE_INDEX_DB", dbPath)
	t.Setenv("PARKSAVE_REMOVE_TRACKLESS_RIDES", "false")
	journalDir := filepath.Join(dir, "journal")
	t.Setenv("PARKSAVE_JOURNAL_DIR", journalDir)

	out := filepath.Join(dir, "park.sc6")
	var stdout bytes.Buffer
	if err := run([]string{"-state", statePath, "-out", out}, &stdout, log.New(io.Discard, "", 0)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "wrote scenario") {
		t.Fatalf("stdout: %q", stdout.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read save: %v", err)
	}
	body := data[:len(data)-4]
	if got, want := sawyer.Checksum(body), binary.LittleEndian.Uint32(data[len(data)-4:]); got != want {
		t.Fatalf("checksum: got=%#x want=%#x", got, want)
	}

	idx, err := indexdb.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer idx.Close()
	saves, err := idx.Saves(context.Background(), out)
	if err != nil {
		t.Fatalf("Saves: %v", err)
	}
	if len(saves) != 1 {
		t.Fatalf("saves: got=%d want=1", len(saves))
	}
	rec := saves[0]
	if rec.Kind != "scenario" || rec.Rides != 1 || rec.Bytes != int64(len(data)) || rec.ArchivePath == "" {
		t.Fatalf("record: got=%+v", rec)
	}
	if _, err := os.Stat(rec.ArchivePath); err != nil {
		t.Fatalf("archive missing: %v", err)
	}

	files, err := filepath.Glob(filepath.Join(journalDir, "exports-*.jsonl.zst"))
	if err != nil || len(files) != 1 {
		t.Fatalf("journal files: got=%v err=%v", files, err)
	}
	entries, err := exportlog.ReadFile(files[0])
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != rec.ID || entries[0].Source != statePath {
		t.Fatalf("journal: got=%+v", entries)
	}
}

func TestRun_MissingFlags(t *testing.T) {
	err := run(nil, io.Discard, log.New(io.Discard, "", 0))
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err: got=%v want=%v", err, flag.ErrHelp)
	}
}
