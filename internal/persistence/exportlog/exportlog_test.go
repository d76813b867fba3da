package exportlog

import (
	"testing"
	"time"
)

func TestJournal_WriteAndRead(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	j := New(dir)
	j.now = func() time.Time { return at }

	if err := j.Write(Entry{Kind: "game", Path: "a.sv6", Rides: 2, Warnings: []string{"relinked 1 disjoint null sprites"}}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := j.Write(Entry{Kind: "scenario", Path: "b.sc6"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := ReadFile(j.Path(at))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("entries: got=%d want=2", len(got))
	}
	if got[0].Path != "a.sv6" || got[0].Rides != 2 || len(got[0].Warnings) != 1 {
		t.Fatalf("entry 0: got=%+v", got[0])
	}
	if got[1].Kind != "scenario" || got[1].Time != at.Format(time.RFC3339Nano) {
		t.Fatalf("entry 1: got=%+v", got[1])
	}
}

func TestJournal_RotatesByHour(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2026, 3, 4, 5, 59, 0, 0, time.UTC)
	j := New(dir)
	j.now = func() time.Time { return at }
	if err := j.Write(Entry{Path: "first"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	next := at.Add(2 * time.Minute)
	j.now = func() time.Time { return next }
	if err := j.Write(Entry{Path: "second"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	for _, c := range []struct {
		hour time.Time
		path string
	}{{at, "first"}, {next, "second"}} {
		got, err := ReadFile(j.Path(c.hour))
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if len(got) != 1 || got[0].Path != c.path {
			t.Fatalf("hour %s: got=%+v", c.hour, got)
		}
	}
}
