package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"parksave.dev/internal/persistence/sv6"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parksave.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.RemoveTracklessRides || c.GameVersion != sv6.GameVersion {
		t.Fatalf("defaults: got=%+v", c)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, "remove_trackless_rides: false\ngame_version: 7\narchive_dir: /tmp/a\n")
	t.Setenv("PARKSAVE_GAME_VERSION", "9")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.RemoveTracklessRides {
		t.Fatalf("remove_trackless_rides: got=true want=false")
	}
	if c.GameVersion != 9 {
		t.Fatalf("game_version: got=%d want=9", c.GameVersion)
	}
	if c.ArchiveDir != "/tmp/a" {
		t.Fatalf("archive_dir: got=%q", c.ArchiveDir)
	}
}

func TestLoad_PackNeedsObjectDir(t *testing.T) {
	path := writeFile(t, "pack_objects: true\n")
	if _, err := Load(path); !errors.Is(err, ErrPackWithoutObjects) {
		t.Fatalf("err: got=%v want=%v", err, ErrPackWithoutObjects)
	}
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("PARKSAVE_GAME_VERSION", "not-a-number")
	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeFile(t, "game_version: [\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error")
	}
}
