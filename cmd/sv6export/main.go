package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"parksave.dev/internal/config"
	"parksave.dev/internal/persistence/archive"
	"parksave.dev/internal/persistence/exportlog"
	"parksave.dev/internal/persistence/indexdb"
	"parksave.dev/internal/persistence/objrepo"
	"parksave.dev/internal/persistence/sv6"
	"parksave.dev/internal/persistence/textenc"
	"parksave.dev/internal/sim/export"
	"parksave.dev/internal/sim/park"
)

func main() {
	logger := log.New(os.Stderr, "[sv6export] ", log.LstdFlags|log.Lmicroseconds)
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Printf("%v", err)
		os.Exit(1)
	}
}

type options struct {
	statePath  string
	outPath    string
	configPath string
	scenario   bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("sv6export", flag.ContinueOnError)
	fs.StringVar(&o.statePath, "state", "", "park state JSON to export")
	fs.StringVar(&o.outPath, "out", "", "output .sv6 or .sc6 path")
	fs.StringVar(&o.configPath, "config", "", "YAML config (optional)")
	fs.BoolVar(&o.scenario, "scenario", false, "write a scenario template (default for .sc6 outputs)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.statePath == "" || o.outPath == "" {
		fs.Usage()
		return o, fmt.Errorf("missing -state or -out: %w", flag.ErrHelp)
	}
	if strings.EqualFold(filepath.Ext(o.outPath), ".sc6") {
		o.scenario = true
	}
	return o, nil
}

func run(args []string, stdout io.Writer, logger *log.Logger) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	st, err := park.LoadFile(o.statePath)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	var notes bytes.Buffer
	x := &export.Exporter{
		RemoveTracklessRides: cfg.RemoveTracklessRides,
		PackObjects:          cfg.PackObjects,
		GameVersion:          cfg.GameVersion,
		Logger:               log.New(&notes, "", 0),
	}
	s, err := x.Export(st)
	warnings := splitLines(notes.String())
	for _, w := range warnings {
		logger.Print(w)
	}
	if err != nil {
		return err
	}

	saver := &sv6.Saver{}
	if cfg.ObjectDir != "" {
		saver.Objects = objrepo.New(cfg.ObjectDir)
	}
	kind := "game"
	save := saver.SaveGameFile
	if o.scenario {
		kind = "scenario"
		save = saver.SaveScenarioFile
	}
	if err := save(o.outPath, s); err != nil {
		return fmt.Errorf("save %s: %w", o.outPath, err)
	}

	size, checksum, err := trailer(o.outPath)
	if err != nil {
		return err
	}
	scenarioName := textenc.Decode(s.Rest.Company.ScenarioName[:])
	fmt.Fprintf(stdout, "wrote %s %s (%s, checksum %#08x)\n", kind, o.outPath, humanize.Bytes(uint64(size)), checksum)

	rec := indexdb.SaveRecord{
		Kind:         kind,
		Path:         o.outPath,
		ScenarioName: scenarioName,
		Bytes:        size,
		Checksum:     checksum,
		Rides:        int(s.Rest.Company.RideCount),
		Sprites:      liveSprites(s),
	}
	if cfg.ArchiveDir != "" {
		meta, err := archive.ArchiveSave(cfg.ArchiveDir, o.outPath, archive.SaveArchiveMeta{Kind: kind, ScenarioName: scenarioName})
		if err != nil {
			return fmt.Errorf("archive: %w", err)
		}
		rec.ID = meta.ID
		rec.ArchivePath = filepath.Join(cfg.ArchiveDir, meta.ID, meta.Archive)
		fmt.Fprintf(stdout, "archived %s (%s)\n", rec.ArchivePath, humanize.Bytes(uint64(meta.Bytes)))
	}
	if cfg.IndexDB != "" {
		idx, err := indexdb.OpenSQLite(cfg.IndexDB)
		if err != nil {
			return fmt.Errorf("index: %w", err)
		}
		var queueErr error
		rec.ID, queueErr = idx.RecordSave(rec)
		if err := idx.Close(); err != nil {
			return fmt.Errorf("index: %w", err)
		}
		if queueErr != nil {
			logger.Printf("index: save %s not recorded: %v", rec.ID, queueErr)
		} else {
			logger.Printf("indexed save %s", rec.ID)
		}
	}
	if cfg.JournalDir != "" {
		j := exportlog.New(cfg.JournalDir)
		err := j.Write(exportlog.Entry{
			ID:       rec.ID,
			Kind:     kind,
			Source:   o.statePath,
			Path:     o.outPath,
			Bytes:    size,
			Checksum: checksum,
			Rides:    rec.Rides,
			Sprites:  rec.Sprites,
			Warnings: warnings,
		})
		if cerr := j.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("journal: %w", err)
		}
	}
	return nil
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// trailer returns the file size and the checksum stored in its last 4 bytes.
func trailer(path string) (int64, uint32, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}
	if len(b) < 4 {
		return 0, 0, fmt.Errorf("%s: truncated save", path)
	}
	return int64(len(b)), binary.LittleEndian.Uint32(b[len(b)-4:]), nil
}

func liveSprites(s *sv6.S6) int {
	n := 0
	for i := range s.Park.Sprites {
		if s.Park.Sprites[i].Base.Identifier != sv6.SpriteNull {
			n++
		}
	}
	return n
}
