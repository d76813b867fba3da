package indexdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SaveRecord describes one written save file.
type SaveRecord struct {
	ID           string
	Kind         string
	Path         string
	ArchivePath  string
	ScenarioName string
	Bytes        int64
	Checksum     uint32
	Rides        int
	Sprites      int
	RecordedAt   string
}

var (
	ErrClosed    = errors.New("index closed")
	ErrQueueFull = errors.New("index queue full")
)

type SQLiteIndex struct {
	db *sql.DB

	// mu orders sends on ch against Close closing it.
	mu     sync.RWMutex
	closed bool
	ch     chan SaveRecord
	wg     sync.WaitGroup
	once   sync.Once
}

func OpenSQLite(path string) (*SQLiteIndex, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteIndex{
		db: db,
		ch: make(chan SaveRecord, 1024),
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
	return s, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS saves (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			path TEXT NOT NULL,
			archive_path TEXT,
			scenario_name TEXT,
			bytes INTEGER NOT NULL,
			checksum INTEGER NOT NULL,
			rides INTEGER NOT NULL,
			sprites INTEGER NOT NULL,
			recorded_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_saves_path ON saves(path, recorded_at);`,
		`INSERT OR REPLACE INTO meta(key,value) VALUES('schema_version','1');`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Close drains pending records and closes the database.
func (s *SQLiteIndex) Close() error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.ch)
		s.mu.Unlock()
		s.wg.Wait()
		err = s.db.Close()
	})
	return err
}

// RecordSave queues r for insertion and returns its id. Missing ids and
// timestamps are filled in. The id is returned even when the record is not
// queued: ErrClosed after Close, ErrQueueFull if the writer falls behind.
func (s *SQLiteIndex) RecordSave(r SaveRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if s == nil {
		return r.ID, ErrClosed
	}
	if r.RecordedAt == "" {
		r.RecordedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return r.ID, ErrClosed
	}
	select {
	case s.ch <- r:
		return r.ID, nil
	default:
		return r.ID, ErrQueueFull
	}
}

// Saves lists recorded saves for path, newest first. An empty path lists
// every save.
func (s *SQLiteIndex) Saves(ctx context.Context, path string) ([]SaveRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,kind,path,COALESCE(archive_path,''),COALESCE(scenario_name,''),bytes,checksum,rides,sprites,recorded_at
		FROM saves WHERE ?='' OR path=? ORDER BY recorded_at DESC`, path, path)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SaveRecord
	for rows.Next() {
		var (
			r        SaveRecord
			checksum int64
		)
		if err := rows.Scan(&r.ID, &r.Kind, &r.Path, &r.ArchivePath, &r.ScenarioName, &r.Bytes, &checksum, &r.Rides, &r.Sprites, &r.RecordedAt); err != nil {
			return nil, err
		}
		r.Checksum = uint32(checksum)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteIndex) loop() {
	ctx := context.Background()
	insertSave, _ := s.db.Prepare(`INSERT OR REPLACE INTO saves(id,kind,path,archive_path,scenario_name,bytes,checksum,rides,sprites,recorded_at) VALUES(?,?,?,?,?,?,?,?,?,?)`)
	defer func() {
		if insertSave != nil {
			_ = insertSave.Close()
		}
	}()

	var (
		tx            *sql.Tx
		opCount       int
		lastCommit    = time.Now()
		commitEvery   = 256
		commitMaxWait = 2 * time.Second
	)

	begin := func() {
		if tx != nil {
			return
		}
		txx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			time.Sleep(50 * time.Millisecond)
			return
		}
		tx = txx
		opCount = 0
		lastCommit = time.Now()
	}
	commit := func() {
		if tx == nil {
			return
		}
		_ = tx.Commit()
		tx = nil
		opCount = 0
		lastCommit = time.Now()
	}
	rollback := func() {
		if tx == nil {
			return
		}
		_ = tx.Rollback()
		tx = nil
		opCount = 0
		lastCommit = time.Now()
	}

	for r := range s.ch {
		begin()
		if tx == nil || insertSave == nil {
			continue
		}
		if _, err := tx.Stmt(insertSave).Exec(
			r.ID,
			r.Kind,
			r.Path,
			r.ArchivePath,
			r.ScenarioName,
			r.Bytes,
			int64(r.Checksum),
			r.Rides,
			r.Sprites,
			r.RecordedAt,
		); err != nil {
			rollback()
			continue
		}
		opCount++
		if opCount >= commitEvery || time.Since(lastCommit) >= commitMaxWait {
			commit()
		}
	}

	commit()
}
