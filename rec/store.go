// Copyright © 2026 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: rec/store.go
// Summary: SQLite-backed frame recorder for composited surfaces.
// Usage: glint-demo -record captures every frame for offline inspection.

// Package rec persists composited frames to a SQLite database so effect
// authors can replay and diff animation runs offline.
package rec

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/glintfx/glint/cell"
)

// Bump when the frames table layout changes; old recordings are discarded.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS frames (
    session   TEXT NOT NULL,
    seq       INTEGER NOT NULL,
    timestamp INTEGER NOT NULL,        -- UnixNano
    width     INTEGER NOT NULL,
    height    INTEGER NOT NULL,
    snapshot  TEXT NOT NULL,
    PRIMARY KEY (session, seq)
);

CREATE INDEX IF NOT EXISTS idx_frames_session ON frames(session);
`

// Frame is one recorded surface state.
type Frame struct {
	Seq       int
	Timestamp time.Time
	Width     int
	Height    int
	Snapshot  string
}

// Store records frames into a SQLite database. Safe for use from a single
// frame loop; it holds no state beyond the connection.
type Store struct {
	db *sql.DB
}

// Open creates or opens a recording database, creating parent directories
// as needed. A schema version mismatch drops existing recordings rather
// than migrating rows nobody can replay anyway.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("rec: create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=temp_store(MEMORY)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("rec: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("rec: connect: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("rec: create schema: %w", err)
	}
	if err := checkSchemaVersion(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func checkSchemaVersion(db *sql.DB) error {
	var current int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&current)
	if err == sql.ErrNoRows {
		current = 0
	} else if err != nil {
		return fmt.Errorf("rec: read schema version: %w", err)
	}

	if current == schemaVersion {
		return nil
	}
	if current != 0 {
		log.Printf("rec: schema version changed (%d -> %d), discarding old frames", current, schemaVersion)
		if _, err := db.Exec("DELETE FROM frames"); err != nil {
			return fmt.Errorf("rec: discard old frames: %w", err)
		}
	}
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		return fmt.Errorf("rec: reset schema version: %w", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("rec: write schema version: %w", err)
	}
	return nil
}

// RecordFrame stores the surface's current state under (session, seq).
// Re-recording an existing sequence number overwrites the earlier frame.
func (st *Store) RecordFrame(session string, seq int, s *cell.Surface) error {
	w, h := s.Size()
	_, err := st.db.Exec(
		`INSERT OR REPLACE INTO frames (session, seq, timestamp, width, height, snapshot)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		session, seq, time.Now().UnixNano(), w, h, s.Snapshot(),
	)
	if err != nil {
		return fmt.Errorf("rec: record frame %d: %w", seq, err)
	}
	return nil
}

// Frames returns a session's frames in sequence order.
func (st *Store) Frames(session string) ([]Frame, error) {
	rows, err := st.db.Query(
		`SELECT seq, timestamp, width, height, snapshot
		 FROM frames WHERE session = ? ORDER BY seq`,
		session,
	)
	if err != nil {
		return nil, fmt.Errorf("rec: query frames: %w", err)
	}
	defer rows.Close()

	var frames []Frame
	for rows.Next() {
		var f Frame
		var ts int64
		if err := rows.Scan(&f.Seq, &ts, &f.Width, &f.Height, &f.Snapshot); err != nil {
			return nil, fmt.Errorf("rec: scan frame: %w", err)
		}
		f.Timestamp = time.Unix(0, ts)
		frames = append(frames, f)
	}
	return frames, rows.Err()
}

// Sessions lists recorded session names, newest first.
func (st *Store) Sessions() ([]string, error) {
	rows, err := st.db.Query(
		`SELECT session FROM frames GROUP BY session ORDER BY MAX(timestamp) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("rec: query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("rec: scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// Close releases the database connection.
func (st *Store) Close() error {
	return st.db.Close()
}
