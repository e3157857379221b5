// Package snapshot persists outline completion summaries over time.
//
// Every recorded snapshot captures the node and status counts of one parse
// of one document, so progress across re-parses can be compared without
// keeping the documents themselves. Backed by SQLite (modernc, no cgo),
// same engine the rest of the ecosystem around this tool uses.
package snapshot

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/specnav/specnav/internal/outline"
)

// Package-level vars for test injection.
var (
	openDB  = sql.Open
	timeNow = time.Now
)

// Snapshot is one recorded outline summary.
type Snapshot struct {
	ID          int64  `json:"id"`
	DocPath     string `json:"doc_path"`
	View        string `json:"view"`
	Sections    int    `json:"sections"`
	Subsections int    `json:"subsections"`
	Items       int    `json:"items"`
	Completed   int    `json:"completed"`
	InProgress  int    `json:"in_progress"`
	Pending     int    `json:"pending"`
	CreatedAt   string `json:"created_at"`
}

// Summary converts the stored counts back into an outline summary.
func (s Snapshot) Summary() outline.Summary {
	return outline.Summary{
		Sections:    s.Sections,
		Subsections: s.Subsections,
		Items:       s.Items,
		Completed:   s.Completed,
		InProgress:  s.InProgress,
		Pending:     s.Pending,
	}
}

// Config holds snapshot store configuration.
type Config struct {
	DataDir string
}

// DefaultConfig stores snapshots under the user's home directory.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{DataDir: filepath.Join(home, ".specnav")}
}

// Store is the snapshot database.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the snapshot database and runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("snapshot: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "snapshots.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("snapshot: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("snapshot: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			doc_path    TEXT    NOT NULL,
			view        TEXT    NOT NULL,
			sections    INTEGER NOT NULL,
			subsections INTEGER NOT NULL,
			items       INTEGER NOT NULL,
			completed   INTEGER NOT NULL,
			in_progress INTEGER NOT NULL,
			pending     INTEGER NOT NULL,
			created_at  TEXT    NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_snapshots_doc
			ON snapshots(doc_path, created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record persists one outline summary for a document and returns its ID.
func (s *Store) Record(docPath string, mode outline.ViewMode, sum outline.Summary) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO snapshots
			(doc_path, view, sections, subsections, items, completed, in_progress, pending, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		docPath, string(mode),
		sum.Sections, sum.Subsections, sum.Items,
		sum.Completed, sum.InProgress, sum.Pending,
		timeNow().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("snapshot: record: %w", err)
	}
	return res.LastInsertId()
}

// History returns a document's snapshots, newest first.
func (s *Store) History(docPath string, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, doc_path, view, sections, subsections, items,
		        completed, in_progress, pending, created_at
		 FROM snapshots
		 WHERE doc_path = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		docPath, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("snapshot: history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(
			&snap.ID, &snap.DocPath, &snap.View,
			&snap.Sections, &snap.Subsections, &snap.Items,
			&snap.Completed, &snap.InProgress, &snap.Pending,
			&snap.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("snapshot: scan: %w", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Latest returns a document's most recent snapshot, or nil when none exists.
func (s *Store) Latest(docPath string) (*Snapshot, error) {
	snaps, err := s.History(docPath, 1)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, nil
	}
	return &snaps[0], nil
}
