package history

// Package history persists analyzed records across runs in an sqlite
// database, so repeated sessions build a browsable analysis log.

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/NSTRvG/Sequence-Analyzer/internal/fasta"
)

// Entry is one stored record together with its provenance.
type Entry struct {
	ID         int64
	SourceFile string
	Name       string
	GCContent  float64
	Protein    string
	AnalyzedAt time.Time
}

// Record converts the entry back to the parser's record shape.
func (e Entry) Record() fasta.Record {
	return fasta.Record{Name: e.Name, GCContent: e.GCContent, Protein: e.Protein}
}

// Store wraps the sqlite history database.
type Store struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source_file TEXT NOT NULL,
    name TEXT NOT NULL,
    gc_content REAL NOT NULL,
    protein TEXT NOT NULL,
    analyzed_at TEXT NOT NULL
)`

// Open opens the history database at path, creating the file and schema if
// needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Add stores records analyzed from source, stamped with the current UTC
// time. All records are written in one transaction so a failure leaves the
// history unchanged.
func (s *Store) Add(ctx context.Context, source string, records []fasta.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history tx: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, rec := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO records (source_file, name, gc_content, protein, analyzed_at)
             VALUES (?, ?, ?, ?, ?)`,
			source, rec.Name, rec.GCContent, rec.Protein, now); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert history record: %w", err)
		}
	}
	return tx.Commit()
}

// List returns all stored entries, oldest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_file, name, gc_content, protein, analyzed_at FROM records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.ID, &e.SourceFile, &e.Name, &e.GCContent, &e.Protein, &at); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339, at); perr == nil {
			e.AnalyzedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
