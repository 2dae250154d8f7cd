package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"dailyroll/internal/domain"
	"dailyroll/internal/ports"
)

const schemaVersion = "1"

// Journal implements ports.MergeJournal using SQLite. The database lives
// inside the vault under .dailyroll/ so it travels with the notes.
type Journal struct {
	db     *sql.DB
	dbPath string
}

// Ensure Journal implements MergeJournal
var _ ports.MergeJournal = (*Journal)(nil)

// NewJournal creates a new SQLite journal
func NewJournal() *Journal {
	return &Journal{}
}

// Open initializes the journal for the given vault path
func (j *Journal) Open(vaultPath string) error {
	// Expand ~ in path
	if len(vaultPath) > 0 && vaultPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		vaultPath = filepath.Join(home, vaultPath[1:])
	}

	j.dbPath = filepath.Join(vaultPath, ".dailyroll", "journal.db")

	if err := os.MkdirAll(filepath.Dir(j.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	// WAL mode keeps readers from blocking the occasional writer
	db, err := sql.Open("sqlite3", j.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	j.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS merges (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			month TEXT NOT NULL,
			notes_written INTEGER NOT NULL,
			notes_considered INTEGER NOT NULL,
			deleted INTEGER NOT NULL DEFAULT 0,
			merged_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_merges_month ON merges(month);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		schemaVersion,
	); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close releases the database handle
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Record stores one merge outcome and fills in its ID
func (j *Journal) Record(rec *domain.MergeRecord) error {
	if rec.MergedAt.IsZero() {
		rec.MergedAt = time.Now()
	}

	deleted := 0
	if rec.Deleted {
		deleted = 1
	}

	res, err := j.db.Exec(
		`INSERT INTO merges (month, notes_written, notes_considered, deleted, merged_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Month, rec.NotesWritten, rec.NotesConsidered, deleted,
		rec.MergedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record merge: %w", err)
	}

	rec.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read record id: %w", err)
	}
	return nil
}

// History returns past merges, newest first
func (j *Journal) History(month string) ([]domain.MergeRecord, error) {
	query := `SELECT id, month, notes_written, notes_considered, deleted, merged_at
	          FROM merges`
	args := []any{}
	if month != "" {
		query += ` WHERE month = ?`
		args = append(args, month)
	}
	query += ` ORDER BY id DESC`

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []domain.MergeRecord
	for rows.Next() {
		var rec domain.MergeRecord
		var deleted int
		var mergedAt string
		if err := rows.Scan(&rec.ID, &rec.Month, &rec.NotesWritten,
			&rec.NotesConsidered, &deleted, &mergedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.Deleted = deleted != 0
		if t, err := time.Parse(time.RFC3339, mergedAt); err == nil {
			rec.MergedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
