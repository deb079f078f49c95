package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/unitconv/internal/domain"
	"github.com/doeshing/unitconv/internal/ports"
)

// SQLiteStore persists the history log in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = domain.DefaultSQLiteFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		from_unit TEXT NOT NULL,
		to_unit TEXT NOT NULL,
		value REAL NOT NULL,
		result REAL NOT NULL,
		timestamp INTEGER NOT NULL
	);`)
	return err
}

// Write replaces the stored log inside a single transaction.
func (s *SQLiteStore) Write(entries []domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM conversions"); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO conversions
		(from_unit, to_unit, value, result, timestamp)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, e := range entries {
		if _, err := stmt.Exec(e.From, e.To, e.Value, e.Result, e.Timestamp.Unix()); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Read returns at most limit entries in insertion order.
func (s *SQLiteStore) Read(limit int) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	query := "SELECT from_unit, to_unit, value, result, timestamp FROM conversions ORDER BY id"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		var ts int64
		if err := rows.Scan(&e.From, &e.To, &e.Value, &e.Result, &ts); err != nil {
			return nil, err
		}
		e.Timestamp = time.Unix(ts, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ ports.HistoryBackend = (*SQLiteStore)(nil)
