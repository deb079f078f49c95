// Package history keeps the bounded, persisted log of past conversions.
//
// Store owns the in-memory log and enforces the FIFO bound; a ports.HistoryBackend
// (text file or SQLite) receives the whole log after every mutation. The
// in-memory log stays authoritative when the backend fails.
package history

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/doeshing/unitconv/internal/domain"
	"github.com/doeshing/unitconv/internal/ports"
)

// Store is the bounded conversion log.
type Store struct {
	mu       sync.Mutex
	backend  ports.HistoryBackend
	entries  []domain.HistoryEntry
	max      int
	now      func() time.Time
	location *time.Location
}

// Option configures a Store.
type Option func(*Store)

// WithMaxEntries overrides the log bound.
func WithMaxEntries(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.max = n
		}
	}
}

// WithClock replaces the wall clock used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the time zone used by the CSV export.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewStore creates an empty log persisted through backend.
func NewStore(backend ports.HistoryBackend, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		max:      domain.DefaultMaxHistory,
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory log with what the backend holds, keeping at
// most the configured bound. A missing file is not an error, and entries
// read before a backend error stay loaded.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.backend.Read(s.max)
	// Keep whatever was read before a backend error.
	s.entries = entries
	if err != nil {
		return fmt.Errorf("%w: load %s: %v", domain.ErrPersistence, s.backend.Path(), err)
	}
	return nil
}

// Append stamps and adds an entry, evicting the oldest one when the log is
// full, then persists. The returned entry is valid even when persisting fails.
func (s *Store) Append(from, to string, value, result float64) (domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.HistoryEntry{
		From:      from,
		To:        to,
		Value:     value,
		Result:    result,
		Timestamp: time.Unix(s.now().Unix(), 0),
	}
	if len(s.entries) >= s.max {
		s.entries = slices.Delete(s.entries, 0, len(s.entries)-s.max+1)
	}
	s.entries = append(s.entries, entry)
	return entry, s.persist()
}

// Clear empties the log and persists the empty state.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return s.persist()
}

// Entries returns a copy of the log, oldest first.
func (s *Store) Entries() []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries)
}

// Len returns the number of entries in the log.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// ExportCSV writes the log to path as CSV.
func (s *Store) ExportCSV(path string) error {
	entries := s.Entries()
	if err := writeCSVFile(path, entries, s.location); err != nil {
		return fmt.Errorf("%w: export %s: %v", domain.ErrPersistence, path, err)
	}
	return nil
}

// Path returns the backend location.
func (s *Store) Path() string {
	return s.backend.Path()
}

// Close releases the backend if it holds resources.
func (s *Store) Close() error {
	if c, ok := s.backend.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func (s *Store) persist() error {
	if err := s.backend.Write(s.entries); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

var _ ports.HistoryRepository = (*Store)(nil)
