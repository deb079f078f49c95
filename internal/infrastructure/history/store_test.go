package history

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/unitconv/internal/domain"
)

// stepClock returns a clock that advances one second per call.
func stepClock(start int64) func() time.Time {
	next := start
	return func() time.Time {
		t := time.Unix(next, 500_000_000)
		next++
		return t
	}
}

func newTextStore(t *testing.T, opts ...Option) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conversion_history.txt")
	opts = append([]Option{WithClock(stepClock(1700000000))}, opts...)
	return NewStore(NewFileStore(path), opts...), path
}

func TestStoreAppendBound(t *testing.T) {
	for _, n := range []int{0, 1, 99, 100, 101, 250} {
		store, _ := newTextStore(t)
		for i := 1; i <= n; i++ {
			if _, err := store.Append("m", "km", float64(i), float64(i)/1000); err != nil {
				t.Fatalf("Append(%d) error: %v", i, err)
			}
		}

		want := min(n, domain.DefaultMaxHistory)
		entries := store.Entries()
		if len(entries) != want {
			t.Fatalf("after %d appends len = %d, want %d", n, len(entries), want)
		}
		if n > domain.DefaultMaxHistory {
			if got, first := entries[0].Value, float64(n-99); got != first {
				t.Errorf("after %d appends first value = %v, want %v", n, got, first)
			}
		}
		if n > 0 && entries[len(entries)-1].Value != float64(n) {
			t.Errorf("last value = %v, want %v", entries[len(entries)-1].Value, n)
		}
	}
}

func TestStoreEvictsStepOne(t *testing.T) {
	store, path := newTextStore(t)
	for i := 1; i <= 101; i++ {
		if _, err := store.Append("B", "KB", float64(i), float64(i)/1024); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}
	entries := store.Entries()
	if len(entries) != 100 || entries[0].Value != 2 {
		t.Fatalf("unexpected head after eviction: len=%d first=%v", len(entries), entries[0].Value)
	}
	for _, e := range entries {
		if e.Value == 1 {
			t.Fatal("entry from step 1 should have been evicted")
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 100 || !strings.HasPrefix(lines[0], "B,KB,2,") {
		t.Fatalf("file not rewritten after eviction: %d lines, first %q", len(lines), lines[0])
	}
}

func TestStoreCustomBound(t *testing.T) {
	store, _ := newTextStore(t, WithMaxEntries(3))
	for i := 1; i <= 5; i++ {
		store.Append("s", "min", float64(i), float64(i)/60)
	}
	got := store.Entries()
	if len(got) != 3 || got[0].Value != 3 || got[2].Value != 5 {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestStoreTimestampsTruncatedToSeconds(t *testing.T) {
	store, _ := newTextStore(t)
	entry, err := store.Append("C", "F", 100, 212)
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if entry.Timestamp.Nanosecond() != 0 || entry.Timestamp.Unix() != 1700000000 {
		t.Fatalf("timestamp not truncated: %v", entry.Timestamp)
	}
}

func TestStorePersistRoundTrip(t *testing.T) {
	store, path := newTextStore(t)
	inputs := []struct {
		from, to      string
		value, result float64
	}{
		{"m", "km", 1000, 1},
		{"C", "F", 100, 212},
		{"KG", "LB", 1, 2.2046226},
		{"ly", "m", 1, 9.461e15},
		{"K", "C", -0.5, -273.65},
	}
	for _, in := range inputs {
		if _, err := store.Append(in.from, in.to, in.value, in.result); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}

	reloaded := NewStore(NewFileStore(path))
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff(store.Entries(), reloaded.Entries()); diff != "" {
		t.Errorf("reloaded log mismatch (-want +got):\n%s", diff)
	}
}

func TestStorePersistRoundTripKeepsEightDigits(t *testing.T) {
	store, path := newTextStore(t)
	if _, err := store.Append("KG", "LB", 1, 2.2046226218487757); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	reloaded := NewStore(NewFileStore(path))
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	got := reloaded.Entries()
	if len(got) != 1 {
		t.Fatalf("reloaded %d entries, want 1", len(got))
	}
	if got[0].Result != 2.2046226 {
		t.Errorf("reloaded result = %v, want 2.2046226", got[0].Result)
	}
	if store.Entries()[0].Result != 2.2046226218487757 {
		t.Errorf("in-memory result changed: %v", store.Entries()[0].Result)
	}
}

func TestFileStoreFormat(t *testing.T) {
	store, path := newTextStore(t)
	store.Append("mi", "KM", 1, 1.609344)
	store.Append("B", "KB", 1024, 1)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "mi,KM,1,1.609344,1700000000\nB,KB,1024,1,1700000001\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
}

func TestFileStoreLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.txt")
	content := strings.Join([]string{
		"m,km,1000,1,1700000000",
		"garbage",
		"m,km,abc,1,1700000000",
		"m,km,1,2,3,4",
		",km,1,1,1700000000",
		"m,km,1,1,notatime",
		"",
		"C,F,100,212,1700000100",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := NewStore(NewFileStore(path))
	if err := store.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := []domain.HistoryEntry{
		{From: "m", To: "km", Value: 1000, Result: 1, Timestamp: time.Unix(1700000000, 0)},
		{From: "C", To: "F", Value: 100, Result: 212, Timestamp: time.Unix(1700000100, 0)},
	}
	if diff := cmp.Diff(want, store.Entries()); diff != "" {
		t.Errorf("loaded entries mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStoreLoadSkipsOverlongLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.txt")
	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteString("m,km,1000,1,1700000000\n")
	}
	b.WriteString(strings.Repeat("x", 70_000) + "\n")
	b.WriteString("C,F,100,212,1700000100\n")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := NewStore(NewFileStore(path), WithClock(stepClock(1700000200)))
	if err := store.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if store.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", store.Len())
	}
	if _, err := store.Append("C", "F", 100, 212); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if lines := strings.Count(string(data), "\n"); lines != 7 {
		t.Errorf("file has %d lines after append, want 7", lines)
	}
}

type partialBackend struct {
	entries []domain.HistoryEntry
	err     error
}

func (p partialBackend) Read(int) ([]domain.HistoryEntry, error) { return p.entries, p.err }
func (p partialBackend) Write([]domain.HistoryEntry) error       { return nil }
func (p partialBackend) Path() string                            { return "partial" }

func TestStoreLoadKeepsEntriesReadBeforeError(t *testing.T) {
	read := []domain.HistoryEntry{
		{From: "m", To: "km", Value: 1000, Result: 1, Timestamp: time.Unix(1700000000, 0)},
	}
	store := NewStore(partialBackend{entries: read, err: errors.New("disk hiccup")})

	err := store.Load()
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if diff := cmp.Diff(read, store.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStoreLoadStopsAtBound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.txt")
	var b strings.Builder
	for i := 0; i < 150; i++ {
		b.WriteString("s,min,60,1,1700000000\n")
	}
	os.WriteFile(path, []byte(b.String()), 0o644)

	store := NewStore(NewFileStore(path))
	if err := store.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if store.Len() != domain.DefaultMaxHistory {
		t.Fatalf("Len() = %d, want %d", store.Len(), domain.DefaultMaxHistory)
	}
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := NewStore(NewFileStore(filepath.Join(t.TempDir(), "absent.txt")))
	if err := store.Load(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty log, got %d", store.Len())
	}
}

func TestStorePersistFailureKeepsMemory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewStore(NewFileStore(filepath.Join(blocker, "h.txt")))

	entry, err := store.Append("m", "km", 1, 0.001)
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if entry.From != "m" || store.Len() != 1 {
		t.Fatalf("in-memory log not authoritative: entry=%+v len=%d", entry, store.Len())
	}
}

func TestStoreClear(t *testing.T) {
	store, path := newTextStore(t)
	store.Append("m", "km", 1, 0.001)
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("Len() = %d after clear", store.Len())
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("history file not truncated, size %d", info.Size())
	}
}

func TestStoreEntriesIsCopy(t *testing.T) {
	store, _ := newTextStore(t)
	store.Append("m", "km", 1, 0.001)
	entries := store.Entries()
	entries[0].From = "mutated"
	if store.Entries()[0].From != "m" {
		t.Fatal("Entries() exposed internal state")
	}
}
