package history

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/doeshing/unitconv/internal/domain"
	"github.com/doeshing/unitconv/internal/pkg/numfmt"
	"github.com/doeshing/unitconv/internal/ports"
)

// FileStore keeps the history log in a text file, one record per line:
//
//	<from>,<to>,<value>,<result>,<unix_seconds>
type FileStore struct {
	path string
}

// NewFileStore creates a text backend at path (default conversion_history.txt).
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = domain.DefaultHistoryFile
	}
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Write truncates the file and writes every entry.
func (f *FileStore) Write(entries []domain.HistoryEntry) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(formatLine(e))
		buf.WriteByte('\n')
	}
	return os.WriteFile(f.path, buf.Bytes(), domain.FilePermissions)
}

// Read loads at most limit entries (best-effort). Malformed lines of any
// length are skipped.
func (f *FileStore) Read(limit int) ([]domain.HistoryEntry, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var entries []domain.HistoryEntry
	reader := bufio.NewReader(file)
	for limit <= 0 || len(entries) < limit {
		line, err := reader.ReadString('\n')
		if entry, ok := parseLine(strings.TrimRight(line, "\n")); ok {
			entries = append(entries, entry)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return entries, err
		}
	}
	return entries, nil
}

func formatLine(e domain.HistoryEntry) string {
	return strings.Join([]string{
		e.From,
		e.To,
		numfmt.Record(e.Value),
		numfmt.Record(e.Result),
		strconv.FormatInt(e.Timestamp.Unix(), 10),
	}, ",")
}

func parseLine(line string) (domain.HistoryEntry, bool) {
	fields := strings.Split(strings.TrimRight(line, "\r"), ",")
	if len(fields) != 5 || fields[0] == "" || fields[1] == "" {
		return domain.HistoryEntry{}, false
	}
	value, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return domain.HistoryEntry{}, false
	}
	result, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return domain.HistoryEntry{}, false
	}
	ts, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return domain.HistoryEntry{}, false
	}
	return domain.HistoryEntry{
		From:      fields[0],
		To:        fields[1],
		Value:     value,
		Result:    result,
		Timestamp: time.Unix(ts, 0),
	}, true
}

var _ ports.HistoryBackend = (*FileStore)(nil)
