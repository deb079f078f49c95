package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/unitconv/assets"
	"github.com/doeshing/unitconv/internal/application/convert"
	"github.com/doeshing/unitconv/internal/infrastructure/history"
	"github.com/doeshing/unitconv/internal/pkg/logger"
)

type menuFixture struct {
	service     *convert.Service
	store       *history.Store
	historyPath string
	csvPath     string
}

func newMenuFixture(t *testing.T) *menuFixture {
	t.Helper()
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.txt")
	store := history.NewStore(history.NewFileStore(historyPath),
		history.WithClock(func() time.Time { return time.Unix(testNow, 0) }),
		history.WithLocation(time.UTC),
	)
	return &menuFixture{
		service: &convert.Service{
			Units:   defaultRegistry(t),
			History: store,
			Logger:  logger.New(io.Discard, "warn"),
		},
		store:       store,
		historyPath: historyPath,
		csvPath:     filepath.Join(dir, "history.csv"),
	}
}

func (f *menuFixture) run(t *testing.T, input string, pause bool) string {
	t.Helper()
	var out bytes.Buffer
	menu := NewMenu(f.service, strings.NewReader(input), &out, MenuSettings{
		MaxAttempts: 3,
		Pause:       pause,
		CSVFile:     f.csvPath,
		Location:    time.UTC,
		Now:         func() time.Time { return time.Unix(testNow, 0) },
	})
	require.NoError(t, menu.Run())
	return out.String()
}

func TestMenuConvertsWithinCategory(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t, "1\n1000\nm\nkm\nq\n", false)

	assert.Contains(t, out, "=== Length ===")
	assert.Contains(t, out, "Result: 1000 m = 1 km\n")
	assert.Contains(t, out, "Goodbye!")
	entries := f.store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "m", entries[0].From)
	assert.Equal(t, "km", entries[0].To)

	raw, err := os.ReadFile(f.historyPath)
	require.NoError(t, err)
	assert.Equal(t, "m,km,1000,1,1700000000\n", string(raw))
}

func TestMenuTemperatureScope(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t, "2\n100\nm\nC\nF\nq\n", false)

	assert.Equal(t, 1, strings.Count(out, "Error: Invalid unit! Please try again."))
	assert.Contains(t, out, "Result: 100 C = 212 F\n")
}

func TestMenuNormalizesTokens(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t, "3\n1\nt b\ngb\nq\n", false)

	assert.Contains(t, out, "Result: 1 TB = 1024 GB\n")
	assert.Equal(t, "TB", f.store.Entries()[0].From)
}

func TestMenuRetriesInvalidNumbers(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t, "1\nabc\n\n1\nkm\nm\nq\n", false)

	assert.Equal(t, 2, strings.Count(out, "Error: Invalid number! Please try again."))
	assert.Contains(t, out, "Result: 1 km = 1000 m\n")
}

func TestMenuRetryBudgetLeavesHistoryUntouched(t *testing.T) {
	tests := map[string]string{
		"value":       "1\nx\ny\nz\nq\n",
		"source unit": "1\n5\nfoo\nbar\nbaz\nq\n",
		"target unit": "1\n5\nkm\nkg\nC\nlb\nq\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			f := newMenuFixture(t)

			out := f.run(t, input, false)

			assert.Contains(t, out, "Error: Too many failed attempts. Returning to menu.")
			assert.Equal(t, 2, strings.Count(out, "Select a category:"))
			assert.Empty(t, f.store.Entries())
			assert.NoFileExists(t, f.historyPath)
		})
	}
}

func TestMenuRejectsInvalidChoices(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t, "\n99\nabc\n0\nQuit\n", false)

	assert.Contains(t, out, "Error: Please enter a choice.")
	assert.Equal(t, 3, strings.Count(out, "Error: Invalid choice! Please enter a number between 1 and 14."))
	assert.Equal(t, 1, strings.Count(out, "Select a category:"))
	assert.Contains(t, out, "Goodbye!")
}

func TestMenuQuitEntry(t *testing.T) {
	f := newMenuFixture(t)
	out := f.run(t, "14\n", false)
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}

func TestMenuEndOfInputQuits(t *testing.T) {
	f := newMenuFixture(t)
	assert.NotContains(t, f.run(t, "", false), "Goodbye!")
	assert.NotContains(t, f.run(t, "1\n5\n", false), "Result:")
}

func TestMenuHelp(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t, "13\n\nq\n", true)

	assert.Contains(t, out, "=== Help ===")
	assert.Contains(t, out, assets.HelpText)
	assert.Contains(t, out, "Press Enter to continue...")
}

func TestMenuHistoryEmpty(t *testing.T) {
	f := newMenuFixture(t)

	out := f.run(t, "12\nq\n", false)

	assert.Contains(t, out, "Error: No conversion history available!")
	assert.NotContains(t, out, "1. Clear history")
}

func TestMenuHistoryExport(t *testing.T) {
	f := newMenuFixture(t)
	_, err := f.store.Append("m", "km", 1000, 1)
	require.NoError(t, err)

	out := f.run(t, "12\n2\nq\n", false)

	assert.Contains(t, out, "=== Conversion History ===")
	assert.Contains(t, out, "2023-11-14 22:13:20 (now)")
	assert.Contains(t, out, "History exported to "+f.csvPath)
	raw, err := os.ReadFile(f.csvPath)
	require.NoError(t, err)
	assert.Equal(t, "From,To,Value,Result,Timestamp\nm,km,1000,1,2023-11-14 22:13:20\n", string(raw))
}

func TestMenuHistoryClear(t *testing.T) {
	f := newMenuFixture(t)
	_, err := f.store.Append("C", "F", 100, 212)
	require.NoError(t, err)

	out := f.run(t, "12\n1\nq\n", false)

	assert.Contains(t, out, "History cleared!")
	assert.Empty(t, f.store.Entries())
	raw, err := os.ReadFile(f.historyPath)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestMenuHistoryClearFailureIsReported(t *testing.T) {
	f := newMenuFixture(t)
	_, err := f.store.Append("C", "F", 100, 212)
	require.NoError(t, err)
	require.NoError(t, os.Remove(f.historyPath))
	require.NoError(t, os.Mkdir(f.historyPath, 0o755))

	out := f.run(t, "12\n1\nq\n", false)

	assert.Contains(t, out, "Error: could not save history")
	assert.Contains(t, out, "History cleared in memory only")
	assert.NotContains(t, out, "History cleared!")
	assert.Empty(t, f.store.Entries())
}

func TestMenuHistoryInvalidOption(t *testing.T) {
	f := newMenuFixture(t)
	_, err := f.store.Append("C", "F", 100, 212)
	require.NoError(t, err)

	out := f.run(t, "12\n9\nq\n", false)

	assert.Contains(t, out, "Error: Invalid choice!")
	assert.Len(t, f.store.Entries(), 1)
}
