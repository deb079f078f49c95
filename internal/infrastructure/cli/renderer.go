package cli

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/unitconv/assets"
	"github.com/doeshing/unitconv/internal/domain"
	"github.com/doeshing/unitconv/internal/pkg/numfmt"
)

const (
	appTitle      = "Unit Converter"
	tableRule     = "----------------------------------------------------------------"
	msgNoHistory  = "No conversion history available!"
	msgNoUnitInfo = "Unit not found"
)

// menuEntries are the sentinel entries listed after the categories.
var menuEntries = []string{"History", "Help", "Quit"}

// RenderHeader prints a screen title.
func RenderHeader(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n\n", title)
}

// RenderMainMenu prints the numbered categories followed by the sentinel entries.
func RenderMainMenu(w io.Writer, categories []domain.Category) {
	RenderHeader(w, appTitle)
	fmt.Fprint(w, "Select a category:\n\n")
	for i, cat := range categories {
		fmt.Fprintf(w, "%2d. %s\n", i+1, cat)
	}
	fmt.Fprintln(w)
	for i, entry := range menuEntries {
		fmt.Fprintf(w, "%2d. %s\n", len(categories)+i+1, entry)
	}
	fmt.Fprintln(w)
}

// RenderUnitTable lists units with their symbol and description.
func RenderUnitTable(w io.Writer, units iter.Seq[domain.Unit]) {
	fmt.Fprint(w, "Available units:\n\n")
	fmt.Fprintf(w, "%-15s %-10s %s\n", "Unit", "Symbol", "Description")
	fmt.Fprintln(w, tableRule)
	for u := range units {
		fmt.Fprintf(w, "%-15s %-10s %s\n", u.Name, u.Symbol, u.Description)
	}
	fmt.Fprintln(w)
}

// RenderHistory prints the history table, oldest first, with local
// timestamps and their age relative to now.
func RenderHistory(w io.Writer, entries []domain.HistoryEntry, loc *time.Location, now time.Time) {
	fmt.Fprintf(w, "%-5s %-15s %-15s %-15s %-15s %s\n", "No.", "From", "To", "Value", "Result", "Time")
	fmt.Fprintln(w, tableRule)
	for i, e := range entries {
		fmt.Fprintf(w, "%-5d %-15s %-15s %-15s %-15s %s (%s)\n",
			i+1,
			e.From,
			e.To,
			numfmt.Display(e.Value),
			numfmt.Display(e.Result),
			e.Timestamp.In(loc).Format(domain.TimestampFormat),
			humanize.RelTime(e.Timestamp, now, "ago", "from now"))
	}
}

// RenderUnitInfo prints a unit descriptor.
func RenderUnitInfo(w io.Writer, u domain.Unit) {
	fmt.Fprintln(w, "Unit Information:")
	fmt.Fprintf(w, "Name: %s\n", u.Name)
	fmt.Fprintf(w, "Symbol: %s\n", u.Symbol)
	fmt.Fprintf(w, "Category: %s\n", u.Category)
	fmt.Fprintf(w, "Description: %s\n", u.Description)
	if len(u.Aliases) > 0 {
		fmt.Fprintf(w, "Aliases: %s\n", strings.Join(u.Aliases, ", "))
	}
}

// RenderHelp prints the help screen.
func RenderHelp(w io.Writer) {
	RenderHeader(w, "Help")
	fmt.Fprint(w, assets.HelpText)
}

// RenderConversion prints "<value> <from> = <result> <to>".
func RenderConversion(w io.Writer, entry domain.HistoryEntry, format func(float64) string) {
	fmt.Fprintf(w, "%s %s = %s %s\n", format(entry.Value), entry.From, format(entry.Result), entry.To)
}

// RenderWarnings prints conversion warnings one per line.
func RenderWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintln(w, warning)
	}
}
