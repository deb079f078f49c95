package history

import (
	"encoding/csv"
	"io"
	"os"
	"time"

	"github.com/doeshing/unitconv/internal/domain"
	"github.com/doeshing/unitconv/internal/pkg/numfmt"
)

var csvHeader = []string{"From", "To", "Value", "Result", "Timestamp"}

func writeCSVFile(path string, entries []domain.HistoryEntry, loc *time.Location) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePermissions)
	if err != nil {
		return err
	}
	if err := WriteCSV(file, entries, loc); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteCSV writes entries with a From,To,Value,Result,Timestamp header.
// Timestamps are rendered in loc as YYYY-MM-DD HH:MM:SS.
func WriteCSV(w io.Writer, entries []domain.HistoryEntry, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		if err := csvWriter.Write([]string{
			e.From,
			e.To,
			numfmt.Record(e.Value),
			numfmt.Record(e.Result),
			e.Timestamp.In(loc).Format(domain.TimestampFormat),
		}); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
