package export

import (
	"fmt"
	"io"
	"strconv"

	"go-gin-attendance-log/internal/model"

	"github.com/gocarina/gocsv"
)

// Row is one CSV line of the event table.
type Row struct {
	Title    string `csv:"Title"`
	Date     string `csv:"Date"`
	Type     string `csv:"Type"`
	Location string `csv:"Location"`
	Notes    string `csv:"Notes"`
	Rating   string `csv:"Rating"`
	Tags     string `csv:"Tags"`
}

func toRow(e *model.EventRecord) *Row {
	return &Row{
		Title:    e.Title,
		Date:     e.Date,
		Type:     e.Type,
		Location: e.Location,
		Notes:    e.Notes,
		Rating:   strconv.FormatFloat(e.Rating, 'f', -1, 64),
		Tags:     e.Tags,
	}
}

// WriteCSV writes the header and one row per record, in the given order.
// Fields holding commas, quotes or newlines are quoted.
func WriteCSV(w io.Writer, events []*model.EventRecord) error {
	rows := make([]*Row, 0, len(events))
	for _, e := range events {
		if e == nil {
			continue
		}
		rows = append(rows, toRow(e))
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("marshal csv: %w", err)
	}
	return nil
}

// Filename is the attachment name offered for a user's export.
func Filename(date string) string {
	return fmt.Sprintf("events-%s.csv", date)
}
