// Package export flattens the workout record map into tabular rows for
// spreadsheet use.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/TheReshkin/workout-tracker/internal/models"
)

var header = []string{
	"date", "status", "type", "exercise", "set",
	"reps", "weight", "duration", "distance", "volume", "notes",
}

// Rows produces one row per set, in date order. Entries with no exercises
// (illness, skipped days) emit a single row carrying the entry's notes or
// reason.
func Rows(data models.WorkoutData) [][]string {
	var rows [][]string
	for _, dateStr := range sortedDates(data) {
		entry := data[dateStr]
		if len(entry.Exercises) == 0 {
			notes := entry.Notes
			if notes == "" {
				notes = entry.Reason
			}
			rows = append(rows, []string{
				dateStr, string(entry.Status), entry.Type,
				"", "", "", "", "", "", "", notes,
			})
			continue
		}
		for _, ex := range entry.Exercises {
			notes := ex.Notes
			if notes == "" {
				notes = entry.Notes
			}
			for i, set := range ex.Sets {
				rows = append(rows, []string{
					dateStr,
					string(entry.Status),
					entry.Type,
					ex.Name,
					strconv.Itoa(i + 1),
					strconv.Itoa(set.Reps),
					formatFloat(set.Weight),
					formatFloat(set.Duration),
					formatFloat(set.Distance),
					formatFloat(set.Volume()),
					notes,
				})
			}
		}
	}
	return rows
}

// WriteCSV writes the header and all rows to w.
func WriteCSV(w io.Writer, data models.WorkoutData) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range Rows(data) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatFloat renders a numeric cell, blank for zero (missing) values.
func formatFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sortedDates(data models.WorkoutData) []string {
	dates := make([]string, 0, len(data))
	for d := range data {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
