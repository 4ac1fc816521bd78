package services

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/KanannSharmaa25/ai-life-analytics/models"
)

// ExportedEntry mirrors the dump format: no id, fixed field set.
type ExportedEntry struct {
	Date         string  `json:"date"`
	SleepHours   float64 `json:"sleep_hours"`
	Mood         int     `json:"mood"`
	Productivity int     `json:"productivity"`
}

// EntriesCSV renders entries as CSV in query order with the fixed column
// ordering Date, Sleep Hours, Mood, Productivity.
func EntriesCSV(entries []models.Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "Sleep Hours", "Mood", "Productivity"}); err != nil {
		return nil, err
	}

	for _, e := range entries {
		record := []string{
			e.Date.Format(dateLayout),
			strconv.FormatFloat(e.SleepHours, 'g', -1, 64),
			strconv.Itoa(e.Mood),
			strconv.Itoa(e.Productivity),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ToExportedEntries(entries []models.Entry) []ExportedEntry {
	out := make([]ExportedEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, ExportedEntry{
			Date:         e.Date.Format(dateLayout),
			SleepHours:   e.SleepHours,
			Mood:         e.Mood,
			Productivity: e.Productivity,
		})
	}
	return out
}
