package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"tool-scraper/pkg/models"
)

// CSVSink implements engine.Sink by writing a CSV file.
type CSVSink struct {
	Path string
}

func (s CSVSink) Save(batch []models.ToolRecord) error {
	return SaveCSV(batch, s.Path)
}

// JSONSink implements engine.Sink by writing a JSON array.
type JSONSink struct {
	Path string
}

func (s JSONSink) Save(batch []models.ToolRecord) error {
	return SaveJSON(batch, s.Path)
}

// SaveCSV writes a header row and one row per record. An empty batch writes nothing.
func SaveCSV(records []models.ToolRecord, path string) error {
	if len(records) == 0 {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(models.ToolRecord{}.Header()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(r.Row()); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", r.ToolURL, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return file.Close()
}

// SaveJSON writes the records as an indented JSON array, "[]" when empty.
// Non-ASCII and HTML characters are written as-is.
func SaveJSON(records []models.ToolRecord, path string) error {
	if records == nil {
		records = []models.ToolRecord{}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create json file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	return file.Close()
}
