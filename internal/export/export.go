// Package export projects task snapshots into interchange formats. It
// is read-only: nothing here mutates the store, and the persistence
// layer never reads an export back.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/models"
)

// Format selects an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(input string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(input))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", &models.ValidationError{Field: "format", Reason: "must be json or csv"}
}

// csvHeader is the fixed column set, same fields and order as the
// persisted record shape.
var csvHeader = []string{
	"id", "title", "description", "priority", "status", "category",
	"tags", "due_date", "created_at", "updated_at", "completed_at",
}

// JSON writes the snapshot as an array of task records, the same shape
// the persistence layer uses.
func JSON(w io.Writer, tasks []models.Task) error {
	data, err := json.MarshalIndent(models.Records(tasks), "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// CSV writes the snapshot as a header row plus one row per task. Tags
// are flattened with ", "; quoting is encoding/csv's standard RFC 4180
// behavior, so delimiters and quotes inside values stay intact.
func CSV(w io.Writer, tasks []models.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range tasks {
		if err := cw.Write(csvRow(&tasks[i])); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func csvRow(t *models.Task) []string {
	due := ""
	if t.DueDate != nil {
		due = t.DueDate.String()
	}
	completed := ""
	if t.CompletedAt != nil {
		completed = t.CompletedAt.Format(time.RFC3339)
	}
	return []string{
		t.ID,
		t.Title,
		t.Description,
		string(t.Priority),
		string(t.Status),
		t.Category,
		strings.Join(t.Tags, ", "),
		due,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
		completed,
	}
}

// WriteFile exports the snapshot to path in the given format and
// returns the path written.
func WriteFile(format Format, path string, tasks []models.Task) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", &models.PersistenceError{Op: "create export file", Err: err}
	}
	defer f.Close()

	switch format {
	case FormatJSON:
		err = JSON(f, tasks)
	case FormatCSV:
		err = CSV(f, tasks)
	default:
		return "", &models.ValidationError{Field: "format", Reason: "must be json or csv"}
	}
	if err != nil {
		return "", &models.PersistenceError{Op: "write export file", Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &models.PersistenceError{Op: "close export file", Err: err}
	}
	return path, nil
}
