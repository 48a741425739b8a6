package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/taskdeck/taskdeck/internal/models"
)

// JSONFile persists the snapshot as a single JSON array-of-records
// document. Saves go through a temporary sibling file and a rename, so
// a concurrent Load sees either the old snapshot or the new one, never
// a torn write.
type JSONFile struct {
	path string
}

// NewJSONFile creates an adapter for the given snapshot path. The
// parent directory is created on first Save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the snapshot file location.
func (f *JSONFile) Path() string {
	return f.path
}

// Load reads the snapshot. A missing file is an empty store. A file
// that exists but fails to decode returns an empty task list and an
// error wrapping ErrCorruptSnapshot; it is the caller's call whether
// that is fatal.
func (f *JSONFile) Load() ([]models.Task, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return []models.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", f.path, err)
	}

	var records []models.TaskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return []models.Task{}, fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, f.path, err)
	}

	tasks := make([]models.Task, 0, len(records))
	for i := range records {
		task, err := records[i].Task()
		if err != nil {
			return []models.Task{}, fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, f.path, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Save writes the full snapshot, replacing the previous one.
func (f *JSONFile) Save(tasks []models.Task) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(models.Records(tasks), "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	data = append(data, '\n')

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace snapshot %s: %w", f.path, err)
	}
	return nil
}
