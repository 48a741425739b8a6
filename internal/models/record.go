package models

import (
	"fmt"
	"time"
)

// TaskRecord is the wire shape of a task: one record per task in the
// persisted snapshot, and the same shape in JSON exports. Optional
// strings become null rather than "", and due dates carry no time
// component.
type TaskRecord struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	Category    *string    `json:"category"`
	Tags        []string   `json:"tags"`
	DueDate     *Date      `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Record projects a task into its wire shape.
func (t *Task) Record() TaskRecord {
	clone := t.Clone()
	rec := TaskRecord{
		ID:          clone.ID,
		Title:       clone.Title,
		Priority:    clone.Priority,
		Status:      clone.Status,
		Tags:        clone.Tags,
		DueDate:     clone.DueDate,
		CreatedAt:   clone.CreatedAt,
		UpdatedAt:   clone.UpdatedAt,
		CompletedAt: clone.CompletedAt,
	}
	if clone.Description != "" {
		rec.Description = &clone.Description
	}
	if clone.Category != "" {
		rec.Category = &clone.Category
	}
	return rec
}

// Task rebuilds the entity from its wire shape, re-applying tag
// normalization so hand-edited snapshots keep set semantics.
func (r *TaskRecord) Task() (Task, error) {
	if r.ID == "" {
		return Task{}, fmt.Errorf("record missing id")
	}
	if err := ValidateTitle(r.Title); err != nil {
		return Task{}, fmt.Errorf("record %s: %w", r.ID, err)
	}
	if !r.Priority.IsValid() {
		return Task{}, fmt.Errorf("record %s: unknown priority %q", r.ID, r.Priority)
	}
	if !r.Status.IsValid() {
		return Task{}, fmt.Errorf("record %s: unknown status %q", r.ID, r.Status)
	}
	task := Task{
		ID:        r.ID,
		Title:     r.Title,
		Priority:  r.Priority,
		Status:    r.Status,
		Tags:      NormalizeTags(r.Tags),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Description != nil {
		task.Description = *r.Description
	}
	if r.Category != nil {
		task.Category = *r.Category
	}
	if r.DueDate != nil {
		due := *r.DueDate
		task.DueDate = &due
	}
	if r.CompletedAt != nil {
		done := *r.CompletedAt
		task.CompletedAt = &done
	}
	return task, nil
}

// Records projects a snapshot into wire records.
func Records(tasks []Task) []TaskRecord {
	records := make([]TaskRecord, 0, len(tasks))
	for i := range tasks {
		records = append(records, tasks[i].Record())
	}
	return records
}
