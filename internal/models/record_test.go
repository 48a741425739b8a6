package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func sampleTask() Task {
	due := NewDate(2026, time.September, 15)
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	return Task{
		ID:          "abc-123",
		Title:       "Write report",
		Description: "quarterly numbers",
		Priority:    PriorityHigh,
		Status:      StatusTodo,
		Category:    "work",
		Tags:        []string{"finance", "q3"},
		DueDate:     &due,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestRecordRoundTrip(t *testing.T) {
	original := sampleTask()

	back, err := func() (Task, error) {
		rec := original.Record()
		return rec.Task()
	}()
	if err != nil {
		t.Fatalf("Task() error = %v", err)
	}

	if back.ID != original.ID || back.Title != original.Title ||
		back.Description != original.Description || back.Category != original.Category ||
		back.Priority != original.Priority || back.Status != original.Status {
		t.Errorf("round trip changed fields: got %+v, want %+v", back, original)
	}
	if back.DueDate == nil || *back.DueDate != *original.DueDate {
		t.Errorf("round trip due date = %v, want %v", back.DueDate, original.DueDate)
	}
	if len(back.Tags) != 2 || back.Tags[0] != "finance" || back.Tags[1] != "q3" {
		t.Errorf("round trip tags = %v", back.Tags)
	}
}

func TestRecordOptionalFieldsAreNull(t *testing.T) {
	task := sampleTask()
	task.Description = ""
	task.Category = ""
	task.DueDate = nil

	data, err := json.Marshal(task.Record())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"description":null`, `"category":null`, `"due_date":null`, `"completed_at":null`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("record JSON missing %s: %s", want, data)
		}
	}
}

func TestRecordDueDateIsCalendarDate(t *testing.T) {
	task := sampleTask()
	data, err := json.Marshal(task.Record())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"due_date":"2026-09-15"`) {
		t.Errorf("due date not encoded as YYYY-MM-DD: %s", data)
	}
}

func TestRecordRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TaskRecord)
	}{
		{"missing id", func(r *TaskRecord) { r.ID = "" }},
		{"empty title", func(r *TaskRecord) { r.Title = "" }},
		{"bad priority", func(r *TaskRecord) { r.Priority = "critical" }},
		{"bad status", func(r *TaskRecord) { r.Status = "open" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := sampleTask()
			rec := task.Record()
			tt.mutate(&rec)
			if _, err := rec.Task(); err == nil {
				t.Error("Task() expected error, got nil")
			}
		})
	}
}

func TestRecordRenormalizesTags(t *testing.T) {
	task := sampleTask()
	rec := task.Record()
	rec.Tags = []string{"B", "a", "b"}
	task, err := rec.Task()
	if err != nil {
		t.Fatalf("Task() error = %v", err)
	}
	if len(task.Tags) != 2 || task.Tags[0] != "a" || task.Tags[1] != "b" {
		t.Errorf("tags not renormalized on decode: %v", task.Tags)
	}
}

func TestDateJSON(t *testing.T) {
	due := NewDate(2026, time.January, 2)
	data, err := json.Marshal(due)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2026-01-02"` {
		t.Errorf("Date JSON = %s, want \"2026-01-02\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != due {
		t.Errorf("round trip = %v, want %v", back, due)
	}
}

func TestDateComparisons(t *testing.T) {
	early := NewDate(2026, time.January, 1)
	late := NewDate(2026, time.January, 8)

	if !early.Before(late) || late.Before(early) {
		t.Error("Before comparison wrong")
	}
	if !late.After(early) {
		t.Error("After comparison wrong")
	}
	if got := early.AddDays(7); got != late {
		t.Errorf("AddDays(7) = %v, want %v", got, late)
	}
	if got := early.DaysUntil(late); got != 7 {
		t.Errorf("DaysUntil = %d, want 7", got)
	}
	if got := late.DaysUntil(early); got != -7 {
		t.Errorf("DaysUntil reversed = %d, want -7", got)
	}
}
