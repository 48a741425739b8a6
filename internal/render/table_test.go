package render

import (
	"strings"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/internal/analytics"
	"github.com/taskdeck/taskdeck/internal/models"
)

func TestTaskTablePlain(t *testing.T) {
	today := models.NewDate(2026, time.August, 27)
	due := today.AddDays(-2)
	tasks := []models.Task{
		{
			ID:       "0123456789abcdef",
			Title:    "Write report",
			Status:   models.StatusTodo,
			Priority: models.PriorityHigh,
			Category: "work",
			Tags:     []string{"finance"},
			DueDate:  &due,
		},
	}

	out := New(true).TaskTable(tasks, today)

	for _, want := range []string{"ID", "TITLE", "Write report", "todo", "high", "work", "finance", "overdue"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	// Long ids are shortened for display.
	if strings.Contains(out, "0123456789abcdef") {
		t.Error("table shows the full id, want the 8-char prefix")
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("noColor output contains ANSI escapes")
	}
}

func TestTaskTableEmpty(t *testing.T) {
	out := New(true).TaskTable(nil, models.NewDate(2026, time.August, 27))
	if !strings.Contains(out, "No tasks found") {
		t.Errorf("empty table output = %q", out)
	}
}

func TestStatsOutput(t *testing.T) {
	today := models.NewDate(2026, time.August, 27)
	stats := analytics.Compute(nil, today)

	out := New(true).Stats(stats)
	for _, want := range []string{"Total tasks", "todo", "in progress", "done", "cancelled", "overdue", "n/a"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}
