package store

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/internal/analytics"
	"github.com/taskdeck/taskdeck/internal/export"
	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/query"
	"github.com/taskdeck/taskdeck/internal/storage"
)

// Walks one task through the whole engine: create overdue, complete,
// recheck analytics, export, reload from disk.
func TestOverdueTaskLifecycle(t *testing.T) {
	adapter := storage.NewJSONFile(filepath.Join(t.TempDir(), "tasks.json"))
	clock := &testClock{current: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)}
	st, err := Open(adapter, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	today := models.NewDate(2024, time.January, 10)
	due := models.NewDate(2024, time.January, 1)

	task, err := st.Create(CreateRequest{
		Title:    "Write report",
		Priority: models.PriorityHigh,
		DueDate:  &due,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if !query.IsOverdue(&task, today) {
		t.Fatal("freshly created past-due task is not overdue")
	}
	before := analytics.Compute(st.List(), today)
	if before.Overdue != 1 {
		t.Fatalf("stats overdue = %d, want 1", before.Overdue)
	}

	completed, err := st.Complete(task.ID)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if query.IsOverdue(&completed, today) {
		t.Error("completed task still overdue")
	}

	after := analytics.Compute(st.List(), today)
	if got := before.Overdue - after.Overdue; got != 1 {
		t.Errorf("overdue count decreased by %d, want exactly 1", got)
	}

	var buf bytes.Buffer
	if err := export.CSV(&buf, st.List()); err != nil {
		t.Fatalf("CSV export error = %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("export unreadable: %v", err)
	}
	var found bool
	for _, row := range rows[1:] {
		if row[1] == "Write report" && row[4] == "done" {
			found = true
		}
	}
	if !found {
		t.Error("CSV export missing the completed 'Write report' row")
	}

	// The snapshot on disk must rebuild the same store.
	reloaded, err := Open(adapter)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	got, err := reloaded.Get(task.ID)
	if err != nil {
		t.Fatalf("task lost across restart: %v", err)
	}
	if got.Status != models.StatusDone || got.CompletedAt == nil {
		t.Errorf("reloaded task = %+v, want done with completed_at", got)
	}
	if got.DueDate == nil || *got.DueDate != due {
		t.Errorf("reloaded due date = %v, want %v", got.DueDate, due)
	}
}
