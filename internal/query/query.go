// Package query filters and searches task snapshots. Every function is
// pure: it reads a snapshot, returns a new slice and touches no state.
package query

import (
	"strings"

	"github.com/taskdeck/taskdeck/internal/models"
)

// FilterByStatus keeps tasks with exactly the given status.
func FilterByStatus(tasks []models.Task, status models.Status) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for i := range tasks {
		if tasks[i].Status == status {
			out = append(out, tasks[i])
		}
	}
	return out
}

// FilterByPriority keeps tasks with exactly the given priority.
func FilterByPriority(tasks []models.Task, priority models.Priority) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for i := range tasks {
		if tasks[i].Priority == priority {
			out = append(out, tasks[i])
		}
	}
	return out
}

// FilterByCategory keeps tasks whose category matches case-insensitively.
func FilterByCategory(tasks []models.Task, category string) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for i := range tasks {
		if strings.EqualFold(tasks[i].Category, category) {
			out = append(out, tasks[i])
		}
	}
	return out
}

// IsOverdue reports whether the task's due date has passed as of today
// and the task is still open. Done and cancelled tasks are never
// overdue.
func IsOverdue(task *models.Task, today models.Date) bool {
	if task.DueDate == nil {
		return false
	}
	if task.Status.Terminal() {
		return false
	}
	return task.DueDate.Before(today)
}

// Overdue keeps tasks that IsOverdue as of today.
func Overdue(tasks []models.Task, today models.Date) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for i := range tasks {
		if IsOverdue(&tasks[i], today) {
			out = append(out, tasks[i])
		}
	}
	return out
}

// Search matches case-insensitively against title and description
// substrings, or exact tag membership. An empty query matches every
// task with a non-empty title; since titles are required that is the
// whole snapshot, and it is documented behavior rather than an error.
func Search(tasks []models.Task, query string) []models.Task {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Task, 0, len(tasks))
	for i := range tasks {
		if matches(&tasks[i], needle) {
			out = append(out, tasks[i])
		}
	}
	return out
}

func matches(task *models.Task, needle string) bool {
	if needle == "" {
		return task.Title != ""
	}
	if strings.Contains(strings.ToLower(task.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(task.Description), needle) {
		return true
	}
	return task.HasTag(needle)
}

// Filter is a conjunctive set of optional predicates. Nil fields do not
// constrain; a zero Filter matches the whole snapshot. Each single
// predicate behaves exactly like its standalone function.
type Filter struct {
	Status    *models.Status
	Priority  *models.Priority
	Category  *string
	OverdueOn *models.Date
}

// Apply keeps tasks matching every set predicate.
func (f Filter) Apply(tasks []models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for i := range tasks {
		if f.match(&tasks[i]) {
			out = append(out, tasks[i])
		}
	}
	return out
}

func (f Filter) match(task *models.Task) bool {
	if f.Status != nil && task.Status != *f.Status {
		return false
	}
	if f.Priority != nil && task.Priority != *f.Priority {
		return false
	}
	if f.Category != nil && !strings.EqualFold(task.Category, *f.Category) {
		return false
	}
	if f.OverdueOn != nil && !IsOverdue(task, *f.OverdueOn) {
		return false
	}
	return true
}
