package models

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every valid status, in display order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone, StatusCancelled}

// Priorities lists every valid priority, lowest first.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// IsValid reports whether p is one of the known priority levels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status ends work on a task.
// Overdue checks skip terminal tasks.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// ParsePriority converts user input to a Priority.
func ParsePriority(input string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(input)))
	if !p.IsValid() {
		return "", &ValidationError{Field: "priority", Reason: "must be one of: low, medium, high, urgent"}
	}
	return p, nil
}

// ParseStatus converts user input to a Status.
func ParseStatus(input string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(input)))
	if !s.IsValid() {
		return "", &ValidationError{Field: "status", Reason: "must be one of: todo, in_progress, done, cancelled"}
	}
	return s, nil
}

// MaxTitleLen is the upper bound on title length, in runes.
const MaxTitleLen = 200

// Task is a single unit of work. The store owns every Task instance;
// everything it hands out is a copy.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	DueDate     *Date      `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// ValidateTitle checks the 1-200 rune length requirement.
func ValidateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < 1 {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if n > MaxTitleLen {
		return &ValidationError{Field: "title", Reason: "must be at most 200 characters"}
	}
	return nil
}

// NormalizeTags trims, lower-cases, dedupes and sorts tag names.
// The result is always a freshly allocated slice, never an alias of the
// input and never a shared empty default.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// HasTag reports case-insensitive tag membership. Tags are normalized at
// insertion, so only the needle has to be folded here.
func (t *Task) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() Task {
	out := *t
	out.Tags = append(make([]string, 0, len(t.Tags)), t.Tags...)
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	if t.CompletedAt != nil {
		done := *t.CompletedAt
		out.CompletedAt = &done
	}
	return out
}
