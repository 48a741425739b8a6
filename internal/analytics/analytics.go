// Package analytics derives aggregate metrics from a task snapshot. It
// holds no state and never mutates its input.
package analytics

import (
	"math"
	"strings"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/query"
)

// DueSoonWindow is the inclusive look-ahead for the due-soon count, in
// days from today.
const DueSoonWindow = 7

// Stats is the derived-metrics record for one snapshot.
type Stats struct {
	Total      int                   `json:"total"`
	ByStatus   map[models.Status]int `json:"by_status"`
	High       int                   `json:"high_priority"`
	Urgent     int                   `json:"urgent_priority"`
	Overdue    int                   `json:"overdue"`
	DueSoon    int                   `json:"due_soon"`
	Categories int                   `json:"categories"`

	// AvgCompletionDays is the mean calendar-day latency from creation
	// to completion over done tasks, one decimal. Nil when no task is
	// done: the metric is absent, not zero.
	AvgCompletionDays *float64 `json:"avg_completion_days"`
}

// Compute derives all metrics for the snapshot as of today.
func Compute(tasks []models.Task, today models.Date) Stats {
	stats := Stats{
		Total:    len(tasks),
		ByStatus: make(map[models.Status]int, len(models.Statuses)),
	}
	for _, status := range models.Statuses {
		stats.ByStatus[status] = 0
	}

	horizon := today.AddDays(DueSoonWindow)
	categories := make(map[string]bool)
	var doneCount int
	var latencyDays int

	for i := range tasks {
		task := &tasks[i]
		stats.ByStatus[task.Status]++

		switch task.Priority {
		case models.PriorityHigh:
			stats.High++
		case models.PriorityUrgent:
			stats.Urgent++
		}

		if query.IsOverdue(task, today) {
			stats.Overdue++
		}
		// Due-soon counts any status: a done task due this week still
		// shows up, matching the inclusive [today, today+7] window.
		if task.DueDate != nil && !task.DueDate.Before(today) && !task.DueDate.After(horizon) {
			stats.DueSoon++
		}

		if task.Category != "" {
			categories[strings.ToLower(task.Category)] = true
		}

		if task.Status == models.StatusDone && task.CompletedAt != nil {
			doneCount++
			latencyDays += models.DateOf(task.CreatedAt).DaysUntil(models.DateOf(*task.CompletedAt))
		}
	}

	stats.Categories = len(categories)
	if doneCount > 0 {
		avg := math.Round(float64(latencyDays)/float64(doneCount)*10) / 10
		stats.AvgCompletionDays = &avg
	}
	return stats
}
