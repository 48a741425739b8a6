// Package render draws tasks and stats as terminal tables with lipgloss
// styling. Output only; it never touches the store.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/analytics"
	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/parser"
)

// Renderer formats tasks for terminal output.
type Renderer struct {
	noColor bool

	header    lipgloss.Style
	muted     lipgloss.Style
	statusFor map[models.Status]lipgloss.Style
	prioFor   map[models.Priority]lipgloss.Style
	overdue   lipgloss.Style
}

// New builds a Renderer. With noColor set every style is a no-op.
func New(noColor bool) *Renderer {
	r := &Renderer{noColor: noColor}
	if noColor {
		return r
	}
	r.header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentMain))
	r.muted = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	r.overdue = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	r.statusFor = map[models.Status]lipgloss.Style{
		models.StatusTodo:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)),
		models.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorInfo)),
		models.StatusDone:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)),
		models.StatusCancelled:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)),
	}
	r.prioFor = map[models.Priority]lipgloss.Style{
		models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)),
		models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)),
		models.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)),
		models.PriorityUrgent: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Bold(true),
	}
	return r
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if r.noColor {
		return s
	}
	return style.Render(s)
}

// truncate shortens a cell value to width runes with a "..." tail.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// TaskTable renders tasks as a fixed-width table. IDs are shortened to
// their first 8 characters; `taskdeck <cmd> <id>` accepts the prefix.
func (r *Renderer) TaskTable(tasks []models.Task, today models.Date) string {
	if len(tasks) == 0 {
		return "No tasks found. Use 'taskdeck add \"task title\"' to create one.\n"
	}

	var b strings.Builder
	header := fmt.Sprintf("%-10s %-40s %-12s %-8s %-12s %-20s %s",
		"ID", "TITLE", "STATUS", "PRIORITY", "CATEGORY", "TAGS", "DUE")
	b.WriteString(r.paint(r.header, header))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 110))
	b.WriteString("\n")

	for i := range tasks {
		task := &tasks[i]

		// Pad before styling: ANSI escapes would otherwise count
		// against the column width.
		due := parser.FormatDueDate(task.DueDate, today)
		dueCell := due
		if strings.HasPrefix(due, "overdue") {
			dueCell = r.paint(r.overdue, due)
		}
		statusCell := r.paint(r.statusFor[task.Status], fmt.Sprintf("%-12s", task.Status))
		prioCell := r.paint(r.prioFor[task.Priority], fmt.Sprintf("%-8s", task.Priority))

		fmt.Fprintf(&b, "%-10s %-40s %s %s %-12s %-20s %s\n",
			truncate(task.ID, 8),
			truncate(task.Title, 38),
			statusCell,
			prioCell,
			truncate(task.Category, 10),
			truncate(strings.Join(task.Tags, ","), 18),
			dueCell)
	}
	return b.String()
}

// Stats renders the analytics record.
func (r *Renderer) Stats(stats analytics.Stats) string {
	var b strings.Builder
	b.WriteString(r.paint(r.header, "Task statistics"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %-22s %d\n", "Total tasks", stats.Total)
	for _, status := range models.Statuses {
		label := strings.ReplaceAll(string(status), "_", " ")
		fmt.Fprintf(&b, "  %-22s %d\n", label, stats.ByStatus[status])
	}
	fmt.Fprintf(&b, "  %-22s %d\n", "high priority", stats.High)
	fmt.Fprintf(&b, "  %-22s %d\n", "urgent priority", stats.Urgent)
	fmt.Fprintf(&b, "  %-22s %d\n", "overdue", stats.Overdue)
	fmt.Fprintf(&b, "  %-22s %d\n", "due within 7 days", stats.DueSoon)
	fmt.Fprintf(&b, "  %-22s %d\n", "categories", stats.Categories)

	if stats.AvgCompletionDays != nil {
		fmt.Fprintf(&b, "  %-22s %.1f days\n", "avg completion", *stats.AvgCompletionDays)
	} else {
		fmt.Fprintf(&b, "  %-22s %s\n", "avg completion", r.paint(r.muted, "n/a"))
	}
	return b.String()
}
