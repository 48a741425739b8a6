package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/models"
)

var (
	dmyRegex      = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	relativeRegex = regexp.MustCompile(`^(\d+)\s*(day|days|week|weeks)$`)
)

// ParseDueDate parses the due date formats the CLI accepts, relative to
// today:
//   - YYYY-MM-DD (e.g. "2026-09-15")
//   - dd/mm/yyyy (e.g. "15/09/2026")
//   - relative: "3 days", "2 weeks", "3days"
//   - "today", "tomorrow"
//
// Due dates are calendar dates; no time component survives parsing.
func ParseDueDate(input string, today models.Date) (*models.Date, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil, nil
	}

	switch input {
	case "today":
		due := today
		return &due, nil
	case "tomorrow":
		due := today.AddDays(1)
		return &due, nil
	}

	if due, err := models.ParseDate(input); err == nil {
		return &due, nil
	}
	if due, ok := parseDayMonthYear(input); ok {
		return &due, nil
	}
	if due, err := parseRelative(input, today); err == nil {
		return due, nil
	}

	return nil, &models.ValidationError{
		Field:  "due_date",
		Reason: "use YYYY-MM-DD, dd/mm/yyyy, 'N days', 'N weeks', 'today' or 'tomorrow'",
	}
}

// parseDayMonthYear parses dd/mm/yyyy.
func parseDayMonthYear(input string) (models.Date, bool) {
	matches := dmyRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return models.Date{}, false
	}
	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return models.Date{}, false
	}

	date := models.NewDate(year, time.Month(month), day)
	// Round-trip through time.Date catches impossible dates like 31/02.
	if normalized := models.DateOf(date.Time()); normalized != date {
		return models.Date{}, false
	}
	return date, true
}

// parseRelative parses "N days" / "N weeks" offsets from today.
func parseRelative(input string, today models.Date) (*models.Date, error) {
	matches := relativeRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return nil, fmt.Errorf("not a relative offset")
	}
	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount < 1 || amount > 365 {
		return nil, fmt.Errorf("offset out of range")
	}

	switch matches[2] {
	case "day", "days":
		due := today.AddDays(amount)
		return &due, nil
	default: // week, weeks
		if amount > 52 {
			return nil, fmt.Errorf("offset out of range")
		}
		due := today.AddDays(amount * 7)
		return &due, nil
	}
}

// FormatDueDate renders a due date for table output, with urgency
// phrasing relative to today.
func FormatDueDate(due *models.Date, today models.Date) string {
	if due == nil {
		return ""
	}
	days := today.DaysUntil(*due)
	switch {
	case days < 0:
		return fmt.Sprintf("overdue (%s)", due)
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days <= 7:
		return fmt.Sprintf("in %d days", days)
	default:
		return due.String()
	}
}
