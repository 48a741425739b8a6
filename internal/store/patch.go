package store

import (
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/models"
)

// Patch is the closed set of mutable task fields. Nil means "leave
// unchanged". Tags distinguishes nil (unchanged) from an empty non-nil
// slice (clear all tags); ClearDueDate removes the due date since a nil
// DueDate already means unchanged.
type Patch struct {
	Title        *string
	Description  *string
	Priority     *models.Priority
	Status       *models.Status
	Category     *string
	Tags         []string
	DueDate      *models.Date
	ClearDueDate bool
}

// patchFields enumerates the keys ParsePatch accepts. Anything else is
// a validation error, not a silent no-op.
var patchFields = map[string]bool{
	"title":       true,
	"description": true,
	"priority":    true,
	"status":      true,
	"category":    true,
	"tags":        true,
	"due_date":    true,
}

// ParsePatch builds a Patch from loose key/value input (CLI flags, a
// parsed form). Unknown keys are rejected up front so a typo like
// "prority" cannot silently change nothing.
func ParsePatch(fields map[string]string) (Patch, error) {
	var patch Patch
	for key, value := range fields {
		if !patchFields[key] {
			return Patch{}, &models.ValidationError{Field: key, Reason: "unknown field"}
		}
		switch key {
		case "title":
			title := value
			patch.Title = &title
		case "description":
			description := value
			patch.Description = &description
		case "priority":
			priority, err := models.ParsePriority(value)
			if err != nil {
				return Patch{}, err
			}
			patch.Priority = &priority
		case "status":
			status, err := models.ParseStatus(value)
			if err != nil {
				return Patch{}, err
			}
			patch.Status = &status
		case "category":
			category := value
			patch.Category = &category
		case "tags":
			patch.Tags = models.NormalizeTags(strings.Split(value, ","))
		case "due_date":
			if strings.TrimSpace(value) == "" {
				patch.ClearDueDate = true
				continue
			}
			due, err := models.ParseDate(value)
			if err != nil {
				return Patch{}, err
			}
			patch.DueDate = &due
		}
	}
	return patch, nil
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.Status == nil && p.Category == nil && p.Tags == nil &&
		p.DueDate == nil && !p.ClearDueDate
}

// apply validates and writes the patch onto a task clone. Nothing is
// mutated on error. Moving a task into done through a patch stamps
// completed_at like Complete does; moving it back out leaves the
// timestamp in place as completion history.
func (p Patch) apply(task *models.Task, now time.Time) error {
	if p.Title != nil {
		if err := models.ValidateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return &models.ValidationError{Field: "priority", Reason: "must be one of: low, medium, high, urgent"}
	}
	if p.Status != nil && !p.Status.IsValid() {
		return &models.ValidationError{Field: "status", Reason: "must be one of: todo, in_progress, done, cancelled"}
	}

	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Priority != nil {
		task.Priority = *p.Priority
	}
	if p.Status != nil {
		if *p.Status == models.StatusDone && task.Status != models.StatusDone {
			done := now
			task.CompletedAt = &done
		}
		task.Status = *p.Status
	}
	if p.Category != nil {
		task.Category = *p.Category
	}
	if p.Tags != nil {
		task.Tags = models.NormalizeTags(p.Tags)
	}
	if p.DueDate != nil {
		due := *p.DueDate
		task.DueDate = &due
	}
	if p.ClearDueDate {
		task.DueDate = nil
	}
	task.UpdatedAt = now
	return nil
}
