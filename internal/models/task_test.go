package models

import (
	"strings"
	"testing"
	"time"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"single char", "a", false},
		{"normal", "Write report", false},
		{"exactly 200", strings.Repeat("x", 200), false},
		{"multibyte runes count as one", strings.Repeat("ü", 200), false},
		{"empty", "", true},
		{"201 chars", strings.Repeat("x", 201), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.title, err, tt.wantErr)
			}
			if err != nil && !IsValidation(err) {
				t.Errorf("ValidateTitle(%q) returned %T, want *ValidationError", tt.title, err)
			}
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"lower-cases", []string{"Work", "URGENT"}, []string{"urgent", "work"}},
		{"trims", []string{"  home  ", "home"}, []string{"home"}},
		{"dedupes case-insensitively", []string{"Go", "go", "GO"}, []string{"go"}},
		{"drops empties", []string{"", "  ", "a"}, []string{"a"}},
		{"nil input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeTags(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("NormalizeTags(%v)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeTagsAllocatesFresh(t *testing.T) {
	in := []string{"shared"}
	a := NormalizeTags(in)
	b := NormalizeTags(in)
	a[0] = "mutated"
	if b[0] != "shared" {
		t.Error("NormalizeTags results alias each other")
	}
	if in[0] != "shared" {
		t.Error("NormalizeTags mutated its input")
	}
}

func TestHasTag(t *testing.T) {
	task := Task{Tags: NormalizeTags([]string{"Work", "urgent"})}
	tests := []struct {
		tag  string
		want bool
	}{
		{"work", true},
		{"WORK", true},
		{" urgent ", true},
		{"wor", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := task.HasTag(tt.tag); got != tt.want {
			t.Errorf("HasTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := ParsePriority("URGENT"); err != nil {
		t.Errorf("ParsePriority(URGENT) error = %v", err)
	}
	if _, err := ParsePriority("critical"); err == nil {
		t.Error("ParsePriority(critical) expected error")
	}
	if _, err := ParseStatus(" In_Progress "); err != nil {
		t.Errorf("ParseStatus(in_progress) error = %v", err)
	}
	if _, err := ParseStatus("open"); err == nil {
		t.Error("ParseStatus(open) expected error")
	}
}

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusTodo, false},
		{StatusInProgress, false},
		{StatusDone, true},
		{StatusCancelled, true},
	}
	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("Status(%q).Terminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	due := NewDate(2026, time.March, 1)
	done := time.Now()
	original := Task{
		ID:          "t1",
		Title:       "original",
		Tags:        []string{"a", "b"},
		DueDate:     &due,
		CompletedAt: &done,
	}

	clone := original.Clone()
	clone.Tags[0] = "mutated"
	*clone.DueDate = NewDate(2030, time.January, 1)
	*clone.CompletedAt = done.Add(time.Hour)

	if original.Tags[0] != "a" {
		t.Error("Clone shares the tags slice")
	}
	if *original.DueDate != due {
		t.Error("Clone shares the due date pointer")
	}
	if !original.CompletedAt.Equal(done) {
		t.Error("Clone shares the completed_at pointer")
	}
}
