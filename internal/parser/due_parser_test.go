package parser

import (
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/internal/models"
)

var today = models.NewDate(2026, time.August, 27)

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantNil bool
		wantErr bool
	}{
		{"iso", "2026-09-15", "2026-09-15", false, false},
		{"day month year", "15/09/2026", "2026-09-15", false, false},
		{"today", "today", "2026-08-27", false, false},
		{"tomorrow", "tomorrow", "2026-08-28", false, false},
		{"relative days", "3 days", "2026-08-30", false, false},
		{"relative days no space", "3days", "2026-08-30", false, false},
		{"relative weeks", "2 weeks", "2026-09-10", false, false},
		{"single day", "1 day", "2026-08-28", false, false},
		{"empty is no due date", "", "", true, false},
		{"impossible date", "31/02/2026", "", false, true},
		{"garbage", "next thursday-ish", "", false, true},
		{"zero days", "0 days", "", false, true},
		{"hours not supported", "5 hours", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDueDate(tt.input, today)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDueDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !models.IsValidation(err) {
					t.Errorf("ParseDueDate(%q) error type = %T, want ValidationError", tt.input, err)
				}
				return
			}
			if tt.wantNil {
				if got != nil {
					t.Errorf("ParseDueDate(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if got == nil || got.String() != tt.want {
				t.Errorf("ParseDueDate(%q) = %v, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDueDate(t *testing.T) {
	past := today.AddDays(-2)
	soon := today.AddDays(3)
	far := today.AddDays(30)
	tomorrow := today.AddDays(1)

	tests := []struct {
		name string
		due  *models.Date
		want string
	}{
		{"nil", nil, ""},
		{"overdue", &past, "overdue (2026-08-25)"},
		{"today", &today, "today"},
		{"tomorrow", &tomorrow, "tomorrow"},
		{"within week", &soon, "in 3 days"},
		{"far", &far, "2026-09-26"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDueDate(tt.due, today); got != tt.want {
				t.Errorf("FormatDueDate() = %q, want %q", got, tt.want)
			}
		})
	}
}
