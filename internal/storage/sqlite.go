package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskdeck/taskdeck/internal/models"
)

// taskRow is the database shape of a task. Tags are stored as a JSON
// array in a text column; due dates as plain YYYY-MM-DD strings so the
// column stays a calendar date.
type taskRow struct {
	ID          string `gorm:"primarykey"`
	Title       string `gorm:"not null"`
	Description string
	Priority    string `gorm:"default:medium"`
	Status      string `gorm:"default:todo"`
	Category    string
	Tags        string
	DueDate     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

func (taskRow) TableName() string {
	return "tasks"
}

// SQLite persists snapshots in a SQLite database. Save replaces the
// whole task table inside one transaction, which also gives concurrent
// Loads a consistent view.
type SQLite struct {
	db *gorm.DB
}

// NewSQLite opens (creating if needed) the database at path and runs
// migrations.
func NewSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if err := db.AutoMigrate(&taskRow{}); err != nil {
		return nil, fmt.Errorf("migrate tasks table: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Load reads every task row. A row that no longer decodes as a valid
// task reports the snapshot as corrupt instead of being dropped.
func (s *SQLite) Load() ([]models.Task, error) {
	var rows []taskRow
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	tasks := make([]models.Task, 0, len(rows))
	for i := range rows {
		task, err := rows[i].task()
		if err != nil {
			return []models.Task{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Save replaces the stored snapshot with the given tasks.
func (s *SQLite) Save(tasks []models.Task) error {
	rows := make([]taskRow, 0, len(tasks))
	for i := range tasks {
		row, err := newTaskRow(&tasks[i])
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&taskRow{}).Error; err != nil {
			return fmt.Errorf("clear tasks: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert tasks: %w", err)
		}
		return nil
	})
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newTaskRow(t *models.Task) (taskRow, error) {
	tags, err := json.Marshal(models.NormalizeTags(t.Tags))
	if err != nil {
		return taskRow{}, fmt.Errorf("encode tags for %s: %w", t.ID, err)
	}
	row := taskRow{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Category:    t.Category,
		Tags:        string(tags),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CompletedAt: t.CompletedAt,
	}
	if t.DueDate != nil {
		due := t.DueDate.String()
		row.DueDate = &due
	}
	return row, nil
}

func (r *taskRow) task() (models.Task, error) {
	rec := models.TaskRecord{
		ID:          r.ID,
		Title:       r.Title,
		Priority:    models.Priority(r.Priority),
		Status:      models.Status(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		CompletedAt: r.CompletedAt,
	}
	if r.Description != "" {
		rec.Description = &r.Description
	}
	if r.Category != "" {
		rec.Category = &r.Category
	}
	if r.Tags != "" {
		if err := json.Unmarshal([]byte(r.Tags), &rec.Tags); err != nil {
			return models.Task{}, fmt.Errorf("row %s: bad tags column: %v", r.ID, err)
		}
	}
	if r.DueDate != nil {
		due, err := models.ParseDate(*r.DueDate)
		if err != nil {
			return models.Task{}, fmt.Errorf("row %s: bad due date %q", r.ID, *r.DueDate)
		}
		rec.DueDate = &due
	}
	return rec.Task()
}
