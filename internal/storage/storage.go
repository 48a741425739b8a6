// Package storage persists full task snapshots. Every adapter replaces
// the previous snapshot wholesale on Save; the store decides when.
package storage

import (
	"errors"

	"github.com/taskdeck/taskdeck/internal/models"
)

// ErrCorruptSnapshot marks a snapshot that exists but could not be
// decoded. Load returns it wrapped, together with an empty task list,
// so callers can tell "genuinely empty" from "recovered as empty" and
// decide whether to continue.
var ErrCorruptSnapshot = errors.New("corrupt task snapshot")

// Adapter loads and saves the complete task set.
//
// Load returns an empty slice (not an error) when no snapshot exists
// yet. Save must be atomic with respect to concurrent Loads: a reader
// never observes a partially written snapshot.
type Adapter interface {
	Load() ([]models.Task, error)
	Save(tasks []models.Task) error
}
