// Package store owns the in-memory task set and its durability. All
// mutations are serialized through one mutex and staged against the
// persistence adapter before they become visible: a failed Save leaves
// the store exactly as it was.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/storage"
)

// Store is the exclusive owner of the id-to-task mapping. Concurrent
// callers are allowed; mutations are not commutative (an Update racing
// a Delete on the same id), so every operation takes the same lock and
// conflicting updates resolve last-writer-wins at that boundary. Reads
// copy under the lock and proceed without it.
type Store struct {
	mu      sync.Mutex
	tasks   map[string]*models.Task
	adapter storage.Adapter

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Tests use it to control
// created_at/updated_at stamping.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides id generation.
func WithIDFunc(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// Open loads the persisted snapshot into a new Store.
//
// A corrupt snapshot is not fatal here: Open returns a usable empty
// store together with the storage.ErrCorruptSnapshot-wrapped error, and
// the caller decides whether to continue. Any other load failure
// returns a nil store.
func Open(adapter storage.Adapter, opts ...Option) (*Store, error) {
	s := &Store{
		tasks:   make(map[string]*models.Task),
		adapter: adapter,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	tasks, err := adapter.Load()
	if err != nil && !errors.Is(err, storage.ErrCorruptSnapshot) {
		return nil, &models.PersistenceError{Op: "load tasks", Err: err}
	}
	for i := range tasks {
		task := tasks[i].Clone()
		s.tasks[task.ID] = &task
	}
	if err != nil {
		return s, &models.PersistenceError{Op: "load tasks", Err: err}
	}
	return s, nil
}

// CreateRequest holds the data needed to create a new task.
type CreateRequest struct {
	Title       string
	Description string
	Priority    models.Priority // empty defaults to medium
	Status      models.Status   // empty defaults to todo
	Category    string
	Tags        []string
	DueDate     *models.Date
}

// Create validates the request, assigns an id and timestamps, persists
// the grown snapshot and returns the new task.
func (s *Store) Create(req CreateRequest) (models.Task, error) {
	if err := models.ValidateTitle(req.Title); err != nil {
		return models.Task{}, err
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.IsValid() {
		return models.Task{}, &models.ValidationError{Field: "priority", Reason: "must be one of: low, medium, high, urgent"}
	}
	status := req.Status
	if status == "" {
		status = models.StatusTodo
	}
	if !status.IsValid() {
		return models.Task{}, &models.ValidationError{Field: "status", Reason: "must be one of: todo, in_progress, done, cancelled"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	task := models.Task{
		ID:          s.newID(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      status,
		Category:    req.Category,
		Tags:        models.NormalizeTags(req.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.DueDate != nil {
		due := *req.DueDate
		task.DueDate = &due
	}
	if status == models.StatusDone {
		done := now
		task.CompletedAt = &done
	}

	if err := s.persist(&task, ""); err != nil {
		return models.Task{}, err
	}
	s.tasks[task.ID] = &task
	return task.Clone(), nil
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, &models.NotFoundError{ID: id}
	}
	return task.Clone(), nil
}

// Update applies a patch to the task with the given id. Only fields the
// patch names change; updated_at advances unconditionally on success.
func (s *Store) Update(id string, patch Patch) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.tasks[id]
	if !ok {
		return models.Task{}, &models.NotFoundError{ID: id}
	}

	next := current.Clone()
	if err := patch.apply(&next, s.now()); err != nil {
		return models.Task{}, err
	}

	if err := s.persist(&next, ""); err != nil {
		return models.Task{}, err
	}
	s.tasks[id] = &next
	return next.Clone(), nil
}

// Complete marks the task done. Idempotent on status: completing a done
// task keeps it done, but every call re-stamps completed_at and
// advances updated_at.
func (s *Store) Complete(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.tasks[id]
	if !ok {
		return models.Task{}, &models.NotFoundError{ID: id}
	}

	next := current.Clone()
	now := s.now()
	next.Status = models.StatusDone
	next.UpdatedAt = now
	done := now
	next.CompletedAt = &done

	if err := s.persist(&next, ""); err != nil {
		return models.Task{}, err
	}
	s.tasks[id] = &next
	return next.Clone(), nil
}

// Delete removes the task if present and reports whether it did. The id
// is never reused; new ids are always freshly generated.
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false, nil
	}
	if err := s.persist(nil, id); err != nil {
		return false, err
	}
	delete(s.tasks, id)
	return true, nil
}

// List returns a snapshot of task copies. Iteration order is
// unspecified; callers needing determinism sort explicitly.
func (s *Store) List() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		out = append(out, task.Clone())
	}
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// persist saves the prospective snapshot: the current map with upsert
// applied (when non-nil) and removeID dropped. Called with the lock
// held, before the in-memory change, so a Save failure leaves the store
// untouched.
func (s *Store) persist(upsert *models.Task, removeID string) error {
	snapshot := make([]models.Task, 0, len(s.tasks)+1)
	for id, task := range s.tasks {
		if id == removeID {
			continue
		}
		if upsert != nil && id == upsert.ID {
			continue
		}
		snapshot = append(snapshot, task.Clone())
	}
	if upsert != nil {
		snapshot = append(snapshot, upsert.Clone())
	}

	if err := s.adapter.Save(snapshot); err != nil {
		return &models.PersistenceError{Op: "save tasks", Err: err}
	}
	return nil
}
