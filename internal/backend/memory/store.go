// Package memory implements the service.Service interface with an in-process task list.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"taskflow/internal/service"
)

// Store implements service.Service over an ordered in-memory list.
// Every mutation publishes a new slice and bumps the version, so snapshots
// returned by ListTasks never change underneath their holders.
type Store struct {
	mu      sync.RWMutex
	tasks   []service.Task
	version uint64
	lastID  int64
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for ids and creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithTasks preloads the store. Tasks are copied.
func WithTasks(tasks []service.Task) Option {
	return func(s *Store) {
		for _, t := range tasks {
			s.tasks = append(s.tasks, t.Clone())
			if t.ID > s.lastID {
				s.lastID = t.ID
			}
		}
	}
}

// New creates a Store.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Version implements service.Versioned.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// ListTasks implements service.Service.
func (s *Store) ListTasks(ctx context.Context) ([]service.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]service.Task, len(s.tasks))
	for i, t := range s.tasks {
		result[i] = t.Clone()
	}
	return result, nil
}

// GetTask implements service.Service.
func (s *Store) GetTask(ctx context.Context, id int64) (service.Task, error) {
	if err := ctx.Err(); err != nil {
		return service.Task{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i].Clone(), nil
	}
	return service.Task{}, service.ErrNotFound
}

// CreateTask implements service.Service.
func (s *Store) CreateTask(ctx context.Context, d service.Draft) (service.Task, error) {
	if err := ctx.Err(); err != nil {
		return service.Task{}, err
	}
	if strings.TrimSpace(d.Title) == "" {
		return service.Task{}, service.ErrTitleRequired
	}
	priority := d.Priority
	if priority == "" {
		priority = service.PriorityMedium
	}
	if !priority.Valid() {
		return service.Task{}, fmt.Errorf("%w: %s", service.ErrInvalidPriority, priority)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	task := service.Task{
		ID:          s.nextID(now),
		Title:       d.Title,
		Description: d.Description,
		Priority:    priority,
		Status:      service.StatusPending,
		DueDate:     d.DueDate,
		AssignedTo:  d.AssignedTo,
		CreatedAt:   service.Today(now),
		Tags:        append([]string(nil), d.Tags...),
	}

	next := make([]service.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	s.publish(append(next, task))
	return task.Clone(), nil
}

// UpdateTask implements service.Service.
func (s *Store) UpdateTask(ctx context.Context, id int64, p service.Patch) (service.Task, error) {
	if err := ctx.Err(); err != nil {
		return service.Task{}, err
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return service.Task{}, service.ErrTitleRequired
	}
	if p.Status != nil && !p.Status.Valid() {
		return service.Task{}, service.ErrInvalidStatus
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return service.Task{}, fmt.Errorf("%w: %s", service.ErrInvalidPriority, *p.Priority)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return service.Task{}, service.ErrNotFound
	}

	next := make([]service.Task, len(s.tasks))
	copy(next, s.tasks)
	next[i] = p.Apply(next[i])
	s.publish(next)
	return next[i].Clone(), nil
}

// DeleteTask implements service.Service.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return service.ErrNotFound
	}

	next := make([]service.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:i]...)
	next = append(next, s.tasks[i+1:]...)
	s.publish(next)
	return nil
}

// SetStatus implements service.Service.
func (s *Store) SetStatus(ctx context.Context, id int64, status service.Status) error {
	if !status.Valid() {
		return service.ErrInvalidStatus
	}
	_, err := s.UpdateTask(ctx, id, service.Patch{Status: &status})
	return err
}

// indexOf returns the position of id, or -1. Callers hold the lock.
func (s *Store) indexOf(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// nextID derives an id from the clock in milliseconds, bumped past the
// largest id issued so far. Callers hold the write lock.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// publish replaces the task list. Callers hold the write lock.
func (s *Store) publish(tasks []service.Task) {
	s.tasks = tasks
	s.version++
}
