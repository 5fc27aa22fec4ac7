// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"strings"
	"sync"

	"taskflow/internal/service"
)

// FirstID is the id FakeService gives the first task it creates.
const FirstID = 100

// FakeService is a minimal in-memory implementation of service.Service for
// testing. Ids are sequential from FirstID and CreatedAt is fixed.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	nextID int64

	// Calls counts ListTasks invocations.
	Calls int

	// Error injection for testing
	ListTasksErr  error
	GetTaskErr    error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error
	SetStatusErr  error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: FirstID}
}

// AddTask adds a pending task with the given id and title.
func (f *FakeService) AddTask(id int64, title string) {
	f.Put(service.Task{
		ID:       id,
		Title:    title,
		Priority: service.PriorityMedium,
		Status:   service.StatusPending,
	})
}

// Put appends t as is.
func (f *FakeService) Put(t service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, t.Clone())
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.mu.Lock()
	f.Calls++
	f.mu.Unlock()
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	for i, t := range f.tasks {
		result[i] = t.Clone()
	}
	return result, nil
}

// GetTask implements service.Service.
func (f *FakeService) GetTask(ctx context.Context, id int64) (service.Task, error) {
	if f.GetTaskErr != nil {
		return service.Task{}, f.GetTaskErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return service.Task{}, service.ErrNotFound
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, d service.Draft) (service.Task, error) {
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	if strings.TrimSpace(d.Title) == "" {
		return service.Task{}, service.ErrTitleRequired
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	priority := d.Priority
	if priority == "" {
		priority = service.PriorityMedium
	}
	t := service.Task{
		ID:          f.nextID,
		Title:       d.Title,
		Description: d.Description,
		Priority:    priority,
		Status:      service.StatusPending,
		DueDate:     d.DueDate,
		AssignedTo:  d.AssignedTo,
		CreatedAt:   "2025-01-01",
		Tags:        append([]string(nil), d.Tags...),
	}
	f.nextID++
	f.tasks = append(f.tasks, t)
	return t.Clone(), nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id int64, p service.Patch) (service.Task, error) {
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i] = p.Apply(t)
			return f.tasks[i].Clone(), nil
		}
	}
	return service.Task{}, service.ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int64) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return service.ErrNotFound
}

// SetStatus implements service.Service.
func (f *FakeService) SetStatus(ctx context.Context, id int64, status service.Status) error {
	if f.SetStatusErr != nil {
		return f.SetStatusErr
	}
	if !status.Valid() {
		return service.ErrInvalidStatus
	}
	_, err := f.UpdateTask(ctx, id, service.Patch{Status: &status})
	return err
}
