// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no task has the requested id.
	ErrNotFound = errors.New("task not found")

	// ErrTitleRequired is returned when a task would be created or edited
	// with an empty title.
	ErrTitleRequired = errors.New("title required")

	// ErrInvalidStatus is returned for a status outside the known set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned for a priority outside the known set.
	ErrInvalidPriority = errors.New("invalid priority")
)

// Service defines the interface for task store operations.
// Commands, the shell and the TUI only talk to the store through it.
type Service interface {
	// ListTasks returns all tasks in store order.
	// The returned slice is a snapshot; later mutations do not affect it.
	ListTasks(ctx context.Context) ([]Task, error)

	// GetTask returns the task with the given id, or ErrNotFound.
	GetTask(ctx context.Context, id int64) (Task, error)

	// CreateTask appends a new pending task built from d.
	CreateTask(ctx context.Context, d Draft) (Task, error)

	// UpdateTask merges p into the task with the given id.
	// Returns ErrNotFound, leaving the store unchanged, if there is none.
	UpdateTask(ctx context.Context, id int64, p Patch) (Task, error)

	// DeleteTask removes the task with the given id.
	// Returns ErrNotFound, leaving the store unchanged, if there is none.
	DeleteTask(ctx context.Context, id int64) error

	// SetStatus changes the status of the task with the given id.
	SetStatus(ctx context.Context, id int64, status Status) error
}

// Versioned is implemented by stores that count their mutations.
// Version changes whenever the task list changes.
type Versioned interface {
	Version() uint64
}
