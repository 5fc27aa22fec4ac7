// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the fixed-width ISO date format used for due and created dates.
// Dates in this layout order correctly as plain strings.
const DateLayout = "2006-01-02"

// Priority is the importance of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Status is the workflow state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists all statuses in display order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Label returns the capitalized priority ("High").
func (p Priority) Label() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// ParsePriority parses a priority name, case-insensitively.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidPriority, s)
	}
	return p, nil
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Label returns the human label ("In Progress").
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// Next returns the status that follows s in the pending → in-progress →
// completed cycle, wrapping back to pending.
func (s Status) Next() Status {
	for i, st := range Statuses {
		if st == s {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return StatusPending
}

// ParseStatus parses a status name. "in_progress" and "inprogress" are
// accepted as spellings of in-progress.
func ParseStatus(s string) (Status, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "in_progress", "inprogress":
		v = string(StatusInProgress)
	}
	st := Status(v)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidStatus, s)
	}
	return st, nil
}

// Task represents a single task item.
type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    Priority
	Status      Status
	DueDate     string // DateLayout, or empty
	AssignedTo  string
	CreatedAt   string // DateLayout
	Tags        []string
}

// IsOverdue reports whether the task is due before today and not completed.
// Dates are compared as strings.
func (t Task) IsOverdue(today string) bool {
	return t.DueDate < today && t.Status != StatusCompleted
}

// IsDueToday reports whether the task is due on today.
func (t Task) IsDueToday(today string) bool {
	return t.DueDate == today
}

// Clone returns a copy of t that shares no slices with it.
func (t Task) Clone() Task {
	if t.Tags != nil {
		t.Tags = append([]string(nil), t.Tags...)
	}
	return t
}

// Draft holds the user-supplied fields of a task to be created.
// ID, CreatedAt and Status are assigned by the store.
type Draft struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     string
	AssignedTo  string
	Tags        []string
}

// Patch holds the fields of an edit. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	Priority    *Priority
	Status      *Status
	DueDate     *string
	AssignedTo  *string
	Tags        *[]string
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.Status == nil && p.DueDate == nil && p.AssignedTo == nil && p.Tags == nil
}

// Apply returns t with the non-nil patch fields merged in.
func (p Patch) Apply(t Task) Task {
	t = t.Clone()
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	if p.Tags != nil {
		t.Tags = append([]string(nil), (*p.Tags)...)
	}
	return t
}

// Today formats now as a local calendar date in DateLayout.
func Today(now time.Time) string {
	return now.Local().Format(DateLayout)
}
