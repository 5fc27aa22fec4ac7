// Package filter derives the visible task list and its statistics from a
// snapshot of the store. All functions are pure.
package filter

import (
	"strings"

	"taskflow/internal/service"
)

// Key selects which tasks the board shows.
type Key string

const (
	All        Key = "all"
	Pending    Key = "pending"
	InProgress Key = "in-progress"
	Completed  Key = "completed"
	DueToday   Key = "due-today"
	Overdue    Key = "overdue"
)

// Option is a filter key with its display label.
type Option struct {
	Key   Key
	Label string
}

var options = []Option{
	{All, "All Tasks"},
	{Pending, "Pending"},
	{InProgress, "In Progress"},
	{Completed, "Completed"},
	{DueToday, "Due Today"},
	{Overdue, "Overdue"},
}

// Options returns the selectable filters in menu order.
func Options() []Option {
	return append([]Option(nil), options...)
}

// ParseKey maps s to a Key. Unknown values map to All with ok=false.
func ParseKey(s string) (Key, bool) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	for _, o := range options {
		if o.Key == k {
			return k, true
		}
	}
	return All, false
}

// Label returns the display label for k.
func (k Key) Label() string {
	for _, o := range options {
		if o.Key == k {
			return o.Label
		}
	}
	return options[0].Label
}

// Next returns the filter after k in menu order, wrapping around.
func (k Key) Next() Key {
	return k.step(1)
}

// Prev returns the filter before k in menu order, wrapping around.
func (k Key) Prev() Key {
	return k.step(-1)
}

func (k Key) step(d int) Key {
	n := len(options)
	for i, o := range options {
		if o.Key == k {
			return options[((i+d)%n+n)%n].Key
		}
	}
	return All
}

// MatchesSearch reports whether term occurs in the task's title or
// description, ignoring case. The empty term matches everything.
func MatchesSearch(t service.Task, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Description), term)
}

// Matches reports whether t satisfies the predicate for k on the given day.
// Unknown keys match everything.
func Matches(t service.Task, k Key, today string) bool {
	switch k {
	case Completed:
		return t.Status == service.StatusCompleted
	case Pending:
		return t.Status == service.StatusPending
	case InProgress:
		return t.Status == service.StatusInProgress
	case Overdue:
		return t.IsOverdue(today)
	case DueToday:
		return t.IsDueToday(today)
	default:
		return true
	}
}

// Apply returns, in their original order, the tasks that match both the
// search term and the filter key.
func Apply(tasks []service.Task, term string, k Key, today string) []service.Task {
	result := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if MatchesSearch(t, term) && Matches(t, k, today) {
			result = append(result, t)
		}
	}
	return result
}
