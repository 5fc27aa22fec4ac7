// Package form turns raw task form fields into drafts and patches.
package form

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"taskflow/internal/service"
)

// ErrInvalidDate is returned for a due date that is not a YYYY-MM-DD date.
var ErrInvalidDate = errors.New("invalid due date")

// Fields holds the text of each form input as typed.
type Fields struct {
	Title       string
	Description string
	Priority    string
	DueDate     string
	AssignedTo  string
	Tags        string // comma separated
}

// FromTask prefills the edit form from t.
func FromTask(t service.Task) Fields {
	priority := string(t.Priority)
	if priority == "" {
		priority = string(service.PriorityMedium)
	}
	return Fields{
		Title:       t.Title,
		Description: t.Description,
		Priority:    priority,
		DueDate:     t.DueDate,
		AssignedTo:  t.AssignedTo,
		Tags:        strings.Join(t.Tags, ", "),
	}
}

// Blank returns the fields of a new task form.
func Blank() Fields {
	return Fields{Priority: string(service.PriorityMedium)}
}

// Draft validates f and converts it to a draft.
func (f Fields) Draft() (service.Draft, error) {
	if strings.TrimSpace(f.Title) == "" {
		return service.Draft{}, service.ErrTitleRequired
	}
	priority, err := parsePriority(f.Priority)
	if err != nil {
		return service.Draft{}, err
	}
	due, err := ParseDueDate(f.DueDate)
	if err != nil {
		return service.Draft{}, err
	}
	return service.Draft{
		Title:       f.Title,
		Description: f.Description,
		Priority:    priority,
		DueDate:     due,
		AssignedTo:  f.AssignedTo,
		Tags:        ParseTags(f.Tags),
	}, nil
}

// Patch validates f and converts it to a patch that sets every form field,
// as submitting the edit form does.
func (f Fields) Patch() (service.Patch, error) {
	d, err := f.Draft()
	if err != nil {
		return service.Patch{}, err
	}
	return service.Patch{
		Title:       &d.Title,
		Description: &d.Description,
		Priority:    &d.Priority,
		DueDate:     &d.DueDate,
		AssignedTo:  &d.AssignedTo,
		Tags:        &d.Tags,
	}, nil
}

// ParseTags splits a comma separated list, trimming entries and dropping
// empty ones.
func ParseTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ParseDueDate checks that s is empty or a real YYYY-MM-DD date.
func ParseDueDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse(service.DateLayout, s); err != nil {
		return "", fmt.Errorf("%w: %s (want YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return s, nil
}

func parsePriority(s string) (service.Priority, error) {
	if strings.TrimSpace(s) == "" {
		return service.PriorityMedium, nil
	}
	return service.ParsePriority(s)
}
