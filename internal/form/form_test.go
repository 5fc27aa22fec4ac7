package form_test

import (
	"errors"
	"reflect"
	"testing"

	"taskflow/internal/form"
	"taskflow/internal/service"
)

func TestParseTags(t *testing.T) {
	got := form.ParseTags(" work, ,docs ,, ui")
	want := []string{"work", "docs", "ui"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseTags_Empty(t *testing.T) {
	got := form.ParseTags("")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestParseDueDate(t *testing.T) {
	if got, err := form.ParseDueDate(" 2025-07-07 "); err != nil || got != "2025-07-07" {
		t.Errorf("expected 2025-07-07, got %q (%v)", got, err)
	}
	if got, err := form.ParseDueDate(""); err != nil || got != "" {
		t.Errorf("expected empty date, got %q (%v)", got, err)
	}
	if _, err := form.ParseDueDate("2025-7-7"); err == nil {
		t.Error("expected error for non zero-padded date")
	}
	if _, err := form.ParseDueDate("2025-02-30"); !errors.Is(err, form.ErrInvalidDate) {
		t.Error("expected error for impossible date")
	}
}

func TestDraft_Defaults(t *testing.T) {
	d, err := form.Fields{Title: "Buy milk"}.Draft()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Priority != service.PriorityMedium {
		t.Errorf("expected medium priority, got %q", d.Priority)
	}
	if len(d.Tags) != 0 {
		t.Errorf("expected no tags, got %v", d.Tags)
	}
}

func TestDraft_TitleRequired(t *testing.T) {
	_, err := form.Fields{Title: "  "}.Draft()
	if !errors.Is(err, service.ErrTitleRequired) {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
}

func TestDraft_InvalidPriority(t *testing.T) {
	_, err := form.Fields{Title: "x", Priority: "urgent"}.Draft()
	if !errors.Is(err, service.ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestFromTaskRoundTrip(t *testing.T) {
	task := service.Task{
		Title:      "Review pull requests",
		Priority:   service.PriorityHigh,
		DueDate:    "2025-07-06",
		AssignedTo: "jane@example.com",
		Tags:       []string{"code-review", "teamwork"},
	}
	f := form.FromTask(task)
	if f.Tags != "code-review, teamwork" {
		t.Errorf("expected joined tags, got %q", f.Tags)
	}

	p, err := f.Patch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := p.Apply(service.Task{ID: 9, Status: service.StatusCompleted})
	if got.ID != 9 || got.Status != service.StatusCompleted {
		t.Errorf("expected id and status preserved, got %+v", got)
	}
	if got.Title != task.Title || got.Priority != task.Priority || !reflect.DeepEqual(got.Tags, task.Tags) {
		t.Errorf("expected form fields applied, got %+v", got)
	}
}
