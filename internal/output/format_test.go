package output_test

import (
	"bytes"
	"testing"

	"taskflow/internal/backend/memory"
	"taskflow/internal/filter"
	"taskflow/internal/output"
	"taskflow/internal/service"
	"taskflow/internal/testutil"
)

func TestFormatCard_SeedBoard(t *testing.T) {
	var buf bytes.Buffer
	for i, task := range memory.SeedTasks() {
		output.FormatCard(&buf, i+1, task, "2025-07-07")
	}
	testutil.Golden(t, "cards", buf.Bytes())
}

func TestFormatCard_Minimal(t *testing.T) {
	var buf bytes.Buffer
	task := service.Task{ID: 42, Title: "line one\nline two", Status: service.StatusPending, Priority: service.PriorityLow, DueDate: "2099-01-01"}
	output.FormatCard(&buf, 7, task, "2025-07-07")

	expected := "   7  line one line two\n      id 42 | Pending | Low | due Jan 1, 2099\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatCard_Untitled(t *testing.T) {
	var buf bytes.Buffer
	output.FormatCard(&buf, 1, service.Task{ID: 1, Title: "  ", Status: service.StatusPending, Priority: service.PriorityMedium, DueDate: "2099-01-01"}, "2025-07-07")

	expected := "   1  (untitled)\n      id 1 | Pending | Medium | due Jan 1, 2099\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatStats(t *testing.T) {
	var buf bytes.Buffer
	output.FormatStats(&buf, filter.Stats{Total: 3, Completed: 1, InProgress: 1, Pending: 1, Overdue: 1})

	expected := "Total Tasks  3\nCompleted    1\nIn Progress  1\nPending      1\nOverdue      1\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatFilters_MarksActive(t *testing.T) {
	var buf bytes.Buffer
	output.FormatFilters(&buf, filter.Overdue)

	expected := "" +
		"  all          All Tasks\n" +
		"  pending      Pending\n" +
		"  in-progress  In Progress\n" +
		"  completed    Completed\n" +
		"  due-today    Due Today\n" +
		"* overdue      Overdue\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatEmpty(t *testing.T) {
	var buf bytes.Buffer
	output.FormatEmpty(&buf, "Get started by creating your first task")

	expected := "no tasks found\nGet started by creating your first task\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatDate(t *testing.T) {
	if got := output.FormatDate("2025-07-07"); got != "Jul 7, 2025" {
		t.Errorf("expected Jul 7, 2025, got %q", got)
	}
	if got := output.FormatDate("someday"); got != "someday" {
		t.Errorf("expected unparsable date unchanged, got %q", got)
	}
}
