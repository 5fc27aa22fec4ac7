// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"taskflow/internal/filter"
	"taskflow/internal/service"
)

const (
	// DetailIndent prefixes the detail line under a card title.
	DetailIndent = "      "

	// DisplayDateLayout is how due dates are shown ("Jul 7, 2025").
	DisplayDateLayout = "Jan 2, 2006"
)

// FormatCard formats one task of a list.
// Format: "{N:>4}  {TITLE}\n" followed by an indented detail line.
func FormatCard(w io.Writer, num int, task service.Task, today string) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeTitle(task.Title))
	fmt.Fprintf(w, "%s%s\n", DetailIndent, strings.Join(cardDetails(task, today), " | "))
}

// FormatTaskDetail formats every field of one task for the show command.
func FormatTaskDetail(w io.Writer, task service.Task, today string) {
	fmt.Fprintf(w, "%-12s %d\n", "ID:", task.ID)
	fmt.Fprintf(w, "%-12s %s\n", "Title:", normalizeTitle(task.Title))
	fmt.Fprintf(w, "%-12s %s\n", "Status:", task.Status.Label())
	fmt.Fprintf(w, "%-12s %s\n", "Priority:", task.Priority.Label())
	fmt.Fprintf(w, "%-12s %s\n", "Due:", orNone(FormatDate(task.DueDate)))
	fmt.Fprintf(w, "%-12s %s\n", "Assigned to:", orNone(task.AssignedTo))
	fmt.Fprintf(w, "%-12s %s\n", "Tags:", orNone(FormatTags(task.Tags)))
	fmt.Fprintf(w, "%-12s %s\n", "Created:", orNone(FormatDate(task.CreatedAt)))
	if task.IsOverdue(today) {
		fmt.Fprintf(w, "%-12s %s\n", "Overdue:", "yes")
	}
	if strings.TrimSpace(task.Description) != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, task.Description)
	}
}

// FormatStats formats the board statistics.
func FormatStats(w io.Writer, s filter.Stats) {
	fmt.Fprintf(w, "%-12s %d\n", "Total Tasks", s.Total)
	fmt.Fprintf(w, "%-12s %d\n", "Completed", s.Completed)
	fmt.Fprintf(w, "%-12s %d\n", "In Progress", s.InProgress)
	fmt.Fprintf(w, "%-12s %d\n", "Pending", s.Pending)
	fmt.Fprintf(w, "%-12s %d\n", "Overdue", s.Overdue)
}

// FormatFilters formats the filter options, marking the active one.
func FormatFilters(w io.Writer, active filter.Key) {
	for _, o := range filter.Options() {
		marker := " "
		if o.Key == active {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-12s %s\n", marker, o.Key, o.Label)
	}
}

// FormatEmpty formats the message shown when no task is visible.
func FormatEmpty(w io.Writer, hint string) {
	fmt.Fprintln(w, "no tasks found")
	if hint != "" {
		fmt.Fprintln(w, hint)
	}
}

// FormatDate renders a YYYY-MM-DD date as "Jul 7, 2025". Values that do not
// parse are returned unchanged.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	d, err := time.Parse(service.DateLayout, s)
	if err != nil {
		return s
	}
	return d.Format(DisplayDateLayout)
}

// FormatTags renders tags as "#a #b".
func FormatTags(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, "#"+t)
	}
	return strings.Join(parts, " ")
}

func cardDetails(task service.Task, today string) []string {
	parts := []string{
		fmt.Sprintf("id %d", task.ID),
		task.Status.Label(),
		task.Priority.Label(),
	}
	if task.DueDate != "" {
		parts = append(parts, "due "+FormatDate(task.DueDate))
	}
	if task.AssignedTo != "" {
		parts = append(parts, task.AssignedTo)
	}
	if len(task.Tags) > 0 {
		parts = append(parts, FormatTags(task.Tags))
	}
	if task.IsOverdue(today) {
		parts = append(parts, "OVERDUE")
	}
	return parts
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
