package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskflow/internal/form"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldPriority
	fieldDueDate
	fieldAssignedTo
	fieldTags
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title",
	"Description",
	"Priority (low, medium, high)",
	"Due date (YYYY-MM-DD)",
	"Assigned to",
	"Tags (comma separated)",
}

// taskForm is the create/edit modal. editID is zero for a new task.
type taskForm struct {
	editID int64
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

func newTaskForm(editID int64, f form.Fields) *taskForm {
	tf := &taskForm{editID: editID}
	values := [fieldCount]string{f.Title, f.Description, f.Priority, f.DueDate, f.AssignedTo, f.Tags}
	for i := range tf.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 50
		ti.CharLimit = 256
		ti.SetValue(values[i])
		tf.inputs[i] = ti
	}
	tf.inputs[fieldTitle].Placeholder = "What needs doing?"
	tf.inputs[fieldDueDate].Placeholder = "2006-01-02"
	tf.inputs[fieldTags].Placeholder = "work, docs"
	tf.inputs[fieldTitle].Focus()
	return tf
}

func (tf *taskForm) heading() string {
	if tf.editID != 0 {
		return "Edit Task"
	}
	return "New Task"
}

func (tf *taskForm) move(delta int) tea.Cmd {
	tf.inputs[tf.focus].Blur()
	tf.focus = (tf.focus + delta + fieldCount) % fieldCount
	return tf.inputs[tf.focus].Focus()
}

func (tf *taskForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	tf.inputs[tf.focus], cmd = tf.inputs[tf.focus].Update(msg)
	return cmd
}

func (tf *taskForm) fields() form.Fields {
	return form.Fields{
		Title:       tf.inputs[fieldTitle].Value(),
		Description: tf.inputs[fieldDescription].Value(),
		Priority:    tf.inputs[fieldPriority].Value(),
		DueDate:     tf.inputs[fieldDueDate].Value(),
		AssignedTo:  tf.inputs[fieldAssignedTo].Value(),
		Tags:        tf.inputs[fieldTags].Value(),
	}
}

func (tf *taskForm) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(tf.heading()))
	b.WriteString("\n\n")
	for i, in := range tf.inputs {
		label := fieldLabels[i]
		if i == tf.focus {
			label = helpKeyStyle.Render("> " + label)
		} else {
			label = mutedStyle.Render("  " + label)
		}
		b.WriteString(label)
		b.WriteString("\n  ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if tf.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(tf.err))
		b.WriteString("\n")
	}
	return dialogStyle.Render(b.String())
}
