// Package tui is the interactive terminal board: stat cards, a search box,
// the filter selector and the task list, with a modal form for creating
// and editing tasks.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskflow/internal/filter"
	"taskflow/internal/form"
	"taskflow/internal/output"
	"taskflow/internal/service"
	"taskflow/internal/session"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeForm
	modeConfirmDelete
)

type statusMsg string

// Model is the bubbletea model of the board.
type Model struct {
	ctx  context.Context
	sess *session.Session
	log  *slog.Logger
	keys keyMap

	tasks    []service.Task
	stats    filter.Stats
	cursor   int
	expanded map[int64]bool

	mode       mode
	search     textinput.Model
	form       *taskForm
	pendingDel *service.Task
	status     string
	width      int

	copyText func(string) error
}

// New builds the board model and loads the first view.
func New(ctx context.Context, sess *session.Session, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "Search tasks..."
	ti.CharLimit = 256
	ti.Width = 40
	ti.SetValue(sess.SearchTerm())

	m := &Model{
		ctx:      ctx,
		sess:     sess,
		log:      logger,
		keys:     defaultKeys(),
		expanded: map[int64]bool{},
		search:   ti,
		copyText: clipboard.WriteAll,
	}
	m.reload()
	return m
}

// Run starts the board and blocks until the user quits or ctx is done.
func Run(ctx context.Context, sess *session.Session, logger *slog.Logger) error {
	p := tea.NewProgram(New(ctx, sess, logger), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 30 {
			m.search.Width = msg.Width - 30
		}
		return m, nil
	case statusMsg:
		m.status = string(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.ClearSearch):
		if m.sess.SearchTerm() != "" {
			m.search.SetValue("")
			m.sess.SetSearchTerm("")
			m.reload()
		}
	case key.Matches(msg, m.keys.NextFilter):
		m.sess.SetFilter(m.sess.Filter().Next())
		m.reload()
	case key.Matches(msg, m.keys.PrevFilter):
		m.sess.SetFilter(m.sess.Filter().Prev())
		m.reload()
	case key.Matches(msg, m.keys.CycleStatus):
		if t, ok := m.current(); ok {
			next := t.Status.Next()
			if err := m.sess.SetStatus(m.ctx, t.ID, next); err != nil {
				m.fail("status change failed", err)
				break
			}
			m.status = fmt.Sprintf("%q is now %s", t.Title, next.Label())
			m.reload()
		}
	case key.Matches(msg, m.keys.New):
		m.form = newTaskForm(0, form.Blank())
		m.mode = modeForm
	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.current(); ok {
			m.form = newTaskForm(t.ID, form.FromTask(t))
			m.mode = modeForm
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.current(); ok {
			m.pendingDel = &t
			m.mode = modeConfirmDelete
			m.status = fmt.Sprintf("Delete %q? y/n", t.Title)
		}
	case key.Matches(msg, m.keys.Expand):
		if t, ok := m.current(); ok {
			m.expanded[t.ID] = !m.expanded[t.ID]
		}
	case key.Matches(msg, m.keys.Copy):
		if t, ok := m.current(); ok {
			return m, m.copyCmd(t.Title)
		}
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.search.Blur()
		m.mode = modeList
		return m, nil
	case tea.KeyEsc:
		m.search.Blur()
		m.search.SetValue("")
		m.sess.SetSearchTerm("")
		m.mode = modeList
		m.reload()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.sess.SearchTerm() {
		m.sess.SetSearchTerm(m.search.Value())
		m.reload()
	}
	return m, cmd
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.form = nil
		m.mode = modeList
		m.status = "Cancelled"
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m, m.form.move(1)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.form.move(-1)
	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	}
	return m, m.form.update(msg)
}

func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	fields := m.form.fields()
	id := m.form.editID
	var err error
	if id != 0 {
		var patch service.Patch
		if patch, err = fields.Patch(); err == nil {
			_, err = m.sess.Update(m.ctx, id, patch)
		}
		m.status = "Task updated"
	} else {
		var draft service.Draft
		if draft, err = fields.Draft(); err == nil {
			var created service.Task
			created, err = m.sess.Create(m.ctx, draft)
			id = created.ID
		}
		m.status = "Task created"
	}
	if err != nil {
		m.form.err = err.Error()
		m.status = ""
		return m, nil
	}
	m.form = nil
	m.mode = modeList
	m.reload()
	m.selectID(id)
	return m, nil
}

func (m *Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		t := m.pendingDel
		m.pendingDel = nil
		m.mode = modeList
		if err := m.sess.Delete(m.ctx, t.ID); err != nil {
			m.fail("delete failed", err)
			return m, nil
		}
		delete(m.expanded, t.ID)
		m.status = fmt.Sprintf("Deleted %q", t.Title)
		m.reload()
	case key.Matches(msg, m.keys.No):
		m.pendingDel = nil
		m.mode = modeList
		m.status = "Delete cancelled"
	}
	return m, nil
}

func (m *Model) copyCmd(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return statusMsg("Failed to copy: " + err.Error())
		}
		return statusMsg("Copied: " + text)
	}
}

// reload recomputes the visible tasks and stats from the session.
func (m *Model) reload() {
	tasks, err := m.sess.Visible(m.ctx)
	if err != nil {
		m.fail("load failed", err)
		return
	}
	stats, err := m.sess.Stats(m.ctx)
	if err != nil {
		m.fail("stats failed", err)
		return
	}
	m.tasks = tasks
	m.stats = stats
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selectID(id int64) {
	for i, t := range m.tasks {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m *Model) current() (service.Task, bool) {
	if len(m.tasks) == 0 {
		return service.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m *Model) fail(what string, err error) {
	m.log.Error(what, "err", err)
	m.status = fmt.Sprintf("%s: %v", what, err)
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("TaskFlow"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Organize and track your tasks efficiently"))
	b.WriteString("\n\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n\n")

	if m.mode == modeForm && m.form != nil {
		b.WriteString(m.form.view())
		b.WriteString("\n\n")
		b.WriteString(renderHelp(m.keys.formHelp()))
		return b.String()
	}

	b.WriteString(m.search.View())
	b.WriteString("   ")
	b.WriteString(mutedStyle.Render("Filter: "))
	b.WriteString(m.sess.Filter().Label())
	b.WriteString("\n\n")
	b.WriteString(m.renderTasks())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(renderHelp(m.keys.listHelp()))
	return b.String()
}

func (m *Model) renderStats() string {
	cards := []struct {
		label string
		value int
		color lipgloss.Color
	}{
		{"Total Tasks", m.stats.Total, colorAccent},
		{"Completed", m.stats.Completed, colorSuccess},
		{"In Progress", m.stats.InProgress, colorInfo},
		{"Pending", m.stats.Pending, colorMuted},
		{"Overdue", m.stats.Overdue, colorDanger},
	}
	rendered := make([]string, len(cards))
	for i, c := range cards {
		value := statValueStyle.Foreground(c.color).Render(fmt.Sprint(c.value))
		rendered[i] = statCardStyle.Render(mutedStyle.Render(c.label) + "\n" + value)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderTasks() string {
	if len(m.tasks) == 0 {
		return "No tasks found\n" + mutedStyle.Render(m.sess.EmptyHint()) + "\n"
	}
	today := m.sess.Today()
	var b strings.Builder
	for i, t := range m.tasks {
		style := cardStyle
		if i == m.cursor {
			style = selectedCardStyle
		}
		b.WriteString(style.Render(m.renderCard(t, today)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderCard(t service.Task, today string) string {
	title := t.Title
	if t.Status == service.StatusCompleted {
		title = lipgloss.NewStyle().Strikethrough(true).Render(title)
	}
	parts := []string{
		statusStyle(t.Status).Render(t.Status.Label()),
		priorityStyle(t.Priority).Render(t.Priority.Label()),
	}
	overdue := t.IsOverdue(today)
	if t.DueDate != "" {
		due := "due " + output.FormatDate(t.DueDate)
		if overdue {
			due = errorStyle.Render(due)
		}
		parts = append(parts, due)
	}
	if t.AssignedTo != "" {
		parts = append(parts, t.AssignedTo)
	}
	if len(t.Tags) > 0 {
		parts = append(parts, mutedStyle.Render(output.FormatTags(t.Tags)))
	}
	// undated unfinished tasks are overdue as well
	if overdue {
		parts = append(parts, errorStyle.Bold(true).Render("OVERDUE"))
	}

	card := title + "\n" + strings.Join(parts, " · ")
	if m.expanded[t.ID] {
		desc := t.Description
		if desc == "" {
			desc = "(no description)"
		}
		card += "\n\n" + desc + "\n" + mutedStyle.Render("created "+output.FormatDate(t.CreatedAt))
	}
	return card
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, " • ")
}
