package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	NextFilter  key.Binding
	PrevFilter  key.Binding
	CycleStatus key.Binding
	New         key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Expand      key.Binding
	Copy        key.Binding
	Quit        key.Binding

	// confirm dialog and form
	Yes       key.Binding
	No        key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearSearch: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		NextFilter:  key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f/F", "filter")),
		PrevFilter:  key.NewBinding(key.WithKeys("F", "shift+tab")),
		CycleStatus: key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "status")),
		New:         key.NewBinding(key.WithKeys("n", "a"), key.WithHelp("n", "new")),
		Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:      key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Expand:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Yes:       key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "delete")),
		No:        key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "keep")),
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.NextFilter, k.CycleStatus, k.New, k.Edit, k.Delete, k.Expand, k.Copy, k.Quit}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Submit, k.Cancel}
}
