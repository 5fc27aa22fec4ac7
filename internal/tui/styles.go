package tui

import (
	"github.com/charmbracelet/lipgloss"

	"taskflow/internal/service"
)

var (
	colorMuted   = lipgloss.Color("245")
	colorAccent  = lipgloss.Color("62")
	colorDanger  = lipgloss.Color("196")
	colorWarn    = lipgloss.Color("214")
	colorSuccess = lipgloss.Color("42")
	colorInfo    = lipgloss.Color("33")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle = lipgloss.NewStyle().Foreground(colorDanger)

	statCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			Width(15)
	statValueStyle = lipgloss.NewStyle().Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorMuted).
			PaddingLeft(1)
	selectedCardStyle = cardStyle.BorderForeground(colorAccent)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2).
			Width(60)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

func statusStyle(s service.Status) lipgloss.Style {
	switch s {
	case service.StatusCompleted:
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case service.StatusInProgress:
		return lipgloss.NewStyle().Foreground(colorInfo)
	default:
		return lipgloss.NewStyle().Foreground(colorMuted)
	}
}

func priorityStyle(p service.Priority) lipgloss.Style {
	switch p {
	case service.PriorityHigh:
		return lipgloss.NewStyle().Foreground(colorDanger)
	case service.PriorityMedium:
		return lipgloss.NewStyle().Foreground(colorWarn)
	default:
		return lipgloss.NewStyle().Foreground(colorSuccess)
	}
}
