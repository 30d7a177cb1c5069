// Package styles defines shared lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/taskapp/internal/task"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for success
	warningColor   = lipgloss.Color("#D7AF5F") // Amber for in-progress work
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for the focused card or field
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// HintKeyStyle for the key half of a hint
	HintKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor)

	// BoxStyle for panel borders
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(secondaryColor).
			Padding(1, 2)

	// CardStyle frames a task card.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	// SelectedCardStyle frames the card under the cursor.
	SelectedCardStyle = CardStyle.
				BorderForeground(primaryColor)

	// LabelStyle for field labels in the form and detail panel
	LabelStyle = lipgloss.NewStyle().
			Bold(true)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// WarningStyle for in-progress badges
	WarningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#1C1C1C"))
)

// PriorityDot renders the colored priority marker: red for high, yellow for
// medium, green for low.
func PriorityDot(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return ErrorStyle.Render("●")
	case task.PriorityMedium:
		return WarningStyle.Render("●")
	case task.PriorityLow:
		return SuccessStyle.Render("●")
	}
	return SubtleStyle.Render("○")
}

// StatusBadge renders the status label on a colored background.
func StatusBadge(s task.Status) string {
	switch s {
	case task.StatusInProcess:
		return badgeStyle.Background(warningColor).Render(s.Label())
	case task.StatusPending:
		return badgeStyle.Background(errorColor).Render(s.Label())
	case task.StatusCompleted:
		return badgeStyle.Background(successColor).Render(s.Label())
	}
	return badgeStyle.Background(secondaryColor).Render(s.Label())
}
