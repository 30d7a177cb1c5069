package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/taskapp/internal/task"
	"github.com/pablasso/taskapp/internal/tui/styles"
)

// RenderCard renders one task as a bordered card of the given outer width.
func RenderCard(rec task.Record, width int, selected bool) string {
	style := styles.CardStyle
	if selected {
		style = styles.SelectedCardStyle
	}
	inner := max(width-style.GetHorizontalFrameSize(), 10)

	header := styles.PriorityDot(rec.Priority) + " " + styles.StatusBadge(rec.Status)
	title := styles.LabelStyle.Render(truncate(rec.Title, inner))
	desc := truncate(rec.Description, inner)

	var tags []string
	for _, tag := range task.ParseTags(rec.Tags) {
		tags = append(tags, "#"+tag)
	}
	tagLine := styles.SubtleStyle.Render(truncate(strings.Join(tags, " "), inner))

	owner := styles.SubtleStyle.Render("Owner: ") + rec.AssignedTo
	actions := styles.SubtleStyle.Render("[e] edit  [d] delete")
	gap := max(inner-lipgloss.Width(owner)-lipgloss.Width(actions), 1)
	footer := owner + strings.Repeat(" ", gap) + actions

	body := strings.Join([]string{header, title, desc, tagLine, footer}, "\n")
	return style.Width(width - style.GetHorizontalBorderSize()).Render(body)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
