package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/taskapp/internal/tui/styles"
)

// Hint is one key binding shown at the bottom of a view.
type Hint struct {
	Key    string
	Action string
}

// HintBar is the bottom line of every view: key hints on the left and an
// optional note on the right.
type HintBar struct {
	Hints []Hint
	Note  string
}

const hintSeparator = " • "

// Render lays the bar out on exactly one line of the given width. Hints that
// do not fit are dropped from the end. The note is dropped only when it alone
// is wider than the bar.
func (b HintBar) Render(width int) string {
	note := ""
	if b.Note != "" && lipgloss.Width(b.Note) < width {
		note = styles.SelectedStyle.Render(b.Note)
	}
	room := width - lipgloss.Width(note)
	if note != "" {
		room--
	}

	var line string
	for _, h := range b.Hints {
		next := styles.HintKeyStyle.Render(h.Key) + " " + styles.StatusBarStyle.Render(h.Action)
		if line != "" {
			next = line + styles.StatusBarStyle.Render(hintSeparator) + next
		}
		if lipgloss.Width(next) > room {
			break
		}
		line = next
	}

	gap := max(width-lipgloss.Width(line)-lipgloss.Width(note), 0)
	return line + strings.Repeat(" ", gap) + note
}
