package components

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/taskapp/internal/tui/styles"
)

// ToastKind selects the styling of a notification.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
)

// Toast is a single transient notification.
type Toast struct {
	ID   int
	Kind ToastKind
	Text string
}

// ToastExpiredMsg is delivered when a toast's display time is over.
type ToastExpiredMsg struct {
	ID int
}

// Toasts is the queue of visible notifications, oldest first.
type Toasts struct {
	items    []Toast
	nextID   int
	duration time.Duration
}

// NewToasts creates an empty queue whose toasts expire after duration.
func NewToasts(duration time.Duration) Toasts {
	return Toasts{duration: duration}
}

// Push adds a toast and returns the command that expires it.
func (t Toasts) Push(kind ToastKind, text string) (Toasts, tea.Cmd) {
	t.nextID++
	id := t.nextID
	t.items = append(append([]Toast(nil), t.items...), Toast{ID: id, Kind: kind, Text: text})

	return t, tea.Tick(t.duration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Success is shorthand for Push(ToastSuccess, text).
func (t Toasts) Success(text string) (Toasts, tea.Cmd) {
	return t.Push(ToastSuccess, text)
}

// Error is shorthand for Push(ToastError, text).
func (t Toasts) Error(text string) (Toasts, tea.Cmd) {
	return t.Push(ToastError, text)
}

// Expire removes the toast with the given id. Unknown ids are ignored.
func (t Toasts) Expire(id int) Toasts {
	kept := make([]Toast, 0, len(t.items))
	for _, item := range t.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	t.items = kept
	return t
}

// Items returns the visible toasts, oldest first.
func (t Toasts) Items() []Toast {
	return t.items
}

// View renders the newest toast on one line, with a count of the others.
func (t Toasts) View() string {
	if len(t.items) == 0 {
		return ""
	}

	latest := t.items[len(t.items)-1]
	text := latest.Text
	if more := len(t.items) - 1; more > 0 {
		text += styles.SubtleStyle.Render(" (+" + strconv.Itoa(more) + " more)")
	}

	if latest.Kind == ToastError {
		return styles.ErrorStyle.Render("✗ ") + text
	}
	return styles.SuccessStyle.Render("✓ ") + text
}
