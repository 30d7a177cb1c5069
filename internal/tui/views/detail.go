package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/taskapp/internal/store"
	"github.com/pablasso/taskapp/internal/task"
	"github.com/pablasso/taskapp/internal/tui/components"
	"github.com/pablasso/taskapp/internal/tui/msgs"
	"github.com/pablasso/taskapp/internal/tui/styles"
)

const detailLabelWidth = 17

// DetailModel is the read-only panel for a single task. It opens before the
// record arrives and shows a spinner until then.
type DetailModel struct {
	id      task.ID
	task    task.Record
	loaded  bool
	err     error
	spinner spinner.Model
	width   int
	height  int
}

// NewDetailModel creates a panel waiting for the record with the given id.
func NewDetailModel(id task.ID) DetailModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	return DetailModel{
		id:      id,
		spinner: s,
	}
}

// Init implements tea.Model.
func (m DetailModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// SetTask fills the panel with the fetched record.
func (m *DetailModel) SetTask(rec task.Record) {
	m.task = rec
	m.loaded = true
	m.err = nil
}

// SetError shows why the record could not be fetched.
func (m *DetailModel) SetError(err error) {
	m.err = err
}

// Update implements tea.Model.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.loaded || m.err != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "backspace":
			return m, func() tea.Msg { return msgs.GoToListMsg{} }
		case "e":
			if m.loaded {
				id := m.id
				return m, func() tea.Msg { return msgs.OpenFormMsg{ID: id} }
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m DetailModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var content string
	switch {
	case m.err != nil:
		content = styles.ErrorStyle.Render("Could not load task: " + store.Message(m.err))
	case !m.loaded:
		content = m.spinner.View() + " Loading task..."
	default:
		content = m.renderFields()
	}

	panel := styles.TitleStyle.Render("Task Details") + "\n\n" + content
	box := styles.BoxStyle.Width(min(m.width-4, 72)).Render(panel)
	body := lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, box)

	bar := components.HintBar{Hints: []components.Hint{{Key: "Esc", Action: "Back"}}}
	if m.loaded {
		bar.Hints = append(bar.Hints, components.Hint{Key: "e", Action: "Edit"})
	}
	return body + "\n" + bar.Render(m.width)
}

func (m DetailModel) renderFields() string {
	rows := [][2]string{
		{"Title", m.task.Title},
		{"Description", m.task.Description},
		{"Due date", task.FormatDueDate(m.task.DueDate)},
		{"Priority", styles.PriorityDot(m.task.Priority) + " " + m.task.Priority.Label()},
		{"Status", styles.StatusBadge(m.task.Status)},
		{"Task owner", m.task.AssignedTo},
		{"Tags", m.task.Tags},
		{"Created at", task.FormatTimestamp(m.task.CreatedAt)},
		{"Last updated at", task.FormatTimestamp(m.task.UpdatedAt)},
	}

	label := styles.LabelStyle.Width(detailLabelWidth)
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(r[0]), r[1]))
	}
	return strings.Join(lines, "\n")
}

// SetSize updates the model dimensions.
func (m *DetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ID returns the id of the task being shown.
func (m DetailModel) ID() task.ID {
	return m.id
}

// Task returns the fetched record.
func (m DetailModel) Task() task.Record {
	return m.task
}

// Loaded reports whether the record has arrived.
func (m DetailModel) Loaded() bool {
	return m.loaded
}
