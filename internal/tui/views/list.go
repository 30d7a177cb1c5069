package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/taskapp/internal/board"
	"github.com/pablasso/taskapp/internal/task"
	"github.com/pablasso/taskapp/internal/tui/components"
	"github.com/pablasso/taskapp/internal/tui/msgs"
	"github.com/pablasso/taskapp/internal/tui/styles"
)

// listChromeHeight is filter bar + completion bar + spacer + status bar.
const listChromeHeight = 4

// ListModel is the model for the task card list and its filter bar.
type ListModel struct {
	board     board.State
	search    textinput.Model
	searching bool
	cursor    int
	cardSpans [][2]int // first and last viewport line of each visible card
	viewport  components.ScrollViewport
	width     int
	height    int
}

// NewListModel creates an empty list waiting for its first load.
func NewListModel() ListModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search by title"
	ti.CharLimit = 128
	ti.Width = 24

	return ListModel{
		board:    board.New(),
		search:   ti,
		viewport: components.NewScrollViewport(0, 0),
	}
}

// Init implements tea.Model.
func (m ListModel) Init() tea.Cmd {
	return nil
}

// Resync replaces the cached collection, keeping the cursor on the same task
// when it is still visible.
func (m *ListModel) Resync(tasks []task.Record) {
	selected, hadSelection := m.Selected()
	m.board = m.board.Resync(tasks)

	if hadSelection {
		for i, t := range m.board.Visible() {
			if t.ID == selected.ID {
				m.cursor = i
				break
			}
		}
	}
	m.refresh()
}

// Update implements tea.Model.
func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m ListModel) handleSearchKey(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.board.Criteria().Query {
		m.board = m.board.SetQuery(m.search.Value())
		m.cursor = 0
		m.viewport.GotoTop()
		m.refresh()
	}
	return m, cmd
}

func (m ListModel) handleKey(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.scrollToCursor()
		}
	case "down", "j":
		if m.cursor < len(m.board.Visible())-1 {
			m.cursor++
			m.scrollToCursor()
		}
	case "home", "g":
		m.cursor = 0
		m.scrollToCursor()
	case "end", "G":
		m.cursor = max(len(m.board.Visible())-1, 0)
		m.scrollToCursor()
	case "/":
		m.searching = true
		return m, m.search.Focus()
	case "s":
		m.board = m.board.SetStatusFilter(board.NextStatus(m.board.Criteria().Status))
		m.filtersChanged()
	case "p":
		m.board = m.board.SetPriorityFilter(board.NextPriority(m.board.Criteria().Priority))
		m.filtersChanged()
	case "x":
		m.board = m.board.ClearFilters()
		m.search.SetValue("")
		m.filtersChanged()
	case "r":
		return m, func() tea.Msg { return msgs.RefreshMsg{} }
	case "a":
		return m, func() tea.Msg { return msgs.OpenFormMsg{} }
	case "e":
		if t, ok := m.Selected(); ok {
			return m, func() tea.Msg { return msgs.OpenFormMsg{ID: t.ID} }
		}
	case "d":
		if t, ok := m.Selected(); ok {
			return m, func() tea.Msg { return msgs.DeleteTaskMsg{ID: t.ID} }
		}
	case "enter":
		if t, ok := m.Selected(); ok {
			return m, func() tea.Msg { return msgs.OpenDetailMsg{ID: t.ID} }
		}
	}
	return m, nil
}

func (m *ListModel) filtersChanged() {
	m.cursor = 0
	m.viewport.GotoTop()
	m.refresh()
}

// refresh re-renders the cards into the viewport and clamps the cursor.
func (m *ListModel) refresh() {
	visible := m.board.Visible()
	m.cursor = min(m.cursor, max(len(visible)-1, 0))

	width := m.viewport.ContentWidth()
	if width <= 0 {
		m.cardSpans = nil
		m.viewport.SetLines(nil)
		return
	}

	var lines []string
	m.cardSpans = make([][2]int, len(visible))
	for i, t := range visible {
		top := len(lines)
		card := components.RenderCard(t, width, i == m.cursor)
		lines = append(lines, strings.Split(card, "\n")...)
		m.cardSpans[i] = [2]int{top, len(lines) - 1}
	}
	m.viewport.SetLines(lines)
}

func (m *ListModel) scrollToCursor() {
	m.refresh()
	if m.cursor >= len(m.cardSpans) {
		return
	}
	span := m.cardSpans[m.cursor]
	m.viewport.ShowRange(span[0], span[1])
}

// View implements tea.Model.
func (m ListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")
	counts := m.board.Counts()
	b.WriteString(styles.SubtleStyle.Render(components.NewCompletion(counts.Completed, counts.Total, 20).View()))
	b.WriteString("\n\n")

	bodyHeight := max(m.height-listChromeHeight, 1)
	switch {
	case !m.board.Loaded():
		b.WriteString(placeBody(m.width, bodyHeight, styles.SubtleStyle.Render("Loading tasks...")))
	case counts.Total == 0:
		b.WriteString(placeBody(m.width, bodyHeight, "No tasks yet. Press 'a' to add one."))
	case len(m.board.Visible()) == 0:
		b.WriteString(placeBody(m.width, bodyHeight, "No tasks match the current filters. Press 'x' to clear them."))
	default:
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")

	b.WriteString(m.hintBar().Render(m.width))

	return b.String()
}

func (m ListModel) renderFilterBar() string {
	criteria := m.board.Criteria()

	statusLabel := "All"
	if criteria.Status != "" {
		statusLabel = criteria.Status.Label()
	}
	priorityLabel := "All"
	if criteria.Priority != "" {
		priorityLabel = criteria.Priority.Label()
	}

	search := m.search.View()
	if m.searching {
		search = styles.SelectedStyle.Render(search)
	}

	return search + "   " +
		styles.SubtleStyle.Render("Status: ") + statusLabel + "   " +
		styles.SubtleStyle.Render("Priority: ") + priorityLabel
}

var (
	searchHints = []components.Hint{{Key: "Enter/Esc", Action: "Done"}}
	listHints   = []components.Hint{
		{Key: "↑↓", Action: "Navigate"},
		{Key: "Enter", Action: "Details"},
		{Key: "a", Action: "Add"},
		{Key: "e", Action: "Edit"},
		{Key: "d", Action: "Delete"},
		{Key: "/", Action: "Search"},
		{Key: "s", Action: "Status"},
		{Key: "p", Action: "Priority"},
		{Key: "x", Action: "Clear"},
		{Key: "r", Action: "Refresh"},
		{Key: "q", Action: "Quit"},
	}
)

func (m ListModel) hintBar() components.HintBar {
	if m.searching {
		return components.HintBar{Hints: searchHints, Note: "Type to filter"}
	}
	return components.HintBar{Hints: listHints}
}

func placeBody(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// SetSize updates the model dimensions.
func (m *ListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = max(min(width/3, 40), 10)
	m.viewport.SetSize(width, max(height-listChromeHeight, 1))
	m.refresh()
}

// Selected returns the task under the cursor.
func (m ListModel) Selected() (task.Record, bool) {
	visible := m.board.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return task.Record{}, false
	}
	return visible[m.cursor], true
}

// Board returns the current application state.
func (m ListModel) Board() board.State {
	return m.board
}

// Cursor returns the index of the selected visible task.
func (m ListModel) Cursor() int {
	return m.cursor
}

// Searching reports whether the search input has focus.
func (m ListModel) Searching() bool {
	return m.searching
}
