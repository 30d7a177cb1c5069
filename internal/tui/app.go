// Package tui is the interactive task board: a card list with filters, an
// add/edit form overlay and a detail panel, all backed by a remote store.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/taskapp/internal/form"
	"github.com/pablasso/taskapp/internal/store"
	"github.com/pablasso/taskapp/internal/tui/components"
	"github.com/pablasso/taskapp/internal/tui/msgs"
	"github.com/pablasso/taskapp/internal/tui/styles"
	"github.com/pablasso/taskapp/internal/tui/views"
	"github.com/rs/zerolog"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewList View = iota
	ViewForm
	ViewDetail
)

// Minimum terminal dimensions.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 20
)

// headerHeight is the title line plus the toast line.
const headerHeight = 2

// Toast texts for successful mutations.
const (
	toastCreated = "Task created successfully"
	toastUpdated = "Task updated successfully"
	toastDeleted = "Task deleted successfully"
)

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	width       int
	height      int

	list   views.ListModel
	form   views.FormModel
	detail views.DetailModel

	client  store.API
	log     zerolog.Logger
	toasts  components.Toasts
	spinner spinner.Model
	pending int // store calls in flight
}

// Run starts the TUI application.
func Run(opts Options) error {
	if opts.Client == nil {
		return errors.New("tui: a store client is required")
	}

	p := tea.NewProgram(
		newModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

func newModel(opts Options) Model {
	duration := opts.ToastDuration
	if duration <= 0 {
		duration = DefaultToastDuration
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	return Model{
		currentView: ViewList,
		list:        views.NewListModel(),
		form:        views.NewFormModel(),
		client:      opts.Client,
		log:         opts.Log,
		toasts:      components.NewToasts(duration),
		spinner:     s,
		pending:     1, // the list call issued by Init
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadTasks(m.client))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViews()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateCurrentView(msg)

	case spinner.TickMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
		if m.currentView == ViewDetail {
			m.detail, cmd = m.detail.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case components.ToastExpiredMsg:
		m.toasts = m.toasts.Expire(msg.ID)
		return m, nil

	// Navigation

	case msgs.GoToListMsg:
		m.currentView = ViewList
		return m, nil

	case msgs.OpenFormMsg:
		if msg.ID.IsZero() {
			m.form = views.NewFormModel()
			m.resizeViews()
			m.currentView = ViewForm
			return m, m.form.Init()
		}
		return m, m.track(fetchForEdit(m.client, msg.ID))

	case msgs.OpenDetailMsg:
		m.detail = views.NewDetailModel(msg.ID)
		m.resizeViews()
		m.currentView = ViewDetail
		return m, tea.Batch(m.detail.Init(), m.track(fetchForDetail(m.client, msg.ID)))

	// Intents

	case msgs.RefreshMsg:
		return m, m.track(loadTasks(m.client))

	case msgs.DeleteTaskMsg:
		m.log.Debug().Str("id", msg.ID.String()).Msg("deleting task")
		return m, m.track(deleteTask(m.client, msg.ID))

	case msgs.SubmitTaskMsg:
		m.log.Debug().Str("mode", msg.Submission.Mode.String()).Str("id", msg.Submission.ID.String()).Msg("saving task")
		return m, m.track(saveTask(m.client, msg.Submission))

	// Store results

	case msgs.TasksLoadedMsg:
		m.done()
		m.list.Resync(msg.Tasks)
		return m, nil

	case msgs.TasksLoadFailedMsg:
		m.done()
		return m, m.notifyError("list", msg.Err)

	case msgs.DetailLoadedMsg:
		m.done()
		if m.currentView == ViewDetail && m.detail.ID() == msg.ID {
			rec := msg.Task
			rec.ID = msg.ID
			m.detail.SetTask(rec)
		}
		return m, nil

	case msgs.EditLoadedMsg:
		m.done()
		rec := msg.Task
		rec.ID = msg.ID
		m.form = views.NewFormModel()
		m.form.Load(rec)
		m.resizeViews()
		m.currentView = ViewForm
		return m, m.form.Init()

	case msgs.FetchFailedMsg:
		m.done()
		if m.currentView == ViewDetail && m.detail.ID() == msg.ID {
			m.detail.SetError(msg.Err)
		}
		return m, m.notifyError("get", msg.Err)

	case msgs.TaskSavedMsg:
		m.done()
		m.form.Complete()
		if m.currentView == ViewForm {
			m.currentView = ViewList
		}
		text := toastCreated
		if msg.Mode == form.ModeEdit {
			text = toastUpdated
		}
		return m, tea.Batch(m.notifySuccess(text), m.track(loadTasks(m.client)))

	case msgs.TaskSaveFailedMsg:
		m.done()
		m.form.SubmitFailed()
		return m, m.notifyError(msg.Mode.String(), msg.Err)

	case msgs.TaskDeletedMsg:
		m.done()
		return m, tea.Batch(m.notifySuccess(toastDeleted), m.track(loadTasks(m.client)))

	case msgs.TaskDeleteFailedMsg:
		m.done()
		return m, m.notifyError("delete", msg.Err)
	}

	return m.updateCurrentView(msg)
}

func (m Model) updateCurrentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewList:
		m.list, cmd = m.list.Update(msg)
	case ViewForm:
		m.form, cmd = m.form.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

// track counts cmd as an in-flight store call.
func (m *Model) track(cmd tea.Cmd) tea.Cmd {
	m.pending++
	return cmd
}

func (m *Model) done() {
	if m.pending > 0 {
		m.pending--
	}
}

func (m *Model) notifySuccess(text string) tea.Cmd {
	var cmd tea.Cmd
	m.toasts, cmd = m.toasts.Success(text)
	return cmd
}

func (m *Model) notifyError(op string, err error) tea.Cmd {
	m.log.Warn().Err(err).Str("op", op).Msg("store call failed")
	var cmd tea.Cmd
	m.toasts, cmd = m.toasts.Error(store.Message(err))
	return cmd
}

func (m *Model) resizeViews() {
	if m.width == 0 || m.height == 0 {
		return
	}
	bodyHeight := max(m.height-headerHeight, 1)
	m.list.SetSize(m.width, bodyHeight)
	m.form.SetSize(m.width, bodyHeight)
	m.detail.SetSize(m.width, bodyHeight)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}

	header := styles.TitleStyle.Render("Task Board")
	if m.pending > 0 {
		header += " " + m.spinner.View() + styles.SubtleStyle.Render(" syncing")
	}

	var body string
	switch m.currentView {
	case ViewList:
		body = m.list.View()
	case ViewForm:
		body = m.form.View()
	case ViewDetail:
		body = m.detail.View()
	}

	return header + "\n" + m.toasts.View() + "\n" + body
}

func (m Model) renderTerminalTooSmall() string {
	msg := fmt.Sprintf(
		"Terminal too small\n\nMinimum: %dx%d\nCurrent: %dx%d",
		MinTerminalWidth, MinTerminalHeight, m.width, m.height,
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, styles.ErrorStyle.Render(msg))
}

// CurrentView returns the active screen.
func (m Model) CurrentView() View {
	return m.currentView
}

// Pending returns the number of store calls in flight.
func (m Model) Pending() int {
	return m.pending
}
