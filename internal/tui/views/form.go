package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/taskapp/internal/form"
	"github.com/pablasso/taskapp/internal/task"
	"github.com/pablasso/taskapp/internal/tui/components"
	"github.com/pablasso/taskapp/internal/tui/msgs"
	"github.com/pablasso/taskapp/internal/tui/styles"
)

const (
	formLabelWidth = 13
	formInputWidth = 44
	formDescHeight = 3
	formDescLimit  = 2000
	formInputLimit = 256

	fieldCount = int(form.FieldAssignedTo) + 1
)

// textFields are the fields edited through a single-line text input.
var textFields = []form.Field{form.FieldTitle, form.FieldDueDate, form.FieldTags, form.FieldAssignedTo}

// Select options, with the empty "nothing chosen" entry first.
var (
	priorityOptions = []string{"", string(task.PriorityHigh), string(task.PriorityMedium), string(task.PriorityLow)}
	statusOptions   = []string{"", string(task.StatusInProcess), string(task.StatusPending), string(task.StatusCompleted)}
)

// FormModel is the add/edit overlay. Field state lives in a form.Controller;
// the bubbles inputs only handle editing.
type FormModel struct {
	controller form.Controller
	inputs     [fieldCount]textinput.Model // indexed by field; only textFields are used
	desc       textarea.Model
	focus      form.Field
	submitting bool
	now        func() time.Time
	width      int
	height     int
}

// NewFormModel creates an empty form in create mode.
func NewFormModel() FormModel {
	m := FormModel{
		controller: form.NewController(),
		now:        time.Now,
	}

	for _, f := range textFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder()
		ti.CharLimit = formInputLimit
		ti.Width = formInputWidth
		m.inputs[f] = ti
	}

	ta := textarea.New()
	ta.Prompt = ""
	ta.Placeholder = form.FieldDescription.Placeholder()
	ta.ShowLineNumbers = false
	ta.CharLimit = formDescLimit
	ta.SetWidth(formInputWidth)
	ta.SetHeight(formDescHeight)
	m.desc = ta

	m.focusField(form.FieldTitle)
	return m
}

// Init implements tea.Model.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Load switches the form to edit mode for rec.
func (m *FormModel) Load(rec task.Record) {
	m.controller.Load(rec)
	m.syncInputs()
	m.submitting = false
	m.focusField(form.FieldTitle)
}

// Complete resets the form after the store accepted a submission.
func (m *FormModel) Complete() {
	m.controller.Complete()
	m.syncInputs()
	m.submitting = false
	m.focusField(form.FieldTitle)
}

// SubmitFailed re-enables the form after the store rejected a submission.
// Field values are kept as they were.
func (m *FormModel) SubmitFailed() {
	m.submitting = false
}

// Update implements tea.Model.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m.updateFocused(msg)
}

func (m FormModel) handleKeyPress(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.controller.Reset()
		m.syncInputs()
		return m, func() tea.Msg { return msgs.GoToListMsg{} }

	case "ctrl+s":
		return m.submit()

	case "tab":
		return m, m.moveFocus(1)

	case "shift+tab":
		return m, m.moveFocus(-1)

	case "enter":
		if m.focus != form.FieldDescription {
			return m, m.moveFocus(1)
		}
	}

	switch m.focus {
	case form.FieldPriority:
		m.cycleSelect(msg, priorityOptions)
		return m, nil
	case form.FieldStatus:
		m.cycleSelect(msg, statusOptions)
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m FormModel) submit() (FormModel, tea.Cmd) {
	s, err := m.controller.Prepare(m.now())
	if err != nil {
		return m, nil
	}
	m.submitting = true
	return m, func() tea.Msg { return msgs.SubmitTaskMsg{Submission: s} }
}

func (m *FormModel) cycleSelect(msg tea.KeyMsg, options []string) {
	step := 0
	switch msg.String() {
	case "right", "l", " ":
		step = 1
	case "left", "h":
		step = -1
	default:
		return
	}

	current := 0
	for i, opt := range options {
		if opt == m.controller.Value(m.focus) {
			current = i
			break
		}
	}
	next := (current + step + len(options)) % len(options)
	m.controller.Set(m.focus, options[next])
}

// updateFocused forwards msg to the focused input and copies its value into
// the controller.
func (m FormModel) updateFocused(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case form.FieldDescription:
		m.desc, cmd = m.desc.Update(msg)
		m.controller.Set(m.focus, m.desc.Value())
	case form.FieldPriority, form.FieldStatus:
	default:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.controller.Set(m.focus, m.inputs[m.focus].Value())
	}
	return m, cmd
}

// moveFocus marks the current field touched and focuses its neighbour.
func (m *FormModel) moveFocus(delta int) tea.Cmd {
	m.controller.Touch(m.focus)
	n := len(form.Fields)
	next := form.Fields[(int(m.focus)+delta+n)%n]
	return m.focusField(next)
}

func (m *FormModel) focusField(f form.Field) tea.Cmd {
	for _, field := range textFields {
		m.inputs[field].Blur()
	}
	m.desc.Blur()
	m.focus = f

	switch f {
	case form.FieldDescription:
		return m.desc.Focus()
	case form.FieldPriority, form.FieldStatus:
		return nil
	default:
		return m.inputs[f].Focus()
	}
}

// syncInputs copies the controller values into the widgets.
func (m *FormModel) syncInputs() {
	for _, f := range textFields {
		m.inputs[f].SetValue(m.controller.Value(f))
	}
	m.desc.SetValue(m.controller.Value(form.FieldDescription))
}

// View implements tea.Model.
func (m FormModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	title := "Add Task"
	if m.controller.Mode() == form.ModeEdit {
		title = "Edit Task"
	}

	var rows []string
	rows = append(rows, styles.TitleStyle.Render(title), "")
	for _, f := range form.Fields {
		rows = append(rows, m.renderField(f))
		if errMsg := m.controller.VisibleError(f); errMsg != "" {
			rows = append(rows, strings.Repeat(" ", formLabelWidth)+styles.ErrorStyle.Render(errMsg))
		}
	}
	if m.submitting {
		rows = append(rows, "", styles.SubtleStyle.Render("Saving..."))
	}

	box := styles.BoxStyle.Padding(0, 2).Render(strings.Join(rows, "\n"))
	body := lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, box)

	return body + "\n" + m.hintBar().Render(m.width)
}

func (m FormModel) renderField(f form.Field) string {
	label := lipgloss.NewStyle().Width(formLabelWidth).Render(f.Label())
	if f == m.focus {
		label = styles.SelectedStyle.Width(formLabelWidth).Render(f.Label())
	}

	var input string
	switch f {
	case form.FieldDescription:
		input = m.desc.View()
	case form.FieldPriority:
		input = m.renderSelect(f, task.Priority(m.controller.Value(f)).Label())
	case form.FieldStatus:
		input = m.renderSelect(f, task.Status(m.controller.Value(f)).Label())
	default:
		input = m.inputs[f].View()
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, label, input)
}

func (m FormModel) renderSelect(f form.Field, label string) string {
	if m.controller.Value(f) == "" {
		label = styles.SubtleStyle.Render(f.Placeholder())
	}
	if f == m.focus {
		return styles.SelectedStyle.Render("‹ ") + label + styles.SelectedStyle.Render(" ›")
	}
	return "  " + label
}

func (m FormModel) hintBar() components.HintBar {
	if m.submitting {
		return components.HintBar{Note: "Saving..."}
	}
	hints := []components.Hint{{Key: "Tab", Action: "Next"}, {Key: "Shift+Tab", Action: "Prev"}}
	if m.focus == form.FieldPriority || m.focus == form.FieldStatus {
		hints = append(hints, components.Hint{Key: "←→", Action: "Choose"})
	}
	hints = append(hints, components.Hint{Key: "Ctrl+S", Action: "Save"}, components.Hint{Key: "Esc", Action: "Cancel"})
	return components.HintBar{Hints: hints}
}

// SetSize updates the model dimensions.
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetClock replaces the time source used to stamp submissions.
func (m *FormModel) SetClock(now func() time.Time) {
	m.now = now
}

// Controller returns the underlying form state.
func (m FormModel) Controller() form.Controller {
	return m.controller
}

// Focus returns the focused field.
func (m FormModel) Focus() form.Field {
	return m.focus
}

// Submitting reports whether a submission is waiting for the store.
func (m FormModel) Submitting() bool {
	return m.submitting
}
