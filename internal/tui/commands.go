package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/taskapp/internal/form"
	"github.com/pablasso/taskapp/internal/store"
	"github.com/pablasso/taskapp/internal/task"
	"github.com/pablasso/taskapp/internal/tui/msgs"
)

// Store commands run on Bubble Tea's goroutines and report back with a
// message. None of them is cancelled; the last list response to arrive wins.

func loadTasks(c store.Lister) tea.Cmd {
	return func() tea.Msg {
		tasks, err := c.List(context.Background())
		if err != nil {
			return msgs.TasksLoadFailedMsg{Err: err}
		}
		return msgs.TasksLoadedMsg{Tasks: tasks}
	}
}

func fetchForDetail(c store.Getter, id task.ID) tea.Cmd {
	return func() tea.Msg {
		rec, err := c.Get(context.Background(), id)
		if err != nil {
			return msgs.FetchFailedMsg{ID: id, Err: err}
		}
		return msgs.DetailLoadedMsg{ID: id, Task: rec}
	}
}

func fetchForEdit(c store.Getter, id task.ID) tea.Cmd {
	return func() tea.Msg {
		rec, err := c.Get(context.Background(), id)
		if err != nil {
			return msgs.FetchFailedMsg{ID: id, Err: err}
		}
		return msgs.EditLoadedMsg{ID: id, Task: rec}
	}
}

func saveTask(c store.Saver, s form.Submission) tea.Cmd {
	return func() tea.Msg {
		saved, err := form.Send(context.Background(), c, s)
		if err != nil {
			return msgs.TaskSaveFailedMsg{Mode: s.Mode, Err: err}
		}
		return msgs.TaskSavedMsg{Mode: s.Mode, Task: saved}
	}
}

func deleteTask(c store.Deleter, id task.ID) tea.Cmd {
	return func() tea.Msg {
		if err := c.Delete(context.Background(), id); err != nil {
			return msgs.TaskDeleteFailedMsg{ID: id, Err: err}
		}
		return msgs.TaskDeletedMsg{ID: id}
	}
}
