// Package msgs defines shared message types for TUI view transitions and
// store results.
package msgs

import (
	"github.com/pablasso/taskapp/internal/form"
	"github.com/pablasso/taskapp/internal/task"
)

// View transition messages

// GoToListMsg closes the form or detail panel and returns to the list.
type GoToListMsg struct{}

// OpenFormMsg opens the task form. An empty ID opens it in create mode;
// otherwise the record is fetched and edited.
type OpenFormMsg struct {
	ID task.ID
}

// OpenDetailMsg opens the detail panel for a task.
type OpenDetailMsg struct {
	ID task.ID
}

// User intents that reach the store

// RefreshMsg requests a fresh copy of the collection.
type RefreshMsg struct{}

// DeleteTaskMsg requests deletion of a task.
type DeleteTaskMsg struct {
	ID task.ID
}

// SubmitTaskMsg carries a validated form submission.
type SubmitTaskMsg struct {
	Submission form.Submission
}

// Store results

// TasksLoadedMsg carries the whole collection after a list call.
type TasksLoadedMsg struct {
	Tasks []task.Record
}

// TasksLoadFailedMsg is sent when a list call fails.
type TasksLoadFailedMsg struct {
	Err error
}

// DetailLoadedMsg carries a record fetched for the detail panel. ID is the
// id that was requested, whatever the record body says.
type DetailLoadedMsg struct {
	ID   task.ID
	Task task.Record
}

// EditLoadedMsg carries a record fetched to pre-fill the form. The form is
// bound to ID, not to the id in the record body.
type EditLoadedMsg struct {
	ID   task.ID
	Task task.Record
}

// FetchFailedMsg is sent when a get call fails.
type FetchFailedMsg struct {
	ID  task.ID
	Err error
}

// TaskSavedMsg is sent after a successful create or update.
type TaskSavedMsg struct {
	Mode form.Mode
	Task task.Record
}

// TaskSaveFailedMsg is sent when a create or update fails.
type TaskSaveFailedMsg struct {
	Mode form.Mode
	Err  error
}

// TaskDeletedMsg is sent after a successful delete.
type TaskDeletedMsg struct {
	ID task.ID
}

// TaskDeleteFailedMsg is sent when a delete fails.
type TaskDeleteFailedMsg struct {
	ID  task.ID
	Err error
}
