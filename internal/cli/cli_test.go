package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pablasso/taskapp/internal/store"
	"github.com/pablasso/taskapp/internal/task"
	"github.com/pablasso/taskapp/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command against srv and captures its output.
func execute(t *testing.T, srv *testutil.StoreServer, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("TASKAPP_LOG_FILE", "")
	t.Setenv("TASKAPP_LOG_LEVEL", "error")

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if srv != nil {
		args = append(args, "--base-url", srv.BaseURL())
	}
	cmd.SetArgs(args)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	srv := testutil.NewStoreServer(t)
	done := testutil.SampleTask("Ship release")
	done.Status = task.StatusCompleted
	testutil.SeedTasks(t, srv, testutil.SampleTask("Buy milk"), done)

	out, _, err := execute(t, srv, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Ship release")
	assert.Contains(t, out, "Medium")
}

func TestList_Filters(t *testing.T) {
	srv := testutil.NewStoreServer(t)
	done := testutil.SampleTask("Ship release")
	done.Status = task.StatusCompleted
	high := testutil.SampleTask("Fix outage")
	high.Priority = task.PriorityHigh
	testutil.SeedTasks(t, srv, testutil.SampleTask("Buy milk"), done, high)

	out, _, err := execute(t, srv, "list", "--status", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "Ship release")
	assert.NotContains(t, out, "Buy milk")

	out, _, err = execute(t, srv, "list", "--priority", "HIGH")
	require.NoError(t, err)
	assert.Contains(t, out, "Fix outage")
	assert.NotContains(t, out, "Ship release")

	out, _, err = execute(t, srv, "list", "--query", "MILK")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")
	assert.NotContains(t, out, "Fix outage")

	out, _, err = execute(t, srv, "list", "--query", "nothing like this")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks match the filters.")
}

func TestList_Empty(t *testing.T) {
	srv := testutil.NewStoreServer(t)

	out, _, err := execute(t, srv, "list")
	require.NoError(t, err)
	assert.Equal(t, "No tasks.\n", out)
}

func TestList_InvalidStatus(t *testing.T) {
	srv := testutil.NewStoreServer(t)

	_, _, err := execute(t, srv, "list", "--status", "done")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestShow(t *testing.T) {
	srv := testutil.NewStoreServer(t)
	seeded := testutil.SeedTasks(t, srv, testutil.SampleTask("Buy milk"))

	out, _, err := execute(t, srv, "show", seeded[0].ID.String())
	require.NoError(t, err)
	assert.Contains(t, out, "Details for Buy milk")
	assert.Contains(t, out, "work, home")
	assert.Contains(t, out, "Pending")
	assert.Contains(t, out, "Last updated at:")
}

func TestShow_NotFound(t *testing.T) {
	srv := testutil.NewStoreServer(t)

	_, _, err := execute(t, srv, "show", "42")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAdd(t *testing.T) {
	srv := testutil.NewStoreServer(t)

	out, _, err := execute(t, srv, "add",
		"--title", "Water plants",
		"--desc", "Balcony",
		"--due", "2030-04-01",
		"--priority", "Low",
		"--tags", "home",
		"--status", "pending",
		"--assignee", "jo",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Created task 1: Water plants")

	tasks := srv.Repo.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, task.PriorityLow, tasks[0].Priority)
	assert.Equal(t, task.StatusPending, tasks[0].Status)
	assert.NotEmpty(t, tasks[0].CreatedAt)
	assert.Empty(t, tasks[0].UpdatedAt)
}

func TestAdd_MissingFields(t *testing.T) {
	srv := testutil.NewStoreServer(t)

	_, stderr, err := execute(t, srv, "add", "--title", "Water plants", "--due", "tomorrow")
	require.ErrorIs(t, err, errInvalidTask)
	assert.Contains(t, stderr, "Description: Enter the task description")
	assert.Contains(t, stderr, "Due date: Enter a valid due date (YYYY-MM-DD)")
	assert.Contains(t, stderr, "Task owner: Enter the name of task owner")
	assert.NotContains(t, stderr, "Title:")
	assert.Empty(t, srv.Repo.List())
}

func TestEdit_OnlyChangedFlags(t *testing.T) {
	srv := testutil.NewStoreServer(t)
	seeded := testutil.SeedTasks(t, srv, testutil.SampleTask("Buy milk"))
	id := seeded[0].ID

	out, _, err := execute(t, srv, "edit", id.String(), "--title", "Buy oat milk", "--status", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated task "+id.String())

	got, err := srv.Repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", got.Title)
	assert.Equal(t, task.StatusCompleted, got.Status)
	assert.Equal(t, seeded[0].Description, got.Description)
	assert.Equal(t, seeded[0].Tags, got.Tags)
	assert.Equal(t, seeded[0].CreatedAt, got.CreatedAt)
	assert.NotEmpty(t, got.UpdatedAt)
}

func TestEdit_BindsRequestedID(t *testing.T) {
	var putPath, putBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			// No id in the body.
			io.WriteString(w, `{"task_title":"Buy milk","task_desc":"Two litres","task_duedate":"2030-01-15",`+
				`"task_priority":"medium","task_assigned_to":"sam","task_tags":"home","task_status":"pending"}`)
		case http.MethodPut:
			putPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			putBody = string(body)
			io.WriteString(w, `{"id":7,"task_title":"Buy oat milk"}`)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	t.Cleanup(srv.Close)

	out, _, err := execute(t, nil, "edit", "7", "--title", "Buy oat milk", "--base-url", srv.URL+"/data")
	require.NoError(t, err)
	assert.Equal(t, "/data/7", putPath)
	assert.Contains(t, putBody, `"task_title":"Buy oat milk"`)
	assert.Contains(t, out, "Updated task 7")
}

func TestEdit_ClearingRequiredFieldFails(t *testing.T) {
	srv := testutil.NewStoreServer(t)
	seeded := testutil.SeedTasks(t, srv, testutil.SampleTask("Buy milk"))

	_, stderr, err := execute(t, srv, "edit", seeded[0].ID.String(), "--tags", "")
	require.ErrorIs(t, err, errInvalidTask)
	assert.Contains(t, stderr, "Tags: Enter the tags associated with this task")

	got, err := srv.Repo.Get(seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "work, home", got.Tags)
}

func TestDelete(t *testing.T) {
	srv := testutil.NewStoreServer(t)
	seeded := testutil.SeedTasks(t, srv, testutil.SampleTask("Buy milk"), testutil.SampleTask("Call mom"))

	out, _, err := execute(t, srv, "delete", seeded[0].ID.String())
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted task "+seeded[0].ID.String())

	tasks := srv.Repo.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Call mom", tasks[0].Title)
}

func TestDelete_NotFound(t *testing.T) {
	srv := testutil.NewStoreServer(t)

	_, _, err := execute(t, srv, "delete", "99")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "request failed with status code 404")
}

func TestNetworkError(t *testing.T) {
	srv := testutil.NewStoreServer(t)
	srv.Close()

	_, _, err := execute(t, srv, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network error")
}

func TestInvalidBaseURL(t *testing.T) {
	_, _, err := execute(t, nil, "list", "--base-url", "ftp://example.com/data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid base URL")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "taskapp dev")
}
