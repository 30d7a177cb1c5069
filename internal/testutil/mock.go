// Package testutil provides testing utilities for the taskapp project.
package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pablasso/taskapp/internal/server"
	"github.com/pablasso/taskapp/internal/task"
	"github.com/rs/zerolog"
)

// StoreServer is a development store running on a local httptest listener.
type StoreServer struct {
	*httptest.Server
	Repo *server.TaskRepository
}

// BaseURL returns the collection URL clients should use.
func (s *StoreServer) BaseURL() string {
	return s.URL + server.CollectionPath
}

// NewStoreServer starts an empty in-memory store and registers cleanup.
func NewStoreServer(t *testing.T) *StoreServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	repo := server.NewTaskRepository()
	srv := httptest.NewServer(server.NewEngine(repo, zerolog.Nop()))
	t.Cleanup(srv.Close)

	return &StoreServer{Server: srv, Repo: repo}
}

// SeedTasks inserts records directly into the repository and returns them
// with their assigned ids.
func SeedTasks(t *testing.T, s *StoreServer, records ...task.Record) []task.Record {
	t.Helper()

	seeded := make([]task.Record, 0, len(records))
	for _, r := range records {
		created, err := s.Repo.Create(r)
		if err != nil {
			t.Fatalf("failed to seed task %q: %v", r.Title, err)
		}
		seeded = append(seeded, created)
	}
	return seeded
}

// SampleTask returns a fully populated record that passes form validation.
func SampleTask(title string) task.Record {
	return task.Record{
		Title:       title,
		Description: "Details for " + title,
		DueDate:     "2030-01-15",
		Priority:    task.PriorityMedium,
		AssignedTo:  "sam",
		Tags:        "work, home",
		Status:      task.StatusPending,
		CreatedAt:   "2030-01-01T09:00:00.000Z",
	}
}
