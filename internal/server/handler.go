package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pablasso/taskapp/internal/task"
)

// TaskHandler serves the task collection.
type TaskHandler struct {
	repo *TaskRepository
}

// NewTaskHandler creates a handler backed by repo.
func NewTaskHandler(repo *TaskRepository) *TaskHandler {
	return &TaskHandler{repo: repo}
}

// List returns every task.
func (h *TaskHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.List())
}

// GetByID returns a single task.
func (h *TaskHandler) GetByID(c *gin.Context) {
	rec, err := h.repo.Get(task.ID(c.Param("id")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Create stores a new task and returns it with its assigned id.
func (h *TaskHandler) Create(c *gin.Context) {
	var rec task.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	created, err := h.repo.Create(rec)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update replaces a task.
func (h *TaskHandler) Update(c *gin.Context) {
	var rec task.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updated, err := h.repo.Update(task.ID(c.Param("id")), rec)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a task.
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(task.ID(c.Param("id"))); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (h *TaskHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tasks"})
}
