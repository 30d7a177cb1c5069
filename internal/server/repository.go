package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"

	"github.com/pablasso/taskapp/internal/task"
)

// ErrTaskNotFound is returned when no record has the requested id.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository keeps the collection in insertion order and optionally
// mirrors it to a JSON file.
type TaskRepository struct {
	mu     sync.RWMutex
	tasks  []task.Record
	nextID int
	path   string // empty means memory only
}

// fileData is the on-disk layout of a persisted collection.
type fileData struct {
	NextID int           `json:"nextId"`
	Tasks  []task.Record `json:"data"`
}

// NewTaskRepository creates an empty in-memory repository.
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{nextID: 1}
}

// OpenTaskRepository loads the collection from path, creating an empty one if
// the file does not exist yet. Every mutation is written back to path.
func OpenTaskRepository(path string) (*TaskRepository, error) {
	r := &TaskRepository{nextID: 1, path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var fd fileData
	if err := json.Unmarshal(data, &fd); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	r.tasks = fd.Tasks
	r.nextID = fd.NextID

	// Files edited by hand may lack nextId; never reuse an existing id.
	for _, t := range r.tasks {
		if n, err := strconv.Atoi(t.ID.String()); err == nil && n >= r.nextID {
			r.nextID = n + 1
		}
	}
	if r.nextID < 1 {
		r.nextID = 1
	}
	return r, nil
}

// List returns a copy of every record.
func (r *TaskRepository) List() []task.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]task.Record, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Get returns the record with the given id.
func (r *TaskRepository) Get(id task.ID) (task.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return task.Record{}, ErrTaskNotFound
	}
	return r.tasks[i], nil
}

// Create assigns the next id to rec and appends it.
func (r *TaskRepository) Create(rec task.Record) (task.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = task.ID(strconv.Itoa(r.nextID))
	tasks := append(slices.Clip(r.tasks), rec)

	if err := r.commit(tasks, r.nextID+1); err != nil {
		return task.Record{}, err
	}
	return rec, nil
}

// Update replaces the record with the given id, keeping the id.
func (r *TaskRepository) Update(id task.ID, rec task.Record) (task.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return task.Record{}, ErrTaskNotFound
	}
	rec.ID = id
	tasks := slices.Clone(r.tasks)
	tasks[i] = rec

	if err := r.commit(tasks, r.nextID); err != nil {
		return task.Record{}, err
	}
	return rec, nil
}

// Delete removes the record with the given id.
func (r *TaskRepository) Delete(id task.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	return r.commit(slices.Delete(slices.Clone(r.tasks), i, i+1), r.nextID)
}

func (r *TaskRepository) indexOf(id task.ID) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// commit writes the new state and only then makes it current, so a failed
// write leaves the collection as it was. Callers hold the write lock.
func (r *TaskRepository) commit(tasks []task.Record, nextID int) error {
	if err := r.persist(tasks, nextID); err != nil {
		return err
	}
	r.tasks = tasks
	r.nextID = nextID
	return nil
}

// persist writes the collection atomically.
func (r *TaskRepository) persist(tasks []task.Record, nextID int) error {
	if r.path == "" {
		return nil
	}

	if tasks == nil {
		tasks = []task.Record{}
	}
	data, err := json.MarshalIndent(fileData{NextID: nextID, Tasks: tasks}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	tmpFile := r.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write data temp file: %w", err)
	}
	if err := os.Rename(tmpFile, r.path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to rename data temp file: %w", err)
	}
	return nil
}
