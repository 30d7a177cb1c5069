// Package board holds the client-side application state: the cached task
// collection and the active filter criteria.
//
// State changes only through its named transitions. Every read derives from
// the current snapshot, so the visible subset is always recomputed.
package board

import (
	"slices"

	"github.com/pablasso/taskapp/internal/task"
)

// Counts summarises the collection by status.
type Counts struct {
	Total     int
	InProcess int
	Pending   int
	Completed int
}

// State is the cached collection plus filter criteria.
type State struct {
	tasks    []task.Record
	criteria task.Criteria
	loaded   bool
}

// New returns an empty state with no filters.
func New() State {
	return State{}
}

// Resync replaces the cached collection wholesale.
func (s State) Resync(tasks []task.Record) State {
	s.tasks = slices.Clone(tasks)
	s.loaded = true
	return s
}

// SetStatusFilter sets or clears (empty) the status predicate.
func (s State) SetStatusFilter(status task.Status) State {
	s.criteria.Status = status
	return s
}

// SetPriorityFilter sets or clears (empty) the priority predicate.
func (s State) SetPriorityFilter(priority task.Priority) State {
	s.criteria.Priority = priority
	return s
}

// SetQuery sets the title search text.
func (s State) SetQuery(query string) State {
	s.criteria.Query = query
	return s
}

// ClearFilters removes every predicate.
func (s State) ClearFilters() State {
	s.criteria = task.Criteria{}
	return s
}

// Criteria returns the active filter criteria.
func (s State) Criteria() task.Criteria {
	return s.criteria
}

// Loaded reports whether at least one Resync has happened.
func (s State) Loaded() bool {
	return s.loaded
}

// All returns the whole cached collection in store order.
func (s State) All() []task.Record {
	return slices.Clone(s.tasks)
}

// Visible returns the filtered subset in store order.
func (s State) Visible() []task.Record {
	return task.Filter(s.tasks, s.criteria)
}

// Find looks a task up by id in the cached collection.
func (s State) Find(id task.ID) (task.Record, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Record{}, false
}

// Counts tallies the whole collection by status, ignoring filters.
func (s State) Counts() Counts {
	c := Counts{Total: len(s.tasks)}
	for _, t := range s.tasks {
		switch t.Status {
		case task.StatusInProcess:
			c.InProcess++
		case task.StatusPending:
			c.Pending++
		case task.StatusCompleted:
			c.Completed++
		}
	}
	return c
}

// NextStatus cycles through "" and every status in display order.
func NextStatus(s task.Status) task.Status {
	if s == "" {
		return task.Statuses[0]
	}
	i := slices.Index(task.Statuses, s)
	if i < 0 || i == len(task.Statuses)-1 {
		return ""
	}
	return task.Statuses[i+1]
}

// NextPriority cycles through "" and every priority in display order.
func NextPriority(p task.Priority) task.Priority {
	if p == "" {
		return task.Priorities[0]
	}
	i := slices.Index(task.Priorities, p)
	if i < 0 || i == len(task.Priorities)-1 {
		return ""
	}
	return task.Priorities[i+1]
}
