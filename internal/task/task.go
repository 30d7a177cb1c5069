package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is the store-assigned identifier of a task record.
// Stores may hand out numeric or string identifiers; both decode into ID.
type ID string

// String returns the identifier as text.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether no identifier has been assigned.
func (id ID) IsZero() bool {
	return id == ""
}

// MarshalJSON writes all-digit identifiers as JSON numbers so numeric stores
// see the same type they handed out.
func (id ID) MarshalJSON() ([]byte, error) {
	if id != "" && isDigits(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid task id %s: %w", string(data), err)
	}
	*id = ID(n.String())
	return nil
}

func isDigits(s string) bool {
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

// Priority is the urgency of a task.
type Priority string

// Priority values
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists the priorities in display order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Label returns the human-facing name of the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return string(p)
	}
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ParsePriority parses a priority value, accepting any letter case.
func ParsePriority(value string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(value)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q (valid: high, medium, low)", value)
	}
	return p, nil
}

// Status is the progress state of a task.
type Status string

// Status values
const (
	StatusInProcess Status = "inprocess"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Statuses lists the statuses in display order.
var Statuses = []Status{StatusInProcess, StatusPending, StatusCompleted}

// Label returns the human-facing name of the status.
func (s Status) Label() string {
	switch s {
	case StatusInProcess:
		return "In progress"
	case StatusPending:
		return "Pending"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusInProcess, StatusPending, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus parses a status value, accepting any letter case.
func ParseStatus(value string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(value)))
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q (valid: inprocess, pending, completed)", value)
	}
	return s, nil
}

// Record is a task as exchanged with the remote store.
type Record struct {
	ID          ID       `json:"id,omitempty"`
	Title       string   `json:"task_title"`
	Description string   `json:"task_desc"`
	DueDate     string   `json:"task_duedate"`
	Priority    Priority `json:"task_priority"`
	AssignedTo  string   `json:"task_assigned_to"`
	Tags        string   `json:"task_tags"`
	Status      Status   `json:"task_status"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// UnmarshalJSON decodes a record, also accepting the misspelled assignee key
// written by older stores.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	var aux struct {
		plain
		LegacyAssignedTo *string `json:"task_assgined_to"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = Record(aux.plain)
	if r.AssignedTo == "" && aux.LegacyAssignedTo != nil {
		r.AssignedTo = *aux.LegacyAssignedTo
	}
	return nil
}
