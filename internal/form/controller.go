// Package form implements the task form as an explicit state machine: per-field
// values, per-field touched flags and per-field errors recomputed by Validate.
//
// A Controller is in create mode until Load binds an existing record, and
// returns to create mode after a successful submit or a Reset.
package form

import (
	"context"
	"time"

	"github.com/pablasso/taskapp/internal/store"
	"github.com/pablasso/taskapp/internal/task"
)

// Mode tells whether a submit creates or updates.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Submission is a validated, stamped record ready to be sent to the store.
type Submission struct {
	Mode   Mode
	ID     task.ID
	Record task.Record
}

// Controller holds the state of a single task form.
type Controller struct {
	values  Values
	id      task.ID
	touched fieldSet
}

// NewController returns an empty form in create mode.
func NewController() Controller {
	return Controller{}
}

// Mode returns ModeEdit when a record is bound.
func (c Controller) Mode() Mode {
	if c.id.IsZero() {
		return ModeCreate
	}
	return ModeEdit
}

// ID returns the bound record id (empty in create mode).
func (c Controller) ID() task.ID {
	return c.id
}

// Values returns the current field values.
func (c Controller) Values() Values {
	return c.values
}

// Value returns the current value of f.
func (c Controller) Value(f Field) string {
	switch f {
	case FieldTitle:
		return c.values.Title
	case FieldDescription:
		return c.values.Description
	case FieldDueDate:
		return c.values.DueDate
	case FieldPriority:
		return c.values.Priority
	case FieldTags:
		return c.values.Tags
	case FieldStatus:
		return c.values.Status
	case FieldAssignedTo:
		return c.values.AssignedTo
	}
	return ""
}

// Set updates the value of f.
func (c *Controller) Set(f Field, value string) {
	switch f {
	case FieldTitle:
		c.values.Title = value
	case FieldDescription:
		c.values.Description = value
	case FieldDueDate:
		c.values.DueDate = value
	case FieldPriority:
		c.values.Priority = value
	case FieldTags:
		c.values.Tags = value
	case FieldStatus:
		c.values.Status = value
	case FieldAssignedTo:
		c.values.AssignedTo = value
	}
}

// Touch marks f as interacted with, making its error visible.
func (c *Controller) Touch(f Field) {
	c.touched = c.touched.with(f)
}

// Touched reports whether f has been interacted with.
func (c Controller) Touched(f Field) bool {
	return c.touched.has(f)
}

// Errors returns the current validation errors for every field.
func (c Controller) Errors() map[Field]string {
	return Validate(c.values)
}

// Error returns the validation error of f, touched or not.
func (c Controller) Error(f Field) string {
	return c.Errors()[f]
}

// VisibleError returns the error of f only once f has been touched.
func (c Controller) VisibleError(f Field) string {
	if !c.Touched(f) {
		return ""
	}
	return c.Error(f)
}

// Valid reports whether the form can be submitted.
func (c Controller) Valid() bool {
	return len(c.Errors()) == 0
}

// Load switches to edit mode, pre-filled from rec.
func (c *Controller) Load(rec task.Record) {
	*c = Controller{
		id: rec.ID,
		values: Values{
			Title:       rec.Title,
			Description: rec.Description,
			DueDate:     rec.DueDate,
			Priority:    string(rec.Priority),
			Tags:        rec.Tags,
			Status:      string(rec.Status),
			AssignedTo:  rec.AssignedTo,
			CreatedAt:   rec.CreatedAt,
			UpdatedAt:   rec.UpdatedAt,
		},
	}
}

// Reset clears every field and returns to create mode.
func (c *Controller) Reset() {
	*c = Controller{}
}

// Record converts the current values into a task record.
func (c Controller) Record() task.Record {
	return task.Record{
		ID:          c.id,
		Title:       c.values.Title,
		Description: c.values.Description,
		DueDate:     c.values.DueDate,
		Priority:    task.Priority(c.values.Priority),
		AssignedTo:  c.values.AssignedTo,
		Tags:        c.values.Tags,
		Status:      task.Status(c.values.Status),
		CreatedAt:   c.values.CreatedAt,
		UpdatedAt:   c.values.UpdatedAt,
	}
}

// Prepare touches every field and validates. On success it returns the record
// to send, with created_at (create) or updated_at (edit) stamped from now.
// The form itself is not modified beyond the touched flags.
func (c *Controller) Prepare(now time.Time) (Submission, error) {
	for _, f := range Fields {
		c.Touch(f)
	}
	if errs := c.Errors(); len(errs) > 0 {
		return Submission{}, &ValidationError{Fields: errs}
	}

	rec := c.Record()
	mode := c.Mode()
	if mode == ModeEdit {
		rec.UpdatedAt = task.Stamp(now)
	} else {
		rec.CreatedAt = task.Stamp(now)
		rec.UpdatedAt = ""
	}
	return Submission{Mode: mode, ID: c.id, Record: rec}, nil
}

// Complete finishes a successful submit by resetting to create mode.
func (c *Controller) Complete() {
	c.Reset()
}

// Send issues the create or update call for s.
func Send(ctx context.Context, saver store.Saver, s Submission) (task.Record, error) {
	if s.Mode == ModeEdit {
		return saver.Update(ctx, s.ID, s.Record)
	}
	return saver.Create(ctx, s.Record)
}

// Submit validates, sends and, on success, resets the form. On failure the
// field values and mode are left unchanged.
func (c *Controller) Submit(ctx context.Context, saver store.Saver, now time.Time) (task.Record, error) {
	s, err := c.Prepare(now)
	if err != nil {
		return task.Record{}, err
	}

	saved, err := Send(ctx, saver, s)
	if err != nil {
		return task.Record{}, err
	}

	c.Complete()
	return saved, nil
}
