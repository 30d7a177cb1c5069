package store

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches errors for records the store does not have.
var ErrNotFound = errors.New("task not found")

// Error is returned by every Client operation. Either StatusCode is set (the
// store answered with a non-2xx status) or Err is (the request never completed).
type Error struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request failed with status code %d", e.StatusCode)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports 404 responses as ErrNotFound.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Message returns the human-readable text shown to the user for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Error()
	}
	return err.Error()
}
