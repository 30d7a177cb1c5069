package task

import (
	"strings"
	"time"
)

// DateLayout is the wire layout of due dates.
const DateLayout = "2006-01-02"

// DisplayLayout is the default rendering of stored timestamps.
const DisplayLayout = "Mon Jan 02 2006 15:04:05 MST"

// ParseTags splits a comma-separated tag string and trims each piece.
// Empty segments are kept, so "a,,b" yields ["a", "", "b"].
func ParseTags(tags string) []string {
	parts := strings.Split(tags, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// FormatTimestamp renders a stored timestamp in the local time zone. Empty
// and unparsable values both render as "Invalid Date".
func FormatTimestamp(value string) string {
	t, ok := parseTime(strings.TrimSpace(value))
	if !ok {
		return "Invalid Date"
	}
	return t.Local().Format(DisplayLayout)
}

// FormatDueDate renders a stored due date. Due dates are shown as stored.
func FormatDueDate(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

// Now returns the current time formatted the way records store timestamps.
func Now() string {
	return Stamp(time.Now())
}

// Stamp formats t as a record timestamp (UTC, millisecond precision).
func Stamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func parseTime(value string) (time.Time, bool) {
	layouts := []string{time.RFC3339Nano, time.RFC3339, DateLayout}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
