package task

import "strings"

// Criteria holds the active filter values. Zero values disable a predicate.
type Criteria struct {
	Status   Status
	Priority Priority
	Query    string
}

// Active reports whether any predicate is enabled.
func (c Criteria) Active() bool {
	return c.Status != "" || c.Priority != "" || c.Query != ""
}

// Matches reports whether r satisfies every enabled predicate.
func (c Criteria) Matches(r Record) bool {
	if c.Status != "" && r.Status != c.Status {
		return false
	}
	if c.Priority != "" && r.Priority != c.Priority {
		return false
	}
	if c.Query != "" && !strings.Contains(strings.ToLower(r.Title), strings.ToLower(c.Query)) {
		return false
	}
	return true
}

// Filter returns the records matching c, in their original order.
// The input slice is never modified.
func Filter(records []Record, c Criteria) []Record {
	visible := make([]Record, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			visible = append(visible, r)
		}
	}
	return visible
}
