package task

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ID
	}{
		{name: "number", input: `5`, want: "5"},
		{name: "string", input: `"a1b2"`, want: "a1b2"},
		{name: "numeric string", input: `"12"`, want: "12"},
		{name: "null", input: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			if err := json.Unmarshal([]byte(tt.input), &id); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.want {
				t.Errorf("expected %q, got %q", tt.want, id)
			}
		})
	}
}

func TestID_UnmarshalJSON_Invalid(t *testing.T) {
	var id ID
	if err := json.Unmarshal([]byte(`{"x":1}`), &id); err == nil {
		t.Error("expected error for object id")
	}
}

func TestID_MarshalJSON(t *testing.T) {
	tests := []struct {
		id   ID
		want string
	}{
		{id: "5", want: `5`},
		{id: "0", want: `0`},
		{id: "007", want: `"007"`},
		{id: "abc", want: `"abc"`},
		{id: "", want: `""`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != tt.want {
			t.Errorf("Marshal(%q) = %s, want %s", tt.id, data, tt.want)
		}
	}
}

func TestRecord_JSONFieldNames(t *testing.T) {
	r := Record{
		ID:          "3",
		Title:       "Write docs",
		Description: "README",
		DueDate:     "2024-05-01",
		Priority:    PriorityHigh,
		AssignedTo:  "sam",
		Tags:        "docs, writing",
		Status:      StatusPending,
		CreatedAt:   "2024-04-01T10:00:00.000Z",
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(data)

	for _, key := range []string{
		`"id":3`, `"task_title":"Write docs"`, `"task_desc":"README"`, `"task_duedate":"2024-05-01"`,
		`"task_priority":"high"`, `"task_assigned_to":"sam"`, `"task_tags":"docs, writing"`,
		`"task_status":"pending"`, `"created_at":"2024-04-01T10:00:00.000Z"`,
	} {
		if !strings.Contains(out, key) {
			t.Errorf("expected %s in %s", key, out)
		}
	}
	if strings.Contains(out, "updated_at") {
		t.Errorf("expected empty updated_at to be omitted, got %s", out)
	}
}

func TestRecord_OmitsEmptyID(t *testing.T) {
	data, err := json.Marshal(Record{Title: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), `"id"`) {
		t.Errorf("expected id to be omitted, got %s", data)
	}
}

func TestRecord_UnmarshalLegacyAssignee(t *testing.T) {
	var r Record
	input := `{"id":7,"task_title":"t","task_assgined_to":"alex","task_priority":"low"}`
	if err := json.Unmarshal([]byte(input), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID != "7" {
		t.Errorf("expected id 7, got %q", r.ID)
	}
	if r.AssignedTo != "alex" {
		t.Errorf("expected legacy assignee to be read, got %q", r.AssignedTo)
	}
	if r.Priority != PriorityLow {
		t.Errorf("expected priority low, got %q", r.Priority)
	}
}

func TestRecord_UnmarshalPrefersCurrentAssignee(t *testing.T) {
	var r Record
	input := `{"task_assigned_to":"new","task_assgined_to":"old"}`
	if err := json.Unmarshal([]byte(input), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.AssignedTo != "new" {
		t.Errorf("expected current key to win, got %q", r.AssignedTo)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{input: "high", want: PriorityHigh},
		{input: " Medium ", want: PriorityMedium},
		{input: "LOW", want: PriorityLow},
		{input: "urgent", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePriority(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q): unexpected error %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus("InProcess"); err != nil || s != StatusInProcess {
		t.Errorf("expected inprocess, got %q (%v)", s, err)
	}
	if _, err := ParseStatus("done"); err == nil || !strings.Contains(err.Error(), "invalid status") {
		t.Errorf("expected invalid status error, got %v", err)
	}
}

func TestLabels(t *testing.T) {
	if PriorityMedium.Label() != "Medium" {
		t.Errorf("unexpected label %q", PriorityMedium.Label())
	}
	if StatusInProcess.Label() != "In progress" {
		t.Errorf("unexpected label %q", StatusInProcess.Label())
	}
	if Status("odd").Label() != "odd" {
		t.Errorf("expected unknown status to render raw")
	}
}
