package task

import (
	"reflect"
	"testing"
	"time"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "a, b ,c", want: []string{"a", "b", "c"}},
		{input: "a,,b", want: []string{"a", "", "b"}},
		{input: "a,", want: []string{"a", ""}},
		{input: "single", want: []string{"single"}},
		{input: "", want: []string{""}},
	}

	for _, tt := range tests {
		got := ParseTags(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseTags(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := "2024-03-05T14:30:00.000Z"
	want := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC).Local().Format(DisplayLayout)

	if got := FormatTimestamp(ts); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	for _, empty := range []string{"", "  "} {
		if got := FormatTimestamp(empty); got != "Invalid Date" {
			t.Errorf("expected 'Invalid Date' for empty timestamp %q, got %q", empty, got)
		}
	}
	if got := FormatTimestamp("yesterday"); got != "Invalid Date" {
		t.Errorf("expected 'Invalid Date', got %q", got)
	}
}

func TestFormatDueDate(t *testing.T) {
	if got := FormatDueDate("2024-01-31"); got != "2024-01-31" {
		t.Errorf("expected due date as stored, got %q", got)
	}
	if got := FormatDueDate(" "); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}
}

func TestStamp(t *testing.T) {
	loc := time.FixedZone("X", 2*60*60)
	got := Stamp(time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, loc))
	if got != "2024-01-02T01:04:05.006Z" {
		t.Errorf("unexpected stamp %q", got)
	}

	parsed, ok := parseTime(Now())
	if !ok {
		t.Fatal("expected Now() to be parseable")
	}
	if time.Since(parsed) > time.Minute {
		t.Errorf("expected Now() to be recent, got %v", parsed)
	}
}
