package main

import (
	"strings"
	"testing"
)

func TestLaunchesTUI(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{nil, true},
		{[]string{"--base-url", "http://localhost:3000/data"}, true},
		{[]string{"-v"}, true},
		{[]string{"list"}, false},
		{[]string{"serve", "--addr", ":4000"}, false},
	}

	for _, tt := range tests {
		if got := launchesTUI(tt.args); got != tt.want {
			t.Errorf("launchesTUI(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestParseArgs_NoArgs(t *testing.T) {
	res, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.ShowHelp {
		t.Fatalf("expected ShowHelp=false")
	}
	if res.ShowVersion {
		t.Fatalf("expected ShowVersion=false")
	}
	if res.BaseURL != "" {
		t.Fatalf("expected no base URL override, got %q", res.BaseURL)
	}
}

func TestParseArgs_BaseURL(t *testing.T) {
	res, err := parseArgs([]string{"--base-url", " http://localhost:3000/data "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.BaseURL != "http://localhost:3000/data" {
		t.Fatalf("expected trimmed base URL, got %q", res.BaseURL)
	}
}

func TestParseArgs_UnknownFlagErrors(t *testing.T) {
	_, err := parseArgs([]string{"--demo"})
	if err == nil {
		t.Fatalf("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "Usage: taskapp") {
		t.Fatalf("expected usage in error, got %v", err)
	}
}

func TestParseArgs_PositionalArgsError(t *testing.T) {
	_, err := parseArgs([]string{"--base-url", "http://localhost/data", "list"})
	if err == nil {
		t.Fatalf("expected error for trailing command")
	}
	if !strings.Contains(err.Error(), "taskapp list") {
		t.Fatalf("expected hint naming the command, got %v", err)
	}
}

func TestParseArgs_VersionLong(t *testing.T) {
	res, err := parseArgs([]string{"--version"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.ShowVersion {
		t.Fatalf("expected ShowVersion=true")
	}
}

func TestParseArgs_VersionShort(t *testing.T) {
	res, err := parseArgs([]string{"-v"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.ShowVersion {
		t.Fatalf("expected ShowVersion=true")
	}
}

func TestParseArgs_Help(t *testing.T) {
	res, err := parseArgs([]string{"--help"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.ShowHelp {
		t.Fatalf("expected ShowHelp=true")
	}
	if !strings.Contains(res.HelpText, "Taskapp is a task board for a remote task collection.") {
		t.Fatalf("expected help text to include summary line, got: %s", res.HelpText)
	}
	if !strings.Contains(res.HelpText, "-base-url") {
		t.Fatalf("expected help text to include base-url flag, got: %s", res.HelpText)
	}
	if !strings.Contains(res.HelpText, "-version") {
		t.Fatalf("expected help text to include version flags, got: %s", res.HelpText)
	}
}
