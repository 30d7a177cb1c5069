package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

type parseResult struct {
	BaseURL     string
	ShowHelp    bool
	ShowVersion bool
	HelpText    string
}

// launchesTUI reports whether args select the interactive board rather than
// a subcommand: no arguments, or flags only.
func launchesTUI(args []string) bool {
	return len(args) == 0 || strings.HasPrefix(args[0], "-")
}

func parseArgs(args []string) (parseResult, error) {
	fs := flag.NewFlagSet("taskapp", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	baseURL := fs.String("base-url", "", "Task collection URL (overrides TASKAPP_BASE_URL)")
	showVersion := fs.Bool("version", false, "Show version information")
	showVersionShort := fs.Bool("v", false, "Show version information")

	usage := func() string {
		var b strings.Builder
		fmt.Fprintln(&b, "Usage: taskapp [flags]")
		fmt.Fprintln(&b, "       taskapp <command> [args]")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Taskapp is a task board for a remote task collection.")
		fmt.Fprintln(&b, "Run `taskapp help` to list the commands.")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Flags:")
		fs.SetOutput(&b)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
		return b.String()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return parseResult{ShowHelp: true, HelpText: usage()}, nil
		}
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	if fs.NArg() > 0 {
		return parseResult{}, fmt.Errorf("commands go before flags: taskapp %s ...\n\n%s", fs.Arg(0), usage())
	}

	if *showVersion || *showVersionShort {
		return parseResult{ShowVersion: true}, nil
	}

	return parseResult{BaseURL: strings.TrimSpace(*baseURL)}, nil
}
