package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pablasso/taskapp/internal/cli"
	"github.com/pablasso/taskapp/internal/config"
	"github.com/pablasso/taskapp/internal/logging"
	"github.com/pablasso/taskapp/internal/store"
	"github.com/pablasso/taskapp/internal/tui"
	"github.com/pablasso/taskapp/internal/version"
)

func main() {
	args := os.Args[1:]

	// Flags only launch the TUI; anything else is a subcommand
	if !launchesTUI(args) {
		if err := cli.Execute(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	res, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if res.ShowHelp {
		fmt.Fprint(os.Stdout, res.HelpText)
		return
	}
	if res.ShowVersion {
		fmt.Fprintln(os.Stdout, version.String())
		return
	}

	if err := runTUI(res); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(res parseResult) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if res.BaseURL != "" {
		cfg.BaseURL = res.BaseURL
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	// The alt-screen owns the terminal, so logs go to a file or nowhere
	log, closer, err := logging.Open(cfg.LogLevel, cfg.LogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	client, err := store.New(cfg.BaseURL, store.WithLogger(log), store.WithTimeout(cfg.HTTPTimeout))
	if err != nil {
		return err
	}

	log.Info().Str("base_url", cfg.BaseURL).Str("version", version.Version).Msg("starting board")
	return tui.Run(tui.Options{
		Client:        client,
		Log:           log,
		ToastDuration: cfg.ToastDuration,
	})
}
