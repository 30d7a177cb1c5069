// Package cli implements the taskapp subcommands used for scripting the task
// store outside the TUI.
package cli

import (
	"context"
	"io"

	"github.com/pablasso/taskapp/internal/config"
	"github.com/pablasso/taskapp/internal/logging"
	"github.com/pablasso/taskapp/internal/store"
	"github.com/pablasso/taskapp/internal/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// env is the state shared by every subcommand once flags are parsed.
type env struct {
	baseURL string // --base-url, empty keeps the configured value

	cfg    *config.Config
	log    zerolog.Logger
	closer io.Closer
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	rt := &env{}

	root := &cobra.Command{
		Use:           "taskapp",
		Short:         "Task board client for a remote task collection",
		Long:          `Taskapp manages tasks stored in a remote REST collection. Run it without a command to open the interactive board.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return rt.close()
		},
	}

	root.PersistentFlags().StringVar(&rt.baseURL, "base-url", "", "Task collection URL (overrides TASKAPP_BASE_URL)")

	root.AddCommand(
		newListCmd(rt),
		newShowCmd(rt),
		newAddCmd(rt),
		newEditCmd(rt),
		newDeleteCmd(rt),
		newServeCmd(rt),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (rt *env) setup(stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if rt.baseURL != "" {
		cfg.BaseURL = rt.baseURL
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, closer, err := logging.Open(cfg.LogLevel, cfg.LogFile, logging.Console(stderr))
	if err != nil {
		return err
	}

	rt.cfg = cfg
	rt.log = log
	rt.closer = closer
	return nil
}

func (rt *env) close() error {
	if rt.closer == nil {
		return nil
	}
	return rt.closer.Close()
}

func (rt *env) client() (*store.Client, error) {
	return store.New(
		rt.cfg.BaseURL,
		store.WithLogger(rt.log),
		store.WithTimeout(rt.cfg.HTTPTimeout),
	)
}
