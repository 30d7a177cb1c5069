package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pablasso/taskapp/internal/form"
	"github.com/pablasso/taskapp/internal/task"
	"github.com/spf13/cobra"
)

var errInvalidTask = errors.New("task not saved: fix the fields above")

// taskFlagNames maps form fields to the flags that set them.
var taskFlagNames = []struct {
	field form.Field
	name  string
	usage string
}{
	{form.FieldTitle, "title", "Task title"},
	{form.FieldDescription, "desc", "Task description"},
	{form.FieldDueDate, "due", "Due date (YYYY-MM-DD)"},
	{form.FieldPriority, "priority", "Priority (high, medium, low)"},
	{form.FieldTags, "tags", "Comma-separated tags"},
	{form.FieldStatus, "status", "Status (inprocess, pending, completed)"},
	{form.FieldAssignedTo, "assignee", "Task owner"},
}

type taskFlags map[form.Field]*string

func addTaskFlags(cmd *cobra.Command) taskFlags {
	flags := make(taskFlags, len(taskFlagNames))
	for _, tf := range taskFlagNames {
		flags[tf.field] = cmd.Flags().String(tf.name, "", tf.usage)
	}
	return flags
}

// apply copies flag values into c. With onlyChanged, flags the user did not
// pass leave the loaded value alone.
func (f taskFlags) apply(cmd *cobra.Command, c *form.Controller, onlyChanged bool) {
	for _, tf := range taskFlagNames {
		if onlyChanged && !cmd.Flags().Changed(tf.name) {
			continue
		}
		v := *f[tf.field]
		if tf.field == form.FieldPriority || tf.field == form.FieldStatus {
			v = strings.ToLower(strings.TrimSpace(v))
		}
		c.Set(tf.field, v)
	}
}

// submitError prints per-field messages for a blocked submit.
func submitError(w io.Writer, err error) error {
	var verr *form.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	for _, f := range form.Fields {
		if msg, ok := verr.Fields[f]; ok {
			fmt.Fprintf(w, "  %s: %s\n", f.Label(), msg)
		}
	}
	return errInvalidTask
}

func newAddCmd(rt *env) *cobra.Command {
	var flags taskFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Long:  `Create a task. Every field is required, as in the board's Add Task form.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := form.NewController()
			flags.apply(cmd, &c, false)

			client, err := rt.client()
			if err != nil {
				return err
			}
			saved, err := c.Submit(cmd.Context(), client, time.Now())
			if err != nil {
				return submitError(cmd.ErrOrStderr(), err)
			}

			rt.log.Debug().Str("id", saved.ID.String()).Msg("task created")
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s: %s\n", saved.ID, saved.Title)
			return nil
		},
	}
	flags = addTaskFlags(cmd)

	return cmd
}

func newEditCmd(rt *env) *cobra.Command {
	var flags taskFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a task",
		Long:  `Update a task. Only the flags you pass change; every other field keeps its stored value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.client()
			if err != nil {
				return err
			}
			id := task.ID(args[0])
			current, err := client.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to fetch task %s: %w", id, err)
			}
			current.ID = id

			c := form.NewController()
			c.Load(current)
			flags.apply(cmd, &c, true)

			saved, err := c.Submit(cmd.Context(), client, time.Now())
			if err != nil {
				return submitError(cmd.ErrOrStderr(), err)
			}

			rt.log.Debug().Str("id", saved.ID.String()).Msg("task updated")
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s: %s\n", saved.ID, saved.Title)
			return nil
		},
	}
	flags = addTaskFlags(cmd)

	return cmd
}

func newDeleteCmd(rt *env) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.client()
			if err != nil {
				return err
			}
			id := task.ID(args[0])
			if err := client.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete task %s: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", id)
			return nil
		},
	}
}
