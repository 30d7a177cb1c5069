package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/pablasso/taskapp/internal/task"
	"github.com/spf13/cobra"
)

func newShowCmd(rt *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := rt.client()
			if err != nil {
				return err
			}
			t, err := client.Get(cmd.Context(), task.ID(args[0]))
			if err != nil {
				return fmt.Errorf("failed to fetch task %s: %w", args[0], err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			rows := [][2]string{
				{"ID", t.ID.String()},
				{"Title", t.Title},
				{"Description", t.Description},
				{"Due date", task.FormatDueDate(t.DueDate)},
				{"Priority", t.Priority.Label()},
				{"Status", t.Status.Label()},
				{"Task owner", t.AssignedTo},
				{"Tags", t.Tags},
				{"Created at", task.FormatTimestamp(t.CreatedAt)},
				{"Last updated at", task.FormatTimestamp(t.UpdatedAt)},
			}
			for _, r := range rows {
				fmt.Fprintf(w, "%s:\t%s\n", r[0], r[1])
			}
			return w.Flush()
		},
	}
}
