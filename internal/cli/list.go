package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/pablasso/taskapp/internal/task"
	"github.com/spf13/cobra"
)

func newListCmd(rt *env) *cobra.Command {
	var status, priority, query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  `List every task in the collection, optionally filtered by status, priority and a case-insensitive title search.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := task.Criteria{Query: query}
			if status != "" {
				s, err := task.ParseStatus(status)
				if err != nil {
					return err
				}
				criteria.Status = s
			}
			if priority != "" {
				p, err := task.ParsePriority(priority)
				if err != nil {
					return err
				}
				criteria.Priority = p
			}

			client, err := rt.client()
			if err != nil {
				return err
			}
			all, err := client.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			out := cmd.OutOrStdout()
			visible := task.Filter(all, criteria)
			if len(visible) == 0 {
				if len(all) == 0 {
					fmt.Fprintln(out, "No tasks.")
				} else {
					fmt.Fprintln(out, "No tasks match the filters.")
				}
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tSTATUS\tDUE\tOWNER\tTAGS")
			for _, t := range visible {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID,
					t.Title,
					t.Priority.Label(),
					t.Status.Label(),
					task.FormatDueDate(t.DueDate),
					t.AssignedTo,
					t.Tags,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only tasks with this status (inprocess, pending, completed)")
	cmd.Flags().StringVar(&priority, "priority", "", "Only tasks with this priority (high, medium, low)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Only tasks whose title contains this text")

	return cmd
}
