package cli

import (
	"fmt"
	"strconv"

	"rota-cli/internal/model"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Today's task assignments",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksGenerateCmd(app))
	cmd.AddCommand(newTasksReplaceCmd(app))
	cmd.AddCommand(newTasksClearCmd(app))
	return cmd
}

func taskRow(t model.Task) []string {
	kind := "normal"
	if t.IsSpecialTask {
		kind = "special"
	}
	label := t.TaskName
	if label == "" && !t.IsSpecialTask {
		label = "-"
	}
	return []string{strconv.FormatInt(t.ID, 10), t.Name, label, kind}
}

func newTasksListCmd(app *App) *cobra.Command {
	var special, normal bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated tasks (normal and special)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}

			var tasks []model.Task
			if !special {
				ts, err := client.NormalTasks(cmd.Context())
				if err != nil {
					return err
				}
				tasks = append(tasks, ts...)
			}
			if !normal {
				ts, err := client.SpecialTasks(cmd.Context())
				if err != nil {
					return err
				}
				tasks = append(tasks, ts...)
			}
			return writeList(cmd, app, tasks, []string{"ID", "NAME", "TASK", "KIND"}, taskRow)
		},
	}
	cmd.Flags().BoolVar(&normal, "normal", false, "Only normal tasks")
	cmd.Flags().BoolVar(&special, "special", false, "Only special tasks")
	cmd.MarkFlagsMutuallyExclusive("normal", "special")
	return cmd
}

func newTasksGenerateCmd(app *App) *cobra.Command {
	var count int
	var yes bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate today's assignments (clears existing tasks)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Generate tasks for %d names? This clears today's existing tasks.", count))
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			if err := client.GenerateTasks(cmd.Context(), count); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Tasks generated")
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "c", 0, "Number of names to assign (minimum 4)")
	_ = cmd.MarkFlagRequired("count")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newTasksReplaceCmd(app *App) *cobra.Command {
	var newNameID int64
	cmd := &cobra.Command{
		Use:   "replace <task-id>",
		Short: "Replace the name assigned to a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0])
			if err != nil {
				return err
			}
			if newNameID <= 0 {
				return fmt.Errorf("invalid --name-id: %d", newNameID)
			}
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			if err := client.ReplaceTaskName(cmd.Context(), taskID, newNameID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d reassigned\n", taskID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&newNameID, "name-id", 0, "Replacement name id (see `rota names active`)")
	_ = cmd.MarkFlagRequired("name-id")
	return cmd
}

func newTasksClearCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all of today's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirm(cmd, "Clear all tasks for today? This cannot be undone.")
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			if err := client.ClearTasks(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Tasks cleared")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
