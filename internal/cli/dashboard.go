package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Print the admin dashboard counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			stats, err := client.DashboardStats(cmd.Context())
			if err != nil {
				return err
			}
			if app.Format == "table" {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "names:         %d (%d active)\n", stats.TotalNames, stats.ActiveNames)
				fmt.Fprintf(out, "tasks today:   %d (%d normal, %d special)\n", stats.TasksToday, stats.NormalTasks, stats.SpecialTasks)
				if stats.LatestSessionDate != nil {
					fmt.Fprintf(out, "latest session: %s\n", stats.LatestSessionDate.Format("2006-01-02"))
				}
				return nil
			}
			return writeOut(cmd, app, stats)
		},
	}
}
