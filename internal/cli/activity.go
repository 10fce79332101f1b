package cli

import (
	"fmt"
	"strconv"

	"rota-cli/internal/model"

	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "User visit aggregates (read-only)",
	}
	cmd.AddCommand(newActivityStatsCmd(app))
	cmd.AddCommand(newActivityTopCmd(app))
	cmd.AddCommand(newActivityInactiveCmd(app))
	return cmd
}

func activityRow(a model.UserActivity) []string {
	last := ""
	if a.LastVisit != nil {
		last = a.LastVisit.Format("2006-01-02 15:04")
	}
	return []string{a.Username, strconv.Itoa(a.VisitCount), last}
}

func newActivityStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Overall visit statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			stats, err := client.ActivityStats(cmd.Context())
			if err != nil {
				return err
			}
			if app.Format == "table" {
				fmt.Fprintf(cmd.OutOrStdout(), "total visits: %d\n", stats.TotalVisits)
				return nil
			}
			return writeOut(cmd, app, stats)
		},
	}
}

func newActivityTopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Most frequent visitors",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			visitors, err := client.TopVisitors(cmd.Context())
			if err != nil {
				return err
			}
			return writeList(cmd, app, visitors, []string{"USER", "VISITS", "LAST VISIT"}, activityRow)
		},
	}
}

func newActivityInactiveCmd(app *App) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "inactive",
		Short: "Users with no recent visits",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("invalid --days: %d", days)
			}
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			users, err := client.InactiveUsers(cmd.Context(), days)
			if err != nil {
				return err
			}
			return writeList(cmd, app, users, []string{"USER", "VISITS", "LAST VISIT"}, activityRow)
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "Inactivity window in days")
	return cmd
}
