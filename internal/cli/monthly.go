package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMonthlyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "The month's shared message",
	}
	cmd.AddCommand(newMonthlyShowCmd(app))
	cmd.AddCommand(newMonthlySetCmd(app))
	return cmd
}

func newMonthlyShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current monthly message",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			md, err := client.CurrentMonthlyDesire(cmd.Context())
			if err != nil {
				return err
			}
			if md == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No monthly message set")
				return nil
			}
			if app.Format == "table" {
				fmt.Fprintln(cmd.OutOrStdout(), md.Message)
				return nil
			}
			return writeOut(cmd, app, md)
		},
	}
}

func newMonthlySetCmd(app *App) *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the monthly message",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(message) == "" {
				return errEmptyField("message")
			}
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			if err := client.SetMonthlyDesire(cmd.Context(), strings.TrimSpace(message)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Monthly message updated")
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "The message for this month")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}
