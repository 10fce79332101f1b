package cli

import (
	"fmt"
	"strconv"
	"strings"

	"rota-cli/internal/model"

	"github.com/spf13/cobra"
)

func newDesiresCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "desires",
		Short: "Personal short-term and long-term goals",
	}
	cmd.AddCommand(newDesiresListCmd(app))
	cmd.AddCommand(newDesiresAddCmd(app))
	cmd.AddCommand(newDesiresEditCmd(app))
	cmd.AddCommand(newDesiresDeleteCmd(app))
	return cmd
}

func desireRow(d model.Desire) []string {
	return []string{strconv.FormatInt(d.ID, 10), d.Description, string(d.Category)}
}

func newDesiresListCmd(app *App) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List desires by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}

			var desires []model.Desire
			switch {
			case category == "":
				short, err := client.ShortTermDesires(cmd.Context())
				if err != nil {
					return err
				}
				long, err := client.LongTermDesires(cmd.Context())
				if err != nil {
					return err
				}
				desires = append(short, long...)
			default:
				cat, ok := model.ParseDesireCategory(category)
				if !ok {
					return fmt.Errorf("unknown category: %s (want short-term or long-term)", category)
				}
				if cat == model.DesireShortTerm {
					desires, err = client.ShortTermDesires(cmd.Context())
				} else {
					desires, err = client.LongTermDesires(cmd.Context())
				}
				if err != nil {
					return err
				}
			}
			return writeList(cmd, app, desires, []string{"ID", "DESCRIPTION", "CATEGORY"}, desireRow)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "short-term or long-term (default both)")
	return cmd
}

func newDesiresAddCmd(app *App) *cobra.Command {
	var description, category string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a desire",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(description) == "" {
				return errEmptyField("description")
			}
			cat, ok := model.ParseDesireCategory(category)
			if !ok {
				return fmt.Errorf("unknown category: %s (want short-term or long-term)", category)
			}
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			if err := client.CreateDesire(cmd.Context(), strings.TrimSpace(description), cat); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Desire added")
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "What you want to do")
	cmd.Flags().StringVarP(&category, "category", "c", "", "short-term or long-term")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newDesiresEditCmd(app *App) *cobra.Command {
	var description, category string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a desire",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if strings.TrimSpace(description) == "" {
				return errEmptyField("description")
			}
			cat, ok := model.ParseDesireCategory(category)
			if !ok {
				return fmt.Errorf("unknown category: %s (want short-term or long-term)", category)
			}
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			if err := client.UpdateDesire(cmd.Context(), id, strings.TrimSpace(description), cat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated desire %d\n", id)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Updated description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "short-term or long-term")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newDesiresDeleteCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a desire",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Delete desire %d?", id))
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
			if err := client.DeleteDesire(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted desire %d\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
