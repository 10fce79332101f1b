package cli

import (
	"fmt"
	"strconv"
	"strings"

	"rota-cli/internal/model"

	"github.com/spf13/cobra"
)

func newNamesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "names",
		Short: "Manage the rotation roster",
	}
	cmd.AddCommand(newNamesListCmd(app))
	cmd.AddCommand(newNamesActiveCmd(app))
	cmd.AddCommand(newNamesAddCmd(app))
	cmd.AddCommand(newNamesRenameCmd(app))
	cmd.AddCommand(newNamesDeleteCmd(app))
	return cmd
}

func nameRow(n model.Name) []string {
	status := "inactive"
	if n.Active {
		status = "active"
	}
	return []string{strconv.FormatInt(n.ID, 10), n.Name, status}
}

func newNamesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all roster names",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			names, err := client.Names(cmd.Context())
			if err != nil {
				return err
			}
			return writeList(cmd, app, names, []string{"ID", "NAME", "STATUS"}, nameRow)
		},
	}
}

func newNamesActiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "List names currently free for assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			names, err := client.ActiveNames(cmd.Context())
			if err != nil {
				return err
			}
			return writeList(cmd, app, names, []string{"ID", "NAME", "STATUS"}, nameRow)
		},
	}
}

func newNamesAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a name to the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return errEmptyField("name")
			}
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			if err := client.CreateName(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q\n", name)
			return nil
		},
	}
}

func newNamesRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a roster entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			name := strings.TrimSpace(args[1])
			if name == "" {
				return errEmptyField("name")
			}
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			if err := client.UpdateName(cmd.Context(), id, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %d to %q\n", id, name)
			return nil
		},
	}
}

func newNamesDeleteCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a roster entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Delete name %d?", id))
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
			if err := client.DeleteName(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %q", s)
	}
	return id, nil
}
