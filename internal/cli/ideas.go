package cli

import (
	"fmt"
	"strconv"
	"strings"

	"rota-cli/internal/model"

	"github.com/spf13/cobra"
)

func newIdeasCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Suggestions and their review lifecycle",
	}
	cmd.AddCommand(newIdeasListCmd(app))
	cmd.AddCommand(newIdeasSubmitCmd(app))
	cmd.AddCommand(newIdeasViewCmd(app))
	cmd.AddCommand(newIdeasRespondCmd(app))
	cmd.AddCommand(newIdeasDeleteCmd(app))
	return cmd
}

func ideaRow(i model.Idea) []string {
	return []string{
		strconv.FormatInt(i.ID, 10),
		i.Title,
		i.Username,
		string(i.Status),
	}
}

func newIdeasListCmd(app *App) *cobra.Command {
	var mine, latest, pending bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ideas",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			if pending {
				n, err := client.PendingIdeaCount(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			}

			var ideas []model.Idea
			switch {
			case mine:
				ideas, err = client.MyIdeas(cmd.Context())
			case latest:
				ideas, err = client.LatestIdeas(cmd.Context())
			default:
				ideas, err = client.Ideas(cmd.Context())
			}
			if err != nil {
				return err
			}
			return writeList(cmd, app, ideas, []string{"ID", "TITLE", "BY", "STATUS"}, ideaRow)
		},
	}
	cmd.Flags().BoolVar(&mine, "mine", false, "Only your own submissions")
	cmd.Flags().BoolVar(&latest, "latest", false, "Only the most recent submissions")
	cmd.Flags().BoolVar(&pending, "pending-count", false, "Print the pending count instead of a list")
	cmd.MarkFlagsMutuallyExclusive("mine", "latest", "pending-count")
	return cmd
}

func newIdeasSubmitCmd(app *App) *cobra.Command {
	var title, content string
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a new idea",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(title) == "" {
				return errEmptyField("title")
			}
			if strings.TrimSpace(content) == "" {
				return errEmptyField("content")
			}
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			if err := client.SubmitIdea(cmd.Context(), strings.TrimSpace(title), strings.TrimSpace(content)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Idea submitted")
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "Idea title")
	cmd.Flags().StringVarP(&content, "content", "m", "", "Idea content")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newIdeasViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Mark a pending idea as viewed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			if err := client.MarkIdeaViewed(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Idea %d marked as viewed\n", id)
			return nil
		},
	}
}

func newIdeasRespondCmd(app *App) *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "respond <id>",
		Short: "Send the admin response for an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if strings.TrimSpace(message) == "" {
				return errEmptyField("message")
			}
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			if err := client.RespondToIdea(cmd.Context(), id, strings.TrimSpace(message)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Responded to idea %d\n", id)
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "Response text")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func newIdeasDeleteCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Delete idea %d?", id))
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
			if err := client.DeleteIdea(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted idea %d\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
