package cli

import (
	"fmt"
	"strconv"
	"strings"

	"rota-cli/internal/api"
	"rota-cli/internal/model"

	"github.com/spf13/cobra"
)

func newAnnouncementsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "announcements",
		Aliases: []string{"ann"},
		Short:   "Announcements to everyone or a single user",
	}
	cmd.AddCommand(newAnnouncementsListCmd(app))
	cmd.AddCommand(newAnnouncementsCreateCmd(app))
	cmd.AddCommand(newAnnouncementsDeleteCmd(app))
	return cmd
}

func announcementRow(a model.Announcement) []string {
	target := "everyone"
	if !a.ForEveryone() {
		target = a.SpecificUsername
	}
	created := ""
	if a.CreatedAt != nil {
		created = a.CreatedAt.Format("2006-01-02 15:04")
	}
	return []string{strconv.FormatInt(a.ID, 10), a.Title, target, created}
}

func newAnnouncementsListCmd(app *App) *cobra.Command {
	var mine, count bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List announcements",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			if count {
				n, err := client.ActiveAnnouncementCount(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			}

			var anns []model.Announcement
			if mine {
				anns, err = client.MyAnnouncements(cmd.Context())
			} else {
				anns, err = client.Announcements(cmd.Context())
			}
			if err != nil {
				return err
			}
			return writeList(cmd, app, anns, []string{"ID", "TITLE", "TO", "CREATED"}, announcementRow)
		},
	}
	cmd.Flags().BoolVar(&mine, "mine", false, "Only announcements addressed to you")
	cmd.Flags().BoolVar(&count, "active-count", false, "Print the active count instead of a list")
	cmd.MarkFlagsMutuallyExclusive("mine", "active-count")
	return cmd
}

func newAnnouncementsCreateCmd(app *App) *cobra.Command {
	var title, content string
	var userID int64
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish an announcement",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(title) == "" {
				return errEmptyField("title")
			}
			if strings.TrimSpace(content) == "" {
				return errEmptyField("content")
			}

			req := api.CreateAnnouncementRequest{
				Title:   strings.TrimSpace(title),
				Content: strings.TrimSpace(content),
				SendTo:  model.AudienceAll,
			}
			if userID > 0 {
				req.SendTo = model.AudienceSpecific
				req.SpecificUserID = &userID
			}

			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			if err := client.CreateAnnouncement(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Announcement created")
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "Announcement title")
	cmd.Flags().StringVarP(&content, "content", "m", "", "Announcement body")
	cmd.Flags().Int64Var(&userID, "user-id", 0, "Target a single user instead of everyone")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newAnnouncementsDeleteCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an announcement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Delete announcement %d?", id))
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
			if err := client.DeleteAnnouncement(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted announcement %d\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
