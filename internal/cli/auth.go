package cli

import (
	"fmt"
	"os"
	"strings"

	"rota-cli/internal/store"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			username = strings.TrimSpace(username)
			if username == "" {
				return errEmptyField("username")
			}
			if password == "" {
				pw, err := promptPassword(cmd)
				if err != nil {
					return err
				}
				password = pw
			}
			if password == "" {
				return errEmptyField("password")
			}

			client, cfg, err := newClient(app)
			if err != nil {
				return err
			}
			if err := client.Login(cmd.Context(), username, password); err != nil {
				return err
			}

			// The check endpoint reports the canonical username for the
			// session; keep it for the dashboard header.
			name, err := client.CheckAuth(cmd.Context())
			if err != nil {
				name = username
			}

			cfg.ServerURL = client.ServerURL()
			cfg.Session = client.Session()
			cfg.Username = name
			if err := store.SaveConfig(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Terminate the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := authedClient(app)
			if err != nil {
				return err
			}
			// Drop the stored session even when the server call fails; a
			// stale cookie is worthless either way.
			logoutErr := client.Logout(cmd.Context())
			cfg.ClearSession()
			if err := store.SaveConfig(cfg); err != nil {
				return err
			}
			if logoutErr != nil {
				return logoutErr
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the user the current session belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := authedClient(app)
			if err != nil {
				return err
			}
			name, err := client.CheckAuth(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func promptPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errEmptyField("password")
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", err
	}
	return string(b), nil
}
