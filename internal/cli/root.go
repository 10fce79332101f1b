package cli

import (
	"fmt"
	"os"
	"strings"

	"rota-cli/internal/api"
	"rota-cli/internal/format"
	"rota-cli/internal/store"
	"rota-cli/internal/tui"

	"github.com/spf13/cobra"
)

// DefaultServerURL is where the service runs in the standard deployment.
const DefaultServerURL = "http://localhost:8080"

type App struct {
	ServerURL  string
	Format     string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "rota",
		Short:        "Dashboard and CLI for the name-rotation service",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  rota

  # Log in first (session is stored in ~/.rota)
  rota login --username amina

  # Scriptable commands
  rota names list
  rota tasks generate --count 6
  rota ideas respond 12 --message "Approved, starting next month"
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive dashboard.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runDashboard(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !format.ValidFormat(app.Format) {
			return fmt.Errorf("unknown format: %s (want json or table)", app.Format)
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", envOr("ROTA_SERVER", ""), "Service base URL (default: stored config, then "+DefaultServerURL+")")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("ROTA_FORMAT", "json"), "Output format (json|table)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newNamesCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newIdeasCmd(app))
	cmd.AddCommand(newAnnouncementsCmd(app))
	cmd.AddCommand(newDesiresCmd(app))
	cmd.AddCommand(newMonthlyCmd(app))
	cmd.AddCommand(newActivityCmd(app))
	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runDashboard(app *App) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	client := api.New(resolveServer(app, cfg), api.WithSession(cfg.Session))
	return tui.Run(client, cfg)
}

// resolveServer picks the service URL: flag/env first, then the stored
// config, then the standard local deployment.
func resolveServer(app *App, cfg *store.Config) string {
	if s := strings.TrimSpace(app.ServerURL); s != "" {
		return s
	}
	if s := strings.TrimSpace(cfg.ServerURL); s != "" {
		return s
	}
	return DefaultServerURL
}

// newClient builds an API client from stored config without requiring a
// session (login itself goes through this).
func newClient(app *App) (*api.Client, *store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return api.New(resolveServer(app, cfg), api.WithSession(cfg.Session)), cfg, nil
}

// authedClient is newClient plus the session gate: commands that talk to
// protected endpoints fail fast when no session is stored.
func authedClient(app *App) (*api.Client, *store.Config, error) {
	client, cfg, err := newClient(app)
	if err != nil {
		return nil, nil, err
	}
	if !cfg.LoggedIn() {
		return nil, nil, errNotLoggedIn()
	}
	return client, cfg, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

// writeList renders a collection either as JSON or, with --format table,
// through the row function.
func writeList[T any](cmd *cobra.Command, app *App, items []T, headers []string, row func(T) []string) error {
	if app.Format == "table" {
		rows := make([][]string, 0, len(items))
		for _, it := range items {
			rows = append(rows, row(it))
		}
		return format.WriteTable(cmd.OutOrStdout(), headers, rows)
	}
	if items == nil {
		items = []T{}
	}
	return writeOut(cmd, app, items)
}
