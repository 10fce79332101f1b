package tui

import (
	"rota-cli/internal/api"
	"rota-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(client *api.Client, cfg *store.Config) error {
	applyColorProfilePreference()
	applyThemePreference()
	m := newAppModel(client, cfg)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
