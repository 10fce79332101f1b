package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loggingIn {
		// Inputs are frozen while the request is in flight.
		return m, nil
	}

	switch msg.String() {
	case "ctrl+d":
		return m, tea.Quit

	case "tab", "shift+tab", "up", "down":
		if m.loginFocus == 0 {
			m.loginFocus = 1
			m.loginUser.Blur()
			m.loginPass.Focus()
		} else {
			m.loginFocus = 0
			m.loginPass.Blur()
			m.loginUser.Focus()
		}
		return m, textinput.Blink

	case "enter":
		username := strings.TrimSpace(m.loginUser.Value())
		password := m.loginPass.Value()
		if username == "" || password == "" {
			m.loginErr = "Please enter both username and password"
			return m, nil
		}
		m.loginErr = ""
		m.loggingIn = true
		return m, tea.Batch(doLogin(m.client, username, password), m.spin.Tick)

	case "esc":
		m.loginErr = ""
		return m, nil
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.loginUser, cmd = m.loginUser.Update(msg)
	} else {
		m.loginPass, cmd = m.loginPass.Update(msg)
	}
	return m, cmd
}

func (m appModel) viewLoginScreen() string {
	w := modalBodyWidth(m.width)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("Rotation dashboard")
	sub := styleMuted().Render(m.client.ServerURL())

	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(sub + "\n\n")
	b.WriteString(fieldLabel("Username", m.loginFocus == 0) + "\n")
	b.WriteString(renderInputLine(w, m.loginUser.View()) + "\n\n")
	b.WriteString(fieldLabel("Password", m.loginFocus == 1) + "\n")
	b.WriteString(renderInputLine(w, m.loginPass.View()) + "\n")

	if m.loggingIn {
		b.WriteString("\n" + m.spin.View() + " signing in…")
	} else if m.loginErr != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(colorErrorFg).Render(m.loginErr))
	}

	b.WriteString("\n\n" + styleMuted().Render("enter: sign in   tab: switch field   ctrl+c: quit"))

	box := renderModalBox(m.width, "Sign in", b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
