package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func modalWidth(screenW int) int {
	w := screenW - 8
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	return w
}

func modalBodyWidth(screenW int) int {
	return modalWidth(screenW) - 4
}

// renderModalBox draws the shared modal chrome: a header strip and a padded
// surface. Borders are avoided; some terminals show background artifacts
// when nesting bordered components inside a colored modal.
func renderModalBox(screenW int, title, content string) string {
	w := modalWidth(screenW)

	header := lipgloss.NewStyle().
		Width(w).
		Padding(0, 2).
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Render(title)

	body := lipgloss.NewStyle().
		Width(w).
		Padding(1, 2).
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Render(content)

	return header + "\n" + body
}

// renderInputLine renders a text input as a single visual line inside a
// modal. If the input view ever contains newlines (or overflows due to
// ANSI/cursor styling), it can trigger wrapping that looks like newline
// insertion while typing.
func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Never exceed the modal body width; terminate ANSI styling to
		// prevent bleed.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}

// fieldLabel renders a form label, highlighted when its field has focus.
func fieldLabel(text string, focused bool) string {
	st := lipgloss.NewStyle().Foreground(colorChromeMutedFg)
	if focused {
		st = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	}
	return st.Render(text)
}
