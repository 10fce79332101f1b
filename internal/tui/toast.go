package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// The toast is the single shared notification surface: at most one visible
// at a time, a new one replaces whatever is showing, and it dismisses
// itself after a fixed delay. The sequence counter makes stale dismiss
// timers no-ops after a replacement.

const toastDuration = 3 * time.Second

type toastLevel int

const (
	toastSuccess toastLevel = iota
	toastError
	toastInfo
)

type toastExpiredMsg struct{ seq int }

type toast struct {
	text  string
	level toastLevel
	seq   int
}

func (t toast) visible() bool { return strings.TrimSpace(t.text) != "" }

// show replaces any visible toast and returns the dismiss timer for the
// new one.
func (t *toast) show(text string, level toastLevel) tea.Cmd {
	t.text = text
	t.level = level
	t.seq++
	seq := t.seq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

// expire clears the toast if msg belongs to the currently visible one.
func (t *toast) expire(msg toastExpiredMsg) {
	if msg.seq == t.seq {
		t.text = ""
	}
}

func (t toast) view(width int) string {
	if !t.visible() {
		return ""
	}
	var fg lipgloss.TerminalColor
	var prefix string
	switch t.level {
	case toastError:
		fg = colorErrorFg
		prefix = "✗ "
	case toastInfo:
		fg = colorInfoFg
		prefix = "· "
	default:
		fg = colorSuccessFg
		prefix = "✓ "
	}
	st := lipgloss.NewStyle().Foreground(fg).Bold(true)
	return st.Render(truncateLine(prefix+t.text, width))
}
