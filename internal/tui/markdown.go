package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown formats long-form content (announcement bodies, idea
// descriptions) for the detail modals. Authors paste markdown into the
// web forms often enough that rendering it beats showing raw asterisks.
// Falls back to the source text when rendering fails.
func renderMarkdown(src string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return strings.TrimRight(out, "\n")
}
