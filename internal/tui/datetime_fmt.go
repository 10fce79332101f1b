package tui

import (
	"fmt"
	"time"
)

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}

// timeAgo renders a coarse relative age for list rows. Anything older than
// a week falls back to the absolute date.
func timeAgo(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
	return t.Format("Jan 2, 2006")
}
