package tui

import (
	"fmt"

	"rota-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

type nameItem struct {
	name model.Name
}

func (i nameItem) FilterValue() string { return i.name.Name }
func (i nameItem) Title() string {
	status := styleMuted().Render("inactive")
	if i.name.Active {
		status = lipgloss.NewStyle().Foreground(colorSuccessFg).Render("active")
	}
	return fmt.Sprintf("%s  %s", i.name.Name, status)
}

type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string { return i.task.Name }
func (i taskItem) Title() string {
	badge := ""
	if i.task.IsSpecialTask {
		badge = lipgloss.NewStyle().Foreground(colorPendingFg).Render("★ special")
	}
	label := i.task.TaskName
	if label == "" {
		if i.task.IsSpecialTask {
			label = "Weekend intercession"
		} else {
			label = "Ijambo ry'Imana"
		}
	}
	if badge != "" {
		return fmt.Sprintf("%s — %s  %s", i.task.Name, label, badge)
	}
	return fmt.Sprintf("%s — %s", i.task.Name, label)
}

type ideaItem struct {
	idea model.Idea
}

func (i ideaItem) FilterValue() string { return i.idea.Title }
func (i ideaItem) Title() string {
	return fmt.Sprintf("%s  %s  %s",
		ideaStatusBadge(i.idea.Status),
		i.idea.Title,
		styleMuted().Render("by "+i.idea.Username),
	)
}

func ideaStatusBadge(s model.IdeaStatus) string {
	var fg lipgloss.TerminalColor
	switch s {
	case model.IdeaPending:
		fg = colorPendingFg
	case model.IdeaViewed:
		fg = colorInfoFg
	case model.IdeaResponded:
		fg = colorSuccessFg
	default:
		fg = colorMuted
	}
	return lipgloss.NewStyle().Foreground(fg).Render(string(s))
}

type announcementItem struct {
	ann model.Announcement
}

func (i announcementItem) FilterValue() string { return i.ann.Title }
func (i announcementItem) Title() string {
	target := "to everyone"
	if !i.ann.ForEveryone() {
		target = "to " + i.ann.SpecificUsername
	}
	when := ""
	if i.ann.CreatedAt != nil {
		when = "  " + styleMuted().Render(timeAgo(i.ann.CreatedAt.Time))
	}
	return fmt.Sprintf("%s  %s%s", i.ann.Title, styleMuted().Render(target), when)
}

type desireItem struct {
	desire model.Desire
}

func (i desireItem) FilterValue() string { return i.desire.Description }
func (i desireItem) Title() string {
	cat := "short-term"
	if i.desire.Category == model.DesireLongTerm {
		cat = "long-term"
	}
	return fmt.Sprintf("%s  %s", i.desire.Description, styleMuted().Render(cat))
}

type userItem struct {
	user model.User
}

func (i userItem) FilterValue() string { return i.user.Username }
func (i userItem) Title() string       { return i.user.Username }

// pickNameItem is the replacement-name picker row.
type pickNameItem struct {
	name model.Name
}

func (i pickNameItem) FilterValue() string { return i.name.Name }
func (i pickNameItem) Title() string       { return i.name.Name }

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, newCompactItemDelegate(), 0, 0)
	l.Title = title
	// We render our own global header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("entry", "entries")
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases (common muscle memory).
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}
