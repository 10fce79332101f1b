package tui

import (
	"context"

	"rota-cli/internal/api"
	"rota-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Every fetch resolves independently: each command delivers its own
// message carrying its own error, so one failed request never blanks the
// widgets that did load.

type namesLoadedMsg struct {
	names []model.Name
	err   error
}

type activeNamesLoadedMsg struct {
	names []model.Name
	err   error
}

type normalTasksLoadedMsg struct {
	tasks []model.Task
	err   error
}

type specialTasksLoadedMsg struct {
	tasks []model.Task
	err   error
}

type ideasLoadedMsg struct {
	ideas []model.Idea
	err   error
}

type announcementsLoadedMsg struct {
	anns []model.Announcement
	err  error
}

type usersLoadedMsg struct {
	users []model.User
	err   error
}

type desiresLoadedMsg struct {
	category model.DesireCategory
	desires  []model.Desire
	err      error
}

type monthlyLoadedMsg struct {
	desire *model.MonthlyDesire
	err    error
}

type dashboardStatsLoadedMsg struct {
	stats model.DashboardStats
	err   error
}

type pendingIdeasLoadedMsg struct {
	count int
	err   error
}

type announcementCountLoadedMsg struct {
	count int
	err   error
}

type activityStatsLoadedMsg struct {
	stats model.ActivityStats
	err   error
}

type topVisitorsLoadedMsg struct {
	visitors []model.UserActivity
	err      error
}

type inactiveUsersLoadedMsg struct {
	days  int
	users []model.UserActivity
	err   error
}

type authCheckedMsg struct {
	username string
	err      error
}

type loginDoneMsg struct {
	username string
	err      error
}

type logoutDoneMsg struct {
	err error
}

func checkAuth(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		username, err := c.CheckAuth(context.Background())
		return authCheckedMsg{username: username, err: err}
	}
}

func loadNames(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		names, err := c.Names(context.Background())
		return namesLoadedMsg{names: names, err: err}
	}
}

func loadActiveNames(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		names, err := c.ActiveNames(context.Background())
		return activeNamesLoadedMsg{names: names, err: err}
	}
}

func loadNormalTasks(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		tasks, err := c.NormalTasks(context.Background())
		return normalTasksLoadedMsg{tasks: tasks, err: err}
	}
}

func loadSpecialTasks(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		tasks, err := c.SpecialTasks(context.Background())
		return specialTasksLoadedMsg{tasks: tasks, err: err}
	}
}

func loadIdeas(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		ideas, err := c.Ideas(context.Background())
		return ideasLoadedMsg{ideas: ideas, err: err}
	}
}

func loadAnnouncements(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		anns, err := c.Announcements(context.Background())
		return announcementsLoadedMsg{anns: anns, err: err}
	}
}

func loadActiveUsers(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		users, err := c.ActiveUsers(context.Background())
		return usersLoadedMsg{users: users, err: err}
	}
}

func loadDesires(c *api.Client, category model.DesireCategory) tea.Cmd {
	return func() tea.Msg {
		var (
			desires []model.Desire
			err     error
		)
		if category == model.DesireLongTerm {
			desires, err = c.LongTermDesires(context.Background())
		} else {
			desires, err = c.ShortTermDesires(context.Background())
		}
		return desiresLoadedMsg{category: category, desires: desires, err: err}
	}
}

func loadMonthly(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		d, err := c.CurrentMonthlyDesire(context.Background())
		return monthlyLoadedMsg{desire: d, err: err}
	}
}

func loadDashboardStats(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		stats, err := c.DashboardStats(context.Background())
		return dashboardStatsLoadedMsg{stats: stats, err: err}
	}
}

func loadPendingIdeaCount(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		n, err := c.PendingIdeaCount(context.Background())
		return pendingIdeasLoadedMsg{count: n, err: err}
	}
}

func loadAnnouncementCount(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		n, err := c.ActiveAnnouncementCount(context.Background())
		return announcementCountLoadedMsg{count: n, err: err}
	}
}

func loadActivityStats(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		stats, err := c.ActivityStats(context.Background())
		return activityStatsLoadedMsg{stats: stats, err: err}
	}
}

func loadTopVisitors(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		visitors, err := c.TopVisitors(context.Background())
		return topVisitorsLoadedMsg{visitors: visitors, err: err}
	}
}

func loadInactiveUsers(c *api.Client, days int) tea.Cmd {
	return func() tea.Msg {
		users, err := c.InactiveUsers(context.Background(), days)
		return inactiveUsersLoadedMsg{days: days, users: users, err: err}
	}
}

func doLogin(c *api.Client, username, password string) tea.Cmd {
	return func() tea.Msg {
		err := c.Login(context.Background(), username, password)
		return loginDoneMsg{username: username, err: err}
	}
}

func doLogout(c *api.Client) tea.Cmd {
	return func() tea.Msg {
		return logoutDoneMsg{err: c.Logout(context.Background())}
	}
}

// actionKind tags write operations so their completion messages can be
// routed to the right toast and reload.
type actionKind int

const (
	actionAddName actionKind = iota
	actionUpdateName
	actionDeleteName
	actionGenerateTasks
	actionClearTasks
	actionReplaceTask
	actionSubmitIdea
	actionMarkViewed
	actionRespondIdea
	actionDeleteIdea
	actionCreateAnnouncement
	actionDeleteAnnouncement
	actionAddDesire
	actionUpdateDesire
	actionDeleteDesire
	actionSetMonthly
)

type actionDoneMsg struct {
	kind actionKind
	err  error
}

func runAction(kind actionKind, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{kind: kind, err: fn(context.Background())}
	}
}
