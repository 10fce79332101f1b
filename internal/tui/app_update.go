package tui

import (
	"rota-cli/internal/store"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case spinner.TickMsg:
		if !m.anythingLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case toastExpiredMsg:
		m.toast.expire(msg)
		return m, nil

	case authCheckedMsg:
		if m.view == viewLogin {
			return m, nil
		}
		if msg.err != nil {
			m.cfg.ClearSession()
			_ = store.SaveConfig(m.cfg)
			m.client.SetSession("")
			m.modal = modalNone
			m.view = viewLogin
			m.loginErr = "Session expired. Please sign in again."
			m.loginFocus = 0
			m.loginUser.Focus()
			m.loginPass.Blur()
			return m, textinput.Blink
		}
		m.cfg.Username = msg.username
		return m, nil

	case loginDoneMsg:
		return m.handleLoginDone(msg)

	case logoutDoneMsg:
		// A failed server-side logout still drops the local session; the
		// cookie is useless to us once the user asked to leave.
		m.cfg.ClearSession()
		_ = store.SaveConfig(m.cfg)
		m.client.SetSession("")
		m.modal = modalNone
		m.view = viewLogin
		m.loginUser.SetValue("")
		m.loginPass.SetValue("")
		m.loginErr = ""
		m.loginFocus = 0
		m.loginUser.Focus()
		m.loginPass.Blur()
		return m, textinput.Blink

	case actionDoneMsg:
		return m.handleActionDone(msg)

	case namesLoadedMsg:
		m.namesLoading = false
		if msg.err != nil {
			cmd := m.toast.show("Failed to load names: "+msg.err.Error(), toastError)
			return m, cmd
		}
		cmd := m.names.SetItems(namesToItems(msg.names))
		return m, cmd

	case activeNamesLoadedMsg:
		if msg.err != nil {
			cmd := m.toast.show("Failed to load active names: "+msg.err.Error(), toastError)
			return m, cmd
		}
		cmd := m.replacePicker.SetItems(pickNamesToItems(msg.names))
		return m, cmd

	case normalTasksLoadedMsg:
		if msg.err != nil {
			m.tasksLoading = false
			cmd := m.toast.show("Failed to load tasks: "+msg.err.Error(), toastError)
			return m, cmd
		}
		m.normalTasks = msg.tasks
		m.tasksLoading = false
		cmd := m.tasks.SetItems(tasksToItems(m.normalTasks, m.specialTasks))
		return m, cmd

	case specialTasksLoadedMsg:
		if msg.err != nil {
			cmd := m.toast.show("Failed to load special tasks: "+msg.err.Error(), toastError)
			return m, cmd
		}
		m.specialTasks = msg.tasks
		cmd := m.tasks.SetItems(tasksToItems(m.normalTasks, m.specialTasks))
		return m, cmd

	case ideasLoadedMsg:
		m.ideasLoading = false
		if msg.err != nil {
			cmd := m.toast.show("Failed to load ideas: "+msg.err.Error(), toastError)
			return m, cmd
		}
		cmd := m.ideas.SetItems(ideasToItems(msg.ideas))
		return m, cmd

	case announcementsLoadedMsg:
		m.annsLoading = false
		if msg.err != nil {
			cmd := m.toast.show("Failed to load announcements: "+msg.err.Error(), toastError)
			return m, cmd
		}
		cmd := m.anns.SetItems(announcementsToItems(msg.anns))
		return m, cmd

	case usersLoadedMsg:
		if msg.err != nil {
			cmd := m.toast.show("Failed to load users: "+msg.err.Error(), toastError)
			return m, cmd
		}
		m.annUsersLoaded = true
		cmd := m.annUserPicker.SetItems(usersToItems(msg.users))
		return m, cmd

	case desiresLoadedMsg:
		// A stale response for the other tab must not clobber the one on
		// screen.
		if msg.category != m.desireTab {
			return m, nil
		}
		m.desiresLoading = false
		if msg.err != nil {
			cmd := m.toast.show("Failed to load desires: "+msg.err.Error(), toastError)
			return m, cmd
		}
		cmd := m.desires.SetItems(desiresToItems(msg.desires))
		return m, cmd

	case monthlyLoadedMsg:
		m.monthlyLoaded = true
		if msg.err != nil {
			cmd := m.toast.show("Failed to load monthly message: "+msg.err.Error(), toastError)
			return m, cmd
		}
		m.monthly = msg.desire
		return m, nil

	case dashboardStatsLoadedMsg:
		if msg.err != nil {
			m.statsLoaded = true
			cmd := m.toast.show("Failed to load stats: "+msg.err.Error(), toastError)
			return m, cmd
		}
		m.stats = msg.stats
		m.statsLoaded = true
		return m, nil

	case pendingIdeasLoadedMsg:
		if msg.err == nil {
			m.pendingIdeas = msg.count
		}
		return m, nil

	case announcementCountLoadedMsg:
		if msg.err == nil {
			m.activeAnnCount = msg.count
		}
		return m, nil

	case activityStatsLoadedMsg:
		m.activityLoading = false
		if msg.err != nil {
			cmd := m.toast.show("Failed to load activity: "+msg.err.Error(), toastError)
			return m, cmd
		}
		m.activityStats = msg.stats
		return m, nil

	case topVisitorsLoadedMsg:
		if msg.err != nil {
			cmd := m.toast.show("Failed to load top visitors: "+msg.err.Error(), toastError)
			return m, cmd
		}
		m.topVisitors = msg.visitors
		return m, nil

	case inactiveUsersLoadedMsg:
		if msg.days != m.inactiveDays {
			return m, nil
		}
		if msg.err != nil {
			cmd := m.toast.show("Failed to load inactive users: "+msg.err.Error(), toastError)
			return m, cmd
		}
		m.inactiveUsers = msg.users
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.view == viewLogin {
			return m.updateLogin(msg)
		}
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		return m.updateView(msg)
	}

	return m, nil
}

func (m *appModel) resizeLists() {
	w := m.width - 2
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	m.names.SetSize(w, h)
	m.tasks.SetSize(w, h)
	m.ideas.SetSize(w, h)
	m.anns.SetSize(w, h)
	m.desires.SetSize(w, h)

	pw := modalBodyWidth(m.width)
	m.replacePicker.SetSize(pw, 8)
	m.annUserPicker.SetSize(pw, 8)

	bw := modalBodyWidth(m.width)
	m.ideaContent.SetWidth(bw)
	m.respondInput.SetWidth(bw)
	m.annContent.SetWidth(bw)
	m.monthlyInput.SetWidth(bw)
}

func (m appModel) anythingLoading() bool {
	return m.loggingIn || m.submitting ||
		m.namesLoading || m.tasksLoading || m.ideasLoading ||
		m.annsLoading || m.desiresLoading || m.activityLoading ||
		(m.view == viewDashboard && !m.statsLoaded) ||
		(m.view == viewMonthly && !m.monthlyLoaded)
}

func (m appModel) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.loggingIn = false
	if msg.err != nil {
		m.loginErr = msg.err.Error()
		return m, nil
	}
	m.cfg.Session = m.client.Session()
	m.cfg.Username = msg.username
	if err := store.SaveConfig(m.cfg); err != nil {
		// Login still succeeded; the session just won't survive this
		// process.
		m.loginErr = ""
		m.view = viewDashboard
		cmds := m.loadDashboard()
		cmds = append(cmds, m.toast.show("Could not save session: "+err.Error(), toastError))
		return m, tea.Batch(cmds...)
	}
	m.loginErr = ""
	m.view = viewDashboard
	cmd := tea.Batch(m.loadDashboard()...)
	return m, cmd
}

func (m appModel) handleActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		// Server messages come through verbatim; the modal stays open so
		// the input survives a retry.
		cmd := m.toast.show(msg.err.Error(), toastError)
		return m, cmd
	}

	m.modal = modalNone
	var (
		text   string
		reload tea.Cmd
	)
	switch msg.kind {
	case actionAddName:
		text, reload = "Name added successfully", loadNames(m.client)
	case actionUpdateName:
		text, reload = "Name updated successfully", loadNames(m.client)
	case actionDeleteName:
		text, reload = "Name deleted successfully", loadNames(m.client)
	case actionGenerateTasks:
		text = "Tasks generated successfully"
		reload = tea.Batch(loadNormalTasks(m.client), loadSpecialTasks(m.client))
	case actionClearTasks:
		text = "All tasks cleared"
		reload = tea.Batch(loadNormalTasks(m.client), loadSpecialTasks(m.client))
	case actionReplaceTask:
		text = "Name replaced successfully"
		reload = tea.Batch(loadNormalTasks(m.client), loadSpecialTasks(m.client))
	case actionSubmitIdea:
		text, reload = "Idea submitted successfully", loadIdeas(m.client)
	case actionMarkViewed:
		text, reload = "Idea marked as viewed", loadIdeas(m.client)
	case actionRespondIdea:
		text, reload = "Response sent successfully", loadIdeas(m.client)
	case actionDeleteIdea:
		text, reload = "Idea deleted successfully", loadIdeas(m.client)
	case actionCreateAnnouncement:
		text, reload = "Announcement created successfully", loadAnnouncements(m.client)
	case actionDeleteAnnouncement:
		text, reload = "Announcement deleted successfully", loadAnnouncements(m.client)
	case actionAddDesire:
		text, reload = "Desire added successfully", loadDesires(m.client, m.desireTab)
	case actionUpdateDesire:
		text, reload = "Desire updated successfully", loadDesires(m.client, m.desireTab)
	case actionDeleteDesire:
		text, reload = "Desire deleted successfully", loadDesires(m.client, m.desireTab)
	case actionSetMonthly:
		text, reload = "Monthly message saved", loadMonthly(m.client)
	}

	cmds := []tea.Cmd{m.toast.show(text, toastSuccess)}
	if reload != nil {
		cmds = append(cmds, reload, m.spin.Tick)
	}
	return m, tea.Batch(cmds...)
}
