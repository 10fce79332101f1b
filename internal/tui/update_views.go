package tui

import (
	"context"

	"rota-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case viewDashboard:
		return m.updateDashboardKeys(msg)
	case viewNames:
		return m.updateNamesKeys(msg)
	case viewTasks:
		return m.updateTasksKeys(msg)
	case viewIdeas:
		return m.updateIdeasKeys(msg)
	case viewAnnouncements:
		return m.updateAnnouncementsKeys(msg)
	case viewDesires:
		return m.updateDesiresKeys(msg)
	case viewMonthly:
		return m.updateMonthlyKeys(msg)
	case viewActivity:
		return m.updateActivityKeys(msg)
	}
	return m, nil
}

func (m appModel) updateDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+d":
		return m, tea.Quit
	case "up", "k", "ctrl+p":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
		return m, nil
	case "down", "j", "ctrl+n":
		if m.menuIndex < len(dashboardMenu)-1 {
			m.menuIndex++
		}
		return m, nil
	case "enter":
		cmd := m.openView(dashboardMenu[m.menuIndex].view)
		return m, cmd
	case "R":
		cmd := tea.Batch(m.loadDashboard()...)
		return m, cmd
	case "L":
		m.modal = modalConfirmLogout
		m.confirmFocus = confirmFocusCancel
		return m, nil
	}
	for i, entry := range dashboardMenu {
		if msg.String() == entry.key {
			m.menuIndex = i
			cmd := m.openView(entry.view)
			return m, cmd
		}
	}
	return m, nil
}

func (m appModel) updateNamesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.names.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.names, cmd = m.names.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.view = viewDashboard
		cmd := tea.Batch(m.loadDashboard()...)
		return m, cmd
	case "q", "ctrl+d":
		return m, tea.Quit
	case "R":
		m.namesLoading = true
		return m, tea.Batch(loadNames(m.client), m.spin.Tick)
	case "a":
		m.nameEditID = 0
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		m.modal = modalNameForm
		return m, textinput.Blink
	case "e":
		name, ok := m.selectedName()
		if !ok {
			return m, nil
		}
		m.nameEditID = name.ID
		m.nameInput.SetValue(name.Name)
		m.nameInput.CursorEnd()
		m.nameInput.Focus()
		m.modal = modalNameForm
		return m, textinput.Blink
	case "d":
		name, ok := m.selectedName()
		if !ok {
			return m, nil
		}
		m.confirmTargetID = name.ID
		m.confirmFocus = confirmFocusCancel
		m.modal = modalConfirmDeleteName
		return m, nil
	}

	var cmd tea.Cmd
	m.names, cmd = m.names.Update(msg)
	return m, cmd
}

func (m appModel) updateTasksKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.tasks.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.tasks, cmd = m.tasks.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.view = viewDashboard
		cmd := tea.Batch(m.loadDashboard()...)
		return m, cmd
	case "q", "ctrl+d":
		return m, tea.Quit
	case "R":
		m.tasksLoading = true
		return m, tea.Batch(loadNormalTasks(m.client), loadSpecialTasks(m.client), m.spin.Tick)
	case "g":
		m.genInput.SetValue("")
		m.genInput.Focus()
		m.modal = modalGenerateTasks
		return m, textinput.Blink
	case "c":
		m.confirmFocus = confirmFocusCancel
		m.modal = modalConfirmClearTasks
		return m, nil
	case "r":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.replaceTaskID = task.ID
		m.modal = modalReplacePicker
		// Refresh the roster each time; activations may have changed.
		cmd := tea.Batch(m.replacePicker.SetItems(nil), loadActiveNames(m.client), m.spin.Tick)
		return m, cmd
	}

	var cmd tea.Cmd
	m.tasks, cmd = m.tasks.Update(msg)
	return m, cmd
}

func (m appModel) updateIdeasKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ideas.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.ideas, cmd = m.ideas.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.view = viewDashboard
		cmd := tea.Batch(m.loadDashboard()...)
		return m, cmd
	case "q", "ctrl+d":
		return m, tea.Quit
	case "R":
		m.ideasLoading = true
		return m, tea.Batch(loadIdeas(m.client), m.spin.Tick)
	case "n":
		m.ideaTitle.SetValue("")
		m.ideaContent.SetValue("")
		m.ideaFocus = 0
		m.ideaTitle.Focus()
		m.ideaContent.Blur()
		m.modal = modalIdeaForm
		return m, textinput.Blink
	case "enter":
		if _, ok := m.selectedIdea(); !ok {
			return m, nil
		}
		m.modal = modalIdeaDetail
		return m, nil
	case "v":
		idea, ok := m.selectedIdea()
		if !ok {
			return m, nil
		}
		if !idea.CanMarkViewed() {
			cmd := m.toast.show("Only pending ideas can be marked as viewed", toastInfo)
			return m, cmd
		}
		cmd := m.startAction(actionMarkViewed, func(ctx context.Context) error {
			return m.client.MarkIdeaViewed(ctx, idea.ID)
		})
		return m, cmd
	case "p":
		idea, ok := m.selectedIdea()
		if !ok {
			return m, nil
		}
		m.confirmTargetID = idea.ID
		m.respondInput.SetValue("")
		m.respondInput.Focus()
		m.modal = modalIdeaRespond
		return m, nil
	case "d":
		idea, ok := m.selectedIdea()
		if !ok {
			return m, nil
		}
		m.confirmTargetID = idea.ID
		m.confirmFocus = confirmFocusCancel
		m.modal = modalConfirmDeleteIdea
		return m, nil
	}

	var cmd tea.Cmd
	m.ideas, cmd = m.ideas.Update(msg)
	return m, cmd
}

func (m appModel) updateAnnouncementsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.anns.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.anns, cmd = m.anns.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.view = viewDashboard
		cmd := tea.Batch(m.loadDashboard()...)
		return m, cmd
	case "q", "ctrl+d":
		return m, tea.Quit
	case "R":
		m.annsLoading = true
		return m, tea.Batch(loadAnnouncements(m.client), m.spin.Tick)
	case "n":
		m.annTitle.SetValue("")
		m.annContent.SetValue("")
		m.annAudience = model.AudienceAll
		m.annFocus = 0
		m.annTitle.Focus()
		m.annContent.Blur()
		m.annUsersLoaded = false
		m.modal = modalAnnouncementForm
		cmd := tea.Batch(textinput.Blink, m.annUserPicker.SetItems(nil), loadActiveUsers(m.client))
		return m, cmd
	case "enter":
		if _, ok := m.selectedAnnouncement(); !ok {
			return m, nil
		}
		m.modal = modalAnnouncementDetail
		return m, nil
	case "d":
		ann, ok := m.selectedAnnouncement()
		if !ok {
			return m, nil
		}
		m.confirmTargetID = ann.ID
		m.confirmFocus = confirmFocusCancel
		m.modal = modalConfirmDeleteAnnouncement
		return m, nil
	}

	var cmd tea.Cmd
	m.anns, cmd = m.anns.Update(msg)
	return m, cmd
}

func (m appModel) updateDesiresKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.desires.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.desires, cmd = m.desires.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.view = viewDashboard
		cmd := tea.Batch(m.loadDashboard()...)
		return m, cmd
	case "q", "ctrl+d":
		return m, tea.Quit
	case "tab":
		if m.desireTab == model.DesireShortTerm {
			m.desireTab = model.DesireLongTerm
		} else {
			m.desireTab = model.DesireShortTerm
		}
		m.desiresLoading = true
		cmd := tea.Batch(m.desires.SetItems(nil), loadDesires(m.client, m.desireTab), m.spin.Tick)
		return m, cmd
	case "R":
		m.desiresLoading = true
		return m, tea.Batch(loadDesires(m.client, m.desireTab), m.spin.Tick)
	case "n":
		m.desireEditID = 0
		m.desireFormCategory = m.desireTab
		m.desireInput.SetValue("")
		m.desireInput.Focus()
		m.modal = modalDesireForm
		return m, textinput.Blink
	case "e":
		desire, ok := m.selectedDesire()
		if !ok {
			return m, nil
		}
		m.desireEditID = desire.ID
		m.desireFormCategory = desire.Category
		m.desireInput.SetValue(desire.Description)
		m.desireInput.CursorEnd()
		m.desireInput.Focus()
		m.modal = modalDesireForm
		return m, textinput.Blink
	case "d":
		desire, ok := m.selectedDesire()
		if !ok {
			return m, nil
		}
		m.confirmTargetID = desire.ID
		m.confirmFocus = confirmFocusCancel
		m.modal = modalConfirmDeleteDesire
		return m, nil
	}

	var cmd tea.Cmd
	m.desires, cmd = m.desires.Update(msg)
	return m, cmd
}

func (m appModel) updateMonthlyKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = viewDashboard
		cmd := tea.Batch(m.loadDashboard()...)
		return m, cmd
	case "q", "ctrl+d":
		return m, tea.Quit
	case "R":
		m.monthlyLoaded = false
		return m, tea.Batch(loadMonthly(m.client), m.spin.Tick)
	case "e":
		if m.monthly != nil {
			m.monthlyInput.SetValue(m.monthly.Message)
		} else {
			m.monthlyInput.SetValue("")
		}
		m.monthlyInput.Focus()
		m.modal = modalMonthlyForm
		return m, nil
	}
	return m, nil
}

func (m appModel) updateActivityKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = viewDashboard
		cmd := tea.Batch(m.loadDashboard()...)
		return m, cmd
	case "q", "ctrl+d":
		return m, tea.Quit
	case "R":
		m.activityLoading = true
		return m, tea.Batch(
			loadActivityStats(m.client),
			loadTopVisitors(m.client),
			loadInactiveUsers(m.client, m.inactiveDays),
			m.spin.Tick,
		)
	case "+", "=":
		m.inactiveDays++
		return m, tea.Batch(loadInactiveUsers(m.client, m.inactiveDays), m.spin.Tick)
	case "-":
		if m.inactiveDays > 1 {
			m.inactiveDays--
			return m, tea.Batch(loadInactiveUsers(m.client, m.inactiveDays), m.spin.Tick)
		}
		return m, nil
	}
	return m, nil
}
