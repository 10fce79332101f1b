package tui

import (
	"context"
	"strconv"
	"strings"

	"rota-cli/internal/api"
	"rota-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// startAction marks the model busy and dispatches a write. The busy flag
// stays set until the matching actionDoneMsg arrives, so a repeated Enter
// cannot fire the same request twice.
func (m *appModel) startAction(kind actionKind, fn func(context.Context) error) tea.Cmd {
	if m.submitting {
		return nil
	}
	m.submitting = true
	return tea.Batch(runAction(kind, fn), m.spin.Tick)
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		// The in-flight write owns the modal until it settles.
		return m, nil
	}

	switch m.modal {
	case modalNameForm:
		return m.updateNameForm(msg)
	case modalConfirmDeleteName:
		return m.updateConfirm(msg, "delete-name")
	case modalGenerateTasks:
		return m.updateGenerateForm(msg)
	case modalConfirmGenerateTasks:
		return m.updateConfirm(msg, "generate-tasks")
	case modalConfirmClearTasks:
		return m.updateConfirm(msg, "clear-tasks")
	case modalReplacePicker:
		return m.updateReplacePicker(msg)
	case modalIdeaForm:
		return m.updateIdeaForm(msg)
	case modalIdeaDetail, modalAnnouncementDetail:
		switch msg.String() {
		case "esc", "enter", "q":
			m.modal = modalNone
		}
		return m, nil
	case modalIdeaRespond:
		return m.updateRespondForm(msg)
	case modalConfirmDeleteIdea:
		return m.updateConfirm(msg, "delete-idea")
	case modalAnnouncementForm:
		return m.updateAnnouncementForm(msg)
	case modalConfirmDeleteAnnouncement:
		return m.updateConfirm(msg, "delete-announcement")
	case modalDesireForm:
		return m.updateDesireForm(msg)
	case modalConfirmDeleteDesire:
		return m.updateConfirm(msg, "delete-desire")
	case modalMonthlyForm:
		return m.updateMonthlyForm(msg)
	case modalConfirmLogout:
		return m.updateConfirm(msg, "logout")
	}
	return m, nil
}

// updateConfirm drives every yes/no modal. The action string picks the
// command to run on confirmation.
func (m appModel) updateConfirm(msg tea.KeyMsg, action string) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.modal = modalNone
		return m, nil
	case "tab", "left", "right", "shift+tab":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "y":
		return m.runConfirmed(action)
	case "enter":
		if m.confirmFocus == confirmFocusCancel {
			m.modal = modalNone
			return m, nil
		}
		return m.runConfirmed(action)
	}
	return m, nil
}

func (m appModel) runConfirmed(action string) (tea.Model, tea.Cmd) {
	id := m.confirmTargetID
	switch action {
	case "delete-name":
		cmd := m.startAction(actionDeleteName, func(ctx context.Context) error {
			return m.client.DeleteName(ctx, id)
		})
		return m, cmd
	case "generate-tasks":
		n := m.genCount
		cmd := m.startAction(actionGenerateTasks, func(ctx context.Context) error {
			return m.client.GenerateTasks(ctx, n)
		})
		return m, cmd
	case "clear-tasks":
		cmd := m.startAction(actionClearTasks, func(ctx context.Context) error {
			return m.client.ClearTasks(ctx)
		})
		return m, cmd
	case "delete-idea":
		cmd := m.startAction(actionDeleteIdea, func(ctx context.Context) error {
			return m.client.DeleteIdea(ctx, id)
		})
		return m, cmd
	case "delete-announcement":
		cmd := m.startAction(actionDeleteAnnouncement, func(ctx context.Context) error {
			return m.client.DeleteAnnouncement(ctx, id)
		})
		return m, cmd
	case "delete-desire":
		cmd := m.startAction(actionDeleteDesire, func(ctx context.Context) error {
			return m.client.DeleteDesire(ctx, id)
		})
		return m, cmd
	case "logout":
		return m, doLogout(m.client)
	}
	m.modal = modalNone
	return m, nil
}

func (m appModel) updateNameForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.nameInput.Value())
		if value == "" {
			cmd := m.toast.show("Please enter a name", toastError)
			return m, cmd
		}
		if m.nameEditID != 0 {
			id := m.nameEditID
			cmd := m.startAction(actionUpdateName, func(ctx context.Context) error {
				return m.client.UpdateName(ctx, id, value)
			})
			return m, cmd
		}
		cmd := m.startAction(actionAddName, func(ctx context.Context) error {
			return m.client.CreateName(ctx, value)
		})
		return m, cmd
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m appModel) updateGenerateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "enter":
		n, err := strconv.Atoi(strings.TrimSpace(m.genInput.Value()))
		if err != nil {
			cmd := m.toast.show("Please enter a valid number", toastError)
			return m, cmd
		}
		if n < api.MinimumNames {
			cmd := m.toast.show("Minimum 4 names required for task generation", toastError)
			return m, cmd
		}
		// Generation wipes today's tasks, so it gets the same confirm
		// gate as the other destructive actions.
		m.genCount = n
		m.modal = modalConfirmGenerateTasks
		m.confirmFocus = confirmFocusCancel
		return m, nil
	}
	var cmd tea.Cmd
	m.genInput, cmd = m.genInput.Update(msg)
	return m, cmd
}

func (m appModel) updateReplacePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "enter":
		it, ok := m.replacePicker.SelectedItem().(pickNameItem)
		if !ok {
			return m, nil
		}
		taskID, nameID := m.replaceTaskID, it.name.ID
		cmd := m.startAction(actionReplaceTask, func(ctx context.Context) error {
			return m.client.ReplaceTaskName(ctx, taskID, nameID)
		})
		return m, cmd
	}
	var cmd tea.Cmd
	m.replacePicker, cmd = m.replacePicker.Update(msg)
	return m, cmd
}

func (m appModel) updateIdeaForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "tab", "shift+tab":
		if m.ideaFocus == 0 {
			m.ideaFocus = 1
			m.ideaTitle.Blur()
			cmd := m.ideaContent.Focus()
			return m, cmd
		}
		m.ideaFocus = 0
		m.ideaContent.Blur()
		m.ideaTitle.Focus()
		return m, nil
	case "ctrl+s":
		title := strings.TrimSpace(m.ideaTitle.Value())
		content := strings.TrimSpace(m.ideaContent.Value())
		if title == "" || content == "" {
			cmd := m.toast.show("Please fill in all fields", toastError)
			return m, cmd
		}
		cmd := m.startAction(actionSubmitIdea, func(ctx context.Context) error {
			return m.client.SubmitIdea(ctx, title, content)
		})
		return m, cmd
	case "enter":
		// Enter submits from the title field and inserts a newline in the
		// content field.
		if m.ideaFocus == 0 {
			m.ideaFocus = 1
			m.ideaTitle.Blur()
			cmd := m.ideaContent.Focus()
			return m, cmd
		}
	}
	var cmd tea.Cmd
	if m.ideaFocus == 0 {
		m.ideaTitle, cmd = m.ideaTitle.Update(msg)
	} else {
		m.ideaContent, cmd = m.ideaContent.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateRespondForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "ctrl+s":
		response := strings.TrimSpace(m.respondInput.Value())
		if response == "" {
			cmd := m.toast.show("Please enter a response", toastError)
			return m, cmd
		}
		id := m.confirmTargetID
		cmd := m.startAction(actionRespondIdea, func(ctx context.Context) error {
			return m.client.RespondToIdea(ctx, id, response)
		})
		return m, cmd
	}
	var cmd tea.Cmd
	m.respondInput, cmd = m.respondInput.Update(msg)
	return m, cmd
}

const (
	annFocusTitle = iota
	annFocusContent
	annFocusAudience
	annFocusUser
)

func (m appModel) updateAnnouncementForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "tab":
		return m.cycleAnnFocus(1)
	case "shift+tab":
		return m.cycleAnnFocus(-1)
	case "ctrl+s":
		title := strings.TrimSpace(m.annTitle.Value())
		content := strings.TrimSpace(m.annContent.Value())
		if title == "" || content == "" {
			cmd := m.toast.show("Please fill in all fields", toastError)
			return m, cmd
		}
		req := api.CreateAnnouncementRequest{
			Title:   title,
			Content: content,
			SendTo:  m.annAudience,
		}
		if m.annAudience == model.AudienceSpecific {
			it, ok := m.annUserPicker.SelectedItem().(userItem)
			if !ok {
				cmd := m.toast.show("Please select a user", toastError)
				return m, cmd
			}
			id := it.user.ID
			req.SpecificUserID = &id
		}
		cmd := m.startAction(actionCreateAnnouncement, func(ctx context.Context) error {
			return m.client.CreateAnnouncement(ctx, req)
		})
		return m, cmd
	}

	switch m.annFocus {
	case annFocusTitle:
		var cmd tea.Cmd
		m.annTitle, cmd = m.annTitle.Update(msg)
		return m, cmd
	case annFocusContent:
		var cmd tea.Cmd
		m.annContent, cmd = m.annContent.Update(msg)
		return m, cmd
	case annFocusAudience:
		switch msg.String() {
		case "left", "right", " ", "enter":
			if m.annAudience == model.AudienceAll {
				m.annAudience = model.AudienceSpecific
			} else {
				m.annAudience = model.AudienceAll
			}
		}
		return m, nil
	case annFocusUser:
		var cmd tea.Cmd
		m.annUserPicker, cmd = m.annUserPicker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) cycleAnnFocus(dir int) (tea.Model, tea.Cmd) {
	last := annFocusAudience
	if m.annAudience == model.AudienceSpecific {
		last = annFocusUser
	}
	next := m.annFocus + dir
	if next < annFocusTitle {
		next = last
	}
	if next > last {
		next = annFocusTitle
	}
	m.annFocus = next

	m.annTitle.Blur()
	m.annContent.Blur()
	var cmd tea.Cmd
	switch next {
	case annFocusTitle:
		m.annTitle.Focus()
	case annFocusContent:
		cmd = m.annContent.Focus()
	}
	return m, cmd
}

func (m appModel) updateDesireForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "tab":
		if m.desireFormCategory == model.DesireShortTerm {
			m.desireFormCategory = model.DesireLongTerm
		} else {
			m.desireFormCategory = model.DesireShortTerm
		}
		return m, nil
	case "enter":
		description := strings.TrimSpace(m.desireInput.Value())
		if description == "" {
			cmd := m.toast.show("Please fill in all fields", toastError)
			return m, cmd
		}
		category := m.desireFormCategory
		if m.desireEditID != 0 {
			id := m.desireEditID
			cmd := m.startAction(actionUpdateDesire, func(ctx context.Context) error {
				return m.client.UpdateDesire(ctx, id, description, category)
			})
			return m, cmd
		}
		cmd := m.startAction(actionAddDesire, func(ctx context.Context) error {
			return m.client.CreateDesire(ctx, description, category)
		})
		return m, cmd
	}
	var cmd tea.Cmd
	m.desireInput, cmd = m.desireInput.Update(msg)
	return m, cmd
}

func (m appModel) updateMonthlyForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "ctrl+s":
		message := strings.TrimSpace(m.monthlyInput.Value())
		if message == "" {
			cmd := m.toast.show("Please enter a message", toastError)
			return m, cmd
		}
		cmd := m.startAction(actionSetMonthly, func(ctx context.Context) error {
			return m.client.SetMonthlyDesire(ctx, message)
		})
		return m, cmd
	}
	var cmd tea.Cmd
	m.monthlyInput, cmd = m.monthlyInput.Update(msg)
	return m, cmd
}
