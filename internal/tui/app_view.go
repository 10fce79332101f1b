package tui

import (
	"fmt"
	"strings"

	"rota-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.width == 0 {
		return ""
	}
	if m.view == viewLogin {
		return m.viewLoginScreen()
	}

	header := m.viewHeader()
	footer := m.viewFooter()
	bodyH := m.height - lipgloss.Height(header) - lipgloss.Height(footer)

	var body string
	if m.modal != modalNone {
		body = lipgloss.Place(m.width, bodyH, lipgloss.Center, lipgloss.Center, m.renderModal())
	} else {
		body = normalizePane(m.viewBody(), m.width, bodyH)
	}

	return header + "\n" + body + "\n" + footer
}

func (m appModel) viewTitle() string {
	switch m.view {
	case viewNames:
		return "Names"
	case viewTasks:
		return "Today's tasks"
	case viewIdeas:
		return "Ideas"
	case viewAnnouncements:
		return "Announcements"
	case viewDesires:
		if m.desireTab == model.DesireLongTerm {
			return "Desires · long-term"
		}
		return "Desires · short-term"
	case viewMonthly:
		return "Monthly message"
	case viewActivity:
		return "User activity"
	}
	return "Dashboard"
}

func (m appModel) viewHeader() string {
	left := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("rota")
	title := " " + m.viewTitle()
	right := styleMuted().Render(m.cfg.Username + " @ " + m.client.ServerURL())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return truncateLine(left+title+strings.Repeat(" ", gap)+right, m.width)
}

func (m appModel) viewFooter() string {
	var help string
	switch m.view {
	case viewDashboard:
		help = "↑/↓: navigate   enter: open   R: refresh   L: logout   q: quit"
	case viewNames:
		help = "a: add   e: edit   d: delete   /: filter   R: refresh   esc: back"
	case viewTasks:
		help = "g: generate   r: replace name   c: clear all   R: refresh   esc: back"
	case viewIdeas:
		help = "n: new   enter: view   v: mark viewed   p: respond   d: delete   esc: back"
	case viewAnnouncements:
		help = "n: new   enter: view   d: delete   R: refresh   esc: back"
	case viewDesires:
		help = "tab: switch category   n: new   e: edit   d: delete   esc: back"
	case viewMonthly:
		help = "e: edit message   R: refresh   esc: back"
	case viewActivity:
		help = "+/-: inactivity window   R: refresh   esc: back"
	}

	line := styleMuted().Render(truncateLine(help, m.width))
	toastLine := m.toast.view(m.width)
	if toastLine == "" && m.anythingLoading() {
		toastLine = m.spin.View() + styleMuted().Render(" loading…")
	}
	return toastLine + "\n" + line
}

func (m appModel) viewBody() string {
	switch m.view {
	case viewDashboard:
		return m.viewDashboardBody()
	case viewNames:
		if !m.namesLoading && len(m.names.Items()) == 0 {
			return emptyState("No names yet")
		}
		return m.names.View()
	case viewTasks:
		return m.viewTasksBody()
	case viewIdeas:
		if !m.ideasLoading && len(m.ideas.Items()) == 0 {
			return emptyState("No ideas yet")
		}
		return m.ideas.View()
	case viewAnnouncements:
		if !m.annsLoading && len(m.anns.Items()) == 0 {
			return emptyState("No announcements")
		}
		return m.anns.View()
	case viewDesires:
		if !m.desiresLoading && len(m.desires.Items()) == 0 {
			return emptyState("No desires yet")
		}
		return m.desires.View()
	case viewMonthly:
		return m.viewMonthlyBody()
	case viewActivity:
		return m.viewActivityBody()
	}
	return ""
}

func emptyState(text string) string {
	return "\n  " + styleMuted().Render(text)
}

func (m appModel) viewDashboardBody() string {
	var b strings.Builder

	if m.statsLoaded {
		stat := func(label string, value string) string {
			return styleMuted().Render(label+": ") + lipgloss.NewStyle().Bold(true).Render(value)
		}
		b.WriteString("  " + stat("names", fmt.Sprintf("%d (%d active)", m.stats.TotalNames, m.stats.ActiveNames)))
		b.WriteString("   " + stat("tasks today", fmt.Sprintf("%d", m.stats.TasksToday)))
		b.WriteString("   " + stat("pending ideas", fmt.Sprintf("%d", m.pendingIdeas)))
		b.WriteString("   " + stat("announcements", fmt.Sprintf("%d", m.activeAnnCount)))
		b.WriteString("\n")
	} else {
		b.WriteString("  " + m.spin.View() + styleMuted().Render(" loading stats…") + "\n")
	}

	if m.monthly != nil && m.monthly.Message != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(colorInfoFg).Render("This month: ") +
			truncateLine(m.monthly.Message, m.width-16) + "\n")
	}

	b.WriteString("\n")
	for i, entry := range dashboardMenu {
		prefix := "   "
		st := lipgloss.NewStyle()
		if i == m.menuIndex {
			prefix = " » "
			st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
		}
		key := styleMuted().Render("[" + entry.key + "] ")
		b.WriteString(prefix + key + st.Render(entry.label) + "\n")
	}
	return b.String()
}

func (m appModel) viewTasksBody() string {
	if m.tasksLoading {
		return "\n  " + m.spin.View() + styleMuted().Render(" loading…")
	}
	if len(m.normalTasks)+len(m.specialTasks) == 0 {
		return emptyState("No tasks generated yet")
	}
	counts := styleMuted().Render(fmt.Sprintf("  %d tasks (%d special)", len(m.normalTasks)+len(m.specialTasks), len(m.specialTasks)))
	return counts + "\n" + m.tasks.View()
}

func (m appModel) viewMonthlyBody() string {
	if !m.monthlyLoaded {
		return "\n  " + m.spin.View() + styleMuted().Render(" loading…")
	}
	if m.monthly == nil || m.monthly.Message == "" {
		return emptyState("No monthly message set")
	}
	var b strings.Builder
	if m.monthly.MonthYear != "" {
		b.WriteString("  " + styleMuted().Render(m.monthly.MonthYear) + "\n\n")
	}
	b.WriteString(renderMarkdown(m.monthly.Message, m.width-4))
	if m.monthly.UpdatedAt != nil {
		b.WriteString("\n\n  " + styleMuted().Render("updated "+timeAgo(m.monthly.UpdatedAt.Time)))
	}
	return b.String()
}

func (m appModel) viewActivityBody() string {
	if m.activityLoading {
		return "\n  " + m.spin.View() + styleMuted().Render(" loading…")
	}
	var b strings.Builder
	b.WriteString("  " + styleMuted().Render("total visits: ") +
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", m.activityStats.TotalVisits)) + "\n\n")

	b.WriteString("  " + lipgloss.NewStyle().Bold(true).Render("Top visitors") + "\n")
	if len(m.topVisitors) == 0 {
		b.WriteString("  " + styleMuted().Render("no visits recorded") + "\n")
	}
	for i, v := range m.topVisitors {
		if i >= 10 {
			break
		}
		last := ""
		if v.LastVisit != nil {
			last = "  last " + timeAgo(v.LastVisit.Time)
		}
		b.WriteString(fmt.Sprintf("  %2d. %-20s %4d visits%s\n", i+1, v.Username, v.VisitCount, styleMuted().Render(last)))
	}

	b.WriteString("\n  " + lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Inactive for %d+ days", m.inactiveDays)) + "\n")
	if len(m.inactiveUsers) == 0 {
		b.WriteString("  " + styleMuted().Render("everyone has been around") + "\n")
	}
	for _, v := range m.inactiveUsers {
		last := "never"
		if v.LastVisit != nil {
			last = timeAgo(v.LastVisit.Time)
		}
		b.WriteString(fmt.Sprintf("  %-20s %s\n", v.Username, styleMuted().Render("last seen "+last)))
	}
	return b.String()
}

func (m appModel) renderModal() string {
	bw := modalBodyWidth(m.width)

	switch m.modal {
	case modalNameForm:
		title := "Add name"
		if m.nameEditID != 0 {
			title = "Edit name"
		}
		content := fieldLabel("Name", true) + "\n" +
			renderInputLine(bw, m.nameInput.View()) + "\n\n" +
			styleMuted().Render("enter: save   esc: cancel")
		return renderModalBox(m.width, title, content)

	case modalConfirmDeleteName:
		return renderConfirmModal(m.width, "Delete name",
			"Are you sure you want to delete this name?", "Delete", "Cancel", m.confirmFocus)

	case modalGenerateTasks:
		content := fieldLabel("How many names?", true) + "\n" +
			renderInputLine(bw, m.genInput.View()) + "\n\n" +
			styleMuted().Render("Minimum 4 active names are required.") + "\n\n" +
			styleMuted().Render("enter: continue   esc: cancel")
		return renderModalBox(m.width, "Generate tasks", content)

	case modalConfirmGenerateTasks:
		return renderConfirmModal(m.width, "Generate tasks",
			fmt.Sprintf("Generate tasks for %d names? This will clear existing tasks for today.", m.genCount),
			"Generate", "Cancel", m.confirmFocus)

	case modalConfirmClearTasks:
		return renderConfirmModal(m.width, "Clear tasks",
			"Are you sure you want to clear all tasks?", "Clear", "Cancel", m.confirmFocus)

	case modalReplacePicker:
		content := m.replacePicker.View() + "\n" +
			styleMuted().Render("enter: replace with selected   esc: cancel")
		return renderModalBox(m.width, "Replace name", content)

	case modalIdeaForm:
		content := fieldLabel("Title", m.ideaFocus == 0) + "\n" +
			renderInputLine(bw, m.ideaTitle.View()) + "\n\n" +
			fieldLabel("Content", m.ideaFocus == 1) + "\n" +
			m.ideaContent.View() + "\n\n" +
			styleMuted().Render("tab: switch field   ctrl+s: submit   esc: cancel")
		return renderModalBox(m.width, "New idea", content)

	case modalIdeaDetail:
		idea, ok := m.selectedIdea()
		if !ok {
			return ""
		}
		var b strings.Builder
		b.WriteString(ideaStatusBadge(idea.Status) + "  " + styleMuted().Render("by "+idea.Username))
		if idea.CreatedAt != nil {
			b.WriteString(styleMuted().Render("  " + formatDate(idea.CreatedAt.Time)))
		}
		b.WriteString("\n\n" + renderMarkdown(idea.Content, bw))
		if idea.AdminResponse != "" {
			b.WriteString("\n\n" + lipgloss.NewStyle().Bold(true).Foreground(colorSuccessFg).Render("Response") + "\n")
			b.WriteString(renderMarkdown(idea.AdminResponse, bw))
			if idea.RespondedAt != nil {
				b.WriteString("\n" + styleMuted().Render(formatDate(idea.RespondedAt.Time)))
			}
		}
		b.WriteString("\n\n" + styleMuted().Render("esc: close"))
		return renderModalBox(m.width, idea.Title, b.String())

	case modalIdeaRespond:
		content := fieldLabel("Response", true) + "\n" +
			m.respondInput.View() + "\n\n" +
			styleMuted().Render("ctrl+s: send   esc: cancel")
		return renderModalBox(m.width, "Respond to idea", content)

	case modalConfirmDeleteIdea:
		return renderConfirmModal(m.width, "Delete idea",
			"Are you sure you want to delete this idea?", "Delete", "Cancel", m.confirmFocus)

	case modalAnnouncementForm:
		audience := "Everyone"
		if m.annAudience == model.AudienceSpecific {
			audience = "Specific user"
		}
		var b strings.Builder
		b.WriteString(fieldLabel("Title", m.annFocus == annFocusTitle) + "\n")
		b.WriteString(renderInputLine(bw, m.annTitle.View()) + "\n\n")
		b.WriteString(fieldLabel("Content", m.annFocus == annFocusContent) + "\n")
		b.WriteString(m.annContent.View() + "\n\n")
		b.WriteString(fieldLabel("Send to", m.annFocus == annFocusAudience) + "  " + audience + "\n")
		if m.annAudience == model.AudienceSpecific {
			b.WriteString("\n" + fieldLabel("User", m.annFocus == annFocusUser) + "\n")
			if m.annUsersLoaded {
				b.WriteString(m.annUserPicker.View() + "\n")
			} else {
				b.WriteString(m.spin.View() + styleMuted().Render(" loading users…") + "\n")
			}
		}
		b.WriteString("\n" + styleMuted().Render("tab: next field   ctrl+s: publish   esc: cancel"))
		return renderModalBox(m.width, "New announcement", b.String())

	case modalAnnouncementDetail:
		ann, ok := m.selectedAnnouncement()
		if !ok {
			return ""
		}
		target := "to everyone"
		if !ann.ForEveryone() {
			target = "to " + ann.SpecificUsername
		}
		var b strings.Builder
		b.WriteString(styleMuted().Render(target))
		if ann.CreatedAt != nil {
			b.WriteString(styleMuted().Render("  " + formatDate(ann.CreatedAt.Time)))
		}
		if ann.ExpiresAt != nil {
			b.WriteString(styleMuted().Render("  expires " + formatDate(ann.ExpiresAt.Time)))
		}
		b.WriteString("\n\n" + renderMarkdown(ann.Content, bw))
		b.WriteString("\n\n" + styleMuted().Render("esc: close"))
		return renderModalBox(m.width, ann.Title, b.String())

	case modalConfirmDeleteAnnouncement:
		return renderConfirmModal(m.width, "Delete announcement",
			"Are you sure you want to delete this announcement?", "Delete", "Cancel", m.confirmFocus)

	case modalDesireForm:
		title := "Add desire"
		if m.desireEditID != 0 {
			title = "Edit desire"
		}
		category := "short-term"
		if m.desireFormCategory == model.DesireLongTerm {
			category = "long-term"
		}
		content := fieldLabel("Description", true) + "\n" +
			renderInputLine(bw, m.desireInput.View()) + "\n\n" +
			fieldLabel("Category", false) + "  " + category + "\n\n" +
			styleMuted().Render("tab: toggle category   enter: save   esc: cancel")
		return renderModalBox(m.width, title, content)

	case modalConfirmDeleteDesire:
		return renderConfirmModal(m.width, "Delete desire",
			"Are you sure you want to delete this desire?", "Delete", "Cancel", m.confirmFocus)

	case modalMonthlyForm:
		content := fieldLabel("Message", true) + "\n" +
			m.monthlyInput.View() + "\n\n" +
			styleMuted().Render("ctrl+s: save   esc: cancel")
		return renderModalBox(m.width, "Monthly message", content)

	case modalConfirmLogout:
		return renderConfirmModal(m.width, "Log out",
			"Are you sure you want to logout?", "Logout", "Cancel", m.confirmFocus)
	}
	return ""
}
