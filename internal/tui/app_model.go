package tui

import (
	"rota-cli/internal/api"
	"rota-cli/internal/model"
	"rota-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type view int

const (
	viewLogin view = iota
	viewDashboard
	viewNames
	viewTasks
	viewIdeas
	viewAnnouncements
	viewDesires
	viewMonthly
	viewActivity
)

type modalKind int

const (
	modalNone modalKind = iota
	modalNameForm
	modalConfirmDeleteName
	modalGenerateTasks
	modalConfirmGenerateTasks
	modalConfirmClearTasks
	modalReplacePicker
	modalIdeaForm
	modalIdeaDetail
	modalIdeaRespond
	modalConfirmDeleteIdea
	modalAnnouncementForm
	modalAnnouncementDetail
	modalConfirmDeleteAnnouncement
	modalDesireForm
	modalConfirmDeleteDesire
	modalMonthlyForm
	modalConfirmLogout
)

// menuEntry is one row of the dashboard menu.
type menuEntry struct {
	label string
	key   string
	view  view
}

var dashboardMenu = []menuEntry{
	{"Names", "1", viewNames},
	{"Today's tasks", "2", viewTasks},
	{"Ideas", "3", viewIdeas},
	{"Announcements", "4", viewAnnouncements},
	{"Desires", "5", viewDesires},
	{"Monthly message", "6", viewMonthly},
	{"User activity", "7", viewActivity},
}

type appModel struct {
	client *api.Client
	cfg    *store.Config

	width, height int
	view          view
	modal         modalKind
	toast         toast
	spin          spinner.Model

	// submitting gates the active modal's submit so a held Enter cannot
	// fire the same write twice.
	submitting bool

	// login
	loginUser textinput.Model
	loginPass textinput.Model
	loginFocus int
	loginErr   string
	loggingIn  bool

	// dashboard
	menuIndex       int
	stats           model.DashboardStats
	statsLoaded     bool
	pendingIdeas    int
	activeAnnCount  int
	monthly         *model.MonthlyDesire
	monthlyLoaded   bool

	// names
	names        list.Model
	namesLoading bool
	nameInput    textinput.Model
	nameEditID   int64

	// tasks
	tasks         list.Model
	normalTasks   []model.Task
	specialTasks  []model.Task
	tasksLoading  bool
	genInput      textinput.Model
	replacePicker list.Model
	replaceTaskID int64

	// ideas
	ideas        list.Model
	ideasLoading bool
	ideaTitle    textinput.Model
	ideaContent  textarea.Model
	ideaFocus    int
	respondInput textarea.Model

	// announcements
	anns          list.Model
	annsLoading   bool
	annTitle      textinput.Model
	annContent    textarea.Model
	annAudience   model.Audience
	annUserPicker list.Model
	annUsersLoaded bool
	annFocus      int

	// desires
	desires            list.Model
	desireTab          model.DesireCategory
	desiresLoading     bool
	desireInput        textinput.Model
	desireEditID       int64
	desireFormCategory model.DesireCategory

	// monthly
	monthlyInput textarea.Model

	// activity
	activityStats   model.ActivityStats
	topVisitors     []model.UserActivity
	inactiveUsers   []model.UserActivity
	inactiveDays    int
	activityLoading bool

	confirmFocus    confirmModalFocus
	confirmTargetID int64
	genCount        int
}

func newAppModel(client *api.Client, cfg *store.Config) appModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 64
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 128
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 80

	genInput := textinput.New()
	genInput.Placeholder = "number of names"
	genInput.CharLimit = 4

	ideaTitle := textinput.New()
	ideaTitle.Placeholder = "title"
	ideaTitle.CharLimit = 120

	ideaContent := textarea.New()
	ideaContent.Placeholder = "describe your idea"
	ideaContent.SetHeight(5)
	ideaContent.ShowLineNumbers = false

	respond := textarea.New()
	respond.Placeholder = "response"
	respond.SetHeight(4)
	respond.ShowLineNumbers = false

	annTitle := textinput.New()
	annTitle.Placeholder = "title"
	annTitle.CharLimit = 120

	annContent := textarea.New()
	annContent.Placeholder = "announcement text"
	annContent.SetHeight(5)
	annContent.ShowLineNumbers = false

	desireInput := textinput.New()
	desireInput.Placeholder = "description"
	desireInput.CharLimit = 200

	monthlyInput := textarea.New()
	monthlyInput.Placeholder = "message for this month"
	monthlyInput.SetHeight(5)
	monthlyInput.ShowLineNumbers = false

	m := appModel{
		client: client,
		cfg:    cfg,
		spin:   sp,

		loginUser: user,
		loginPass: pass,

		names:         newList("Names", nil),
		tasks:         newList("Tasks", nil),
		ideas:         newList("Ideas", nil),
		anns:          newList("Announcements", nil),
		desires:       newList("Desires", nil),
		replacePicker: newList("Replacement", nil),
		annUserPicker: newList("Users", nil),

		nameInput:    nameInput,
		genInput:     genInput,
		ideaTitle:    ideaTitle,
		ideaContent:  ideaContent,
		respondInput: respond,
		annTitle:     annTitle,
		annContent:   annContent,
		annAudience:  model.AudienceAll,
		desireInput:  desireInput,
		desireTab:    model.DesireShortTerm,
		monthlyInput: monthlyInput,

		inactiveDays: 7,
	}

	if cfg.LoggedIn() {
		m.view = viewDashboard
	} else {
		m.view = viewLogin
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.view == viewLogin {
		return textinput.Blink
	}
	return tea.Batch(m.loadDashboard()...)
}

// loadDashboard kicks off the dashboard widgets. Each resolves on its own.
// The auth check rides along so a dead session lands back on the login
// view instead of a wall of failure toasts.
func (m *appModel) loadDashboard() []tea.Cmd {
	m.statsLoaded = false
	m.monthlyLoaded = false
	return []tea.Cmd{
		checkAuth(m.client),
		loadDashboardStats(m.client),
		loadPendingIdeaCount(m.client),
		loadAnnouncementCount(m.client),
		loadMonthly(m.client),
		m.spin.Tick,
	}
}

func (m *appModel) openView(v view) tea.Cmd {
	m.view = v
	switch v {
	case viewDashboard:
		return tea.Batch(m.loadDashboard()...)
	case viewNames:
		m.namesLoading = true
		return tea.Batch(loadNames(m.client), m.spin.Tick)
	case viewTasks:
		m.tasksLoading = true
		return tea.Batch(loadNormalTasks(m.client), loadSpecialTasks(m.client), m.spin.Tick)
	case viewIdeas:
		m.ideasLoading = true
		return tea.Batch(loadIdeas(m.client), m.spin.Tick)
	case viewAnnouncements:
		m.annsLoading = true
		return tea.Batch(loadAnnouncements(m.client), m.spin.Tick)
	case viewDesires:
		m.desiresLoading = true
		return tea.Batch(loadDesires(m.client, m.desireTab), m.spin.Tick)
	case viewMonthly:
		m.monthlyLoaded = false
		return tea.Batch(loadMonthly(m.client), m.spin.Tick)
	case viewActivity:
		m.activityLoading = true
		return tea.Batch(
			loadActivityStats(m.client),
			loadTopVisitors(m.client),
			loadInactiveUsers(m.client, m.inactiveDays),
			m.spin.Tick,
		)
	}
	return nil
}

// selectedTask returns the task under the cursor in the tasks list.
func (m appModel) selectedTask() (model.Task, bool) {
	it, ok := m.tasks.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return it.task, true
}

func (m appModel) selectedName() (model.Name, bool) {
	it, ok := m.names.SelectedItem().(nameItem)
	if !ok {
		return model.Name{}, false
	}
	return it.name, true
}

func (m appModel) selectedIdea() (model.Idea, bool) {
	it, ok := m.ideas.SelectedItem().(ideaItem)
	if !ok {
		return model.Idea{}, false
	}
	return it.idea, true
}

func (m appModel) selectedAnnouncement() (model.Announcement, bool) {
	it, ok := m.anns.SelectedItem().(announcementItem)
	if !ok {
		return model.Announcement{}, false
	}
	return it.ann, true
}

func (m appModel) selectedDesire() (model.Desire, bool) {
	it, ok := m.desires.SelectedItem().(desireItem)
	if !ok {
		return model.Desire{}, false
	}
	return it.desire, true
}

func namesToItems(names []model.Name) []list.Item {
	items := make([]list.Item, 0, len(names))
	for _, n := range names {
		items = append(items, nameItem{name: n})
	}
	return items
}

func tasksToItems(normal, special []model.Task) []list.Item {
	items := make([]list.Item, 0, len(normal)+len(special))
	for _, t := range normal {
		items = append(items, taskItem{task: t})
	}
	for _, t := range special {
		items = append(items, taskItem{task: t})
	}
	return items
}

func ideasToItems(ideas []model.Idea) []list.Item {
	items := make([]list.Item, 0, len(ideas))
	for _, i := range ideas {
		items = append(items, ideaItem{idea: i})
	}
	return items
}

func announcementsToItems(anns []model.Announcement) []list.Item {
	items := make([]list.Item, 0, len(anns))
	for _, a := range anns {
		items = append(items, announcementItem{ann: a})
	}
	return items
}

func desiresToItems(desires []model.Desire) []list.Item {
	items := make([]list.Item, 0, len(desires))
	for _, d := range desires {
		items = append(items, desireItem{desire: d})
	}
	return items
}

func usersToItems(users []model.User) []list.Item {
	items := make([]list.Item, 0, len(users))
	for _, u := range users {
		items = append(items, userItem{user: u})
	}
	return items
}

func pickNamesToItems(names []model.Name) []list.Item {
	items := make([]list.Item, 0, len(names))
	for _, n := range names {
		items = append(items, pickNameItem{name: n})
	}
	return items
}
