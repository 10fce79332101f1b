package tui

import (
	"errors"
	"strings"
	"testing"

	"rota-cli/internal/api"
	"rota-cli/internal/model"
	"rota-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel(t *testing.T, loggedIn bool) appModel {
	t.Helper()
	cfg := &store.Config{}
	if loggedIn {
		cfg.Session = "JSESSIONID=test"
		cfg.Username = "amina"
	}
	m := newAppModel(api.New("http://rotation.invalid"), cfg)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	return next.(appModel)
}

func keyPress(m appModel, s string) (appModel, tea.Cmd) {
	var msg tea.KeyMsg
	switch s {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		msg = tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	next, cmd := m.Update(msg)
	return next.(appModel), cmd
}

func typeString(m appModel, s string) appModel {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(appModel)
	}
	return m
}

func TestLoginValidationMakesNoRequest(t *testing.T) {
	m := testModel(t, false)
	if m.view != viewLogin {
		t.Fatalf("view = %d, want login", m.view)
	}

	m, cmd := keyPress(m, "enter")
	if cmd != nil {
		t.Fatal("empty submit must not produce a command")
	}
	if m.loginErr != "Please enter both username and password" {
		t.Fatalf("loginErr = %q", m.loginErr)
	}
	if m.loggingIn {
		t.Fatal("must not be marked in-flight")
	}
}

func TestLoginSubmitAndFailure(t *testing.T) {
	m := testModel(t, false)
	m = typeString(m, "amina")
	m, _ = keyPress(m, "tab")
	m = typeString(m, "s3cret")

	m, cmd := keyPress(m, "enter")
	if cmd == nil {
		t.Fatal("filled submit should dispatch the login request")
	}
	if !m.loggingIn {
		t.Fatal("should be in-flight")
	}

	// While in flight, input is frozen.
	frozen, _ := keyPress(m, "x")
	if frozen.loginUser.Value() != "amina" {
		t.Fatalf("input changed while in flight: %q", frozen.loginUser.Value())
	}

	next, _ := m.Update(loginDoneMsg{username: "amina", err: errors.New("Invalid username or password")})
	m = next.(appModel)
	if m.loggingIn {
		t.Fatal("failure must re-enable the form")
	}
	if m.loginErr != "Invalid username or password" {
		t.Fatalf("loginErr = %q", m.loginErr)
	}
	if m.view != viewLogin {
		t.Fatal("failed login must stay on the login screen")
	}
}

func TestLoginSuccessPersistsSession(t *testing.T) {
	t.Setenv("ROTA_CONFIG_DIR", t.TempDir())
	m := testModel(t, false)
	m.client.SetSession("JSESSIONID=fresh")

	next, _ := m.Update(loginDoneMsg{username: "amina"})
	m = next.(appModel)
	if m.view != viewDashboard {
		t.Fatalf("view = %d, want dashboard", m.view)
	}
	if m.cfg.Session != "JSESSIONID=fresh" || m.cfg.Username != "amina" {
		t.Fatalf("config not updated: %+v", m.cfg)
	}

	saved, err := store.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if saved.Session != "JSESSIONID=fresh" {
		t.Fatalf("saved session = %q", saved.Session)
	}
}

func TestNamesEmptyState(t *testing.T) {
	m := testModel(t, true)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	m = next.(appModel)
	if m.view != viewNames {
		t.Fatalf("view = %d, want names", m.view)
	}

	next, _ = m.Update(namesLoadedMsg{names: nil})
	m = next.(appModel)
	if !strings.Contains(m.viewBody(), "No names yet") {
		t.Fatalf("body missing empty state:\n%s", m.viewBody())
	}
}

func TestLoadFailureToasts(t *testing.T) {
	m := testModel(t, true)
	m.view = viewNames
	next, _ := m.Update(namesLoadedMsg{err: errors.New("connection refused")})
	m = next.(appModel)
	if !strings.Contains(m.toast.text, "Failed to load names") {
		t.Fatalf("toast = %q", m.toast.text)
	}
	if m.toast.level != toastError {
		t.Fatal("load failure should be an error toast")
	}
}

func TestGenerateTasksLocalValidation(t *testing.T) {
	m := testModel(t, true)
	m.view = viewTasks
	m, _ = keyPress(m, "g")
	if m.modal != modalGenerateTasks {
		t.Fatalf("modal = %d", m.modal)
	}

	m = typeString(m, "abc")
	m, _ = keyPress(m, "enter")
	if m.toast.text != "Please enter a valid number" {
		t.Fatalf("toast = %q", m.toast.text)
	}
	if m.submitting {
		t.Fatal("invalid input must not dispatch")
	}

	m.genInput.SetValue("3")
	m, _ = keyPress(m, "enter")
	if m.toast.text != "Minimum 4 names required for task generation" {
		t.Fatalf("toast = %q", m.toast.text)
	}
	if m.submitting {
		t.Fatal("undersized count must not dispatch")
	}

	m.genInput.SetValue("6")
	m, _ = keyPress(m, "enter")
	if m.submitting {
		t.Fatal("valid count must not dispatch before confirmation")
	}
	if m.modal != modalConfirmGenerateTasks {
		t.Fatalf("modal = %d, want generate confirmation", m.modal)
	}
}

func TestGenerateTasksIsConfirmGated(t *testing.T) {
	m := testModel(t, true)
	m.view = viewTasks
	m, _ = keyPress(m, "g")
	m.genInput.SetValue("6")
	m, _ = keyPress(m, "enter")
	if m.modal != modalConfirmGenerateTasks {
		t.Fatalf("modal = %d, want generate confirmation", m.modal)
	}
	if m.confirmFocus != confirmFocusCancel {
		t.Fatal("confirmation should default to cancel")
	}
	if !strings.Contains(m.View(), "This will clear existing tasks for today.") {
		t.Fatal("confirmation must warn that existing tasks are cleared")
	}

	// Declining drops back without a request.
	declined, cmd := keyPress(m, "esc")
	if cmd != nil || declined.submitting {
		t.Fatal("declined confirmation must not dispatch")
	}
	if declined.modal != modalNone {
		t.Fatalf("modal = %d, want closed", declined.modal)
	}

	m, cmd = keyPress(m, "y")
	if cmd == nil || !m.submitting {
		t.Fatal("confirmed generation should dispatch the request")
	}
}

func TestDeleteNameIsConfirmGated(t *testing.T) {
	m := testModel(t, true)
	m.view = viewNames
	next, _ := m.Update(namesLoadedMsg{names: []model.Name{{ID: 7, Name: "Amina", Active: true}}})
	m = next.(appModel)

	m, _ = keyPress(m, "d")
	if m.modal != modalConfirmDeleteName {
		t.Fatalf("modal = %d, want delete confirmation", m.modal)
	}
	if m.confirmFocus != confirmFocusCancel {
		t.Fatal("confirmation should default to cancel")
	}
	if m.confirmTargetID != 7 {
		t.Fatalf("target = %d", m.confirmTargetID)
	}

	// Enter on the default (cancel) must not delete.
	m, cmd := keyPress(m, "enter")
	if m.modal != modalNone || cmd != nil || m.submitting {
		t.Fatal("cancel should just close the modal")
	}

	m, _ = keyPress(m, "d")
	m, cmd = keyPress(m, "y")
	if cmd == nil || !m.submitting {
		t.Fatal("y should dispatch the delete")
	}
}

func TestActionDoneSuccessClosesModalAndReloads(t *testing.T) {
	m := testModel(t, true)
	m.view = viewNames
	m.modal = modalNameForm
	m.submitting = true

	next, cmd := m.Update(actionDoneMsg{kind: actionAddName})
	m = next.(appModel)
	if m.modal != modalNone {
		t.Fatal("success should close the modal")
	}
	if m.submitting {
		t.Fatal("busy flag should clear")
	}
	if m.toast.text != "Name added successfully" || m.toast.level != toastSuccess {
		t.Fatalf("toast = %q (%d)", m.toast.text, m.toast.level)
	}
	if cmd == nil {
		t.Fatal("success should schedule a reload")
	}
}

func TestActionDoneFailureKeepsModalOpen(t *testing.T) {
	m := testModel(t, true)
	m.view = viewNames
	m.modal = modalNameForm
	m.nameInput.SetValue("Amina")
	m.submitting = true

	next, _ := m.Update(actionDoneMsg{kind: actionAddName, err: &api.Error{Message: "Name already exists"}})
	m = next.(appModel)
	if m.modal != modalNameForm {
		t.Fatal("failure must keep the form open")
	}
	if m.nameInput.Value() != "Amina" {
		t.Fatal("input must survive a failed submit")
	}
	if m.toast.text != "Name already exists" || m.toast.level != toastError {
		t.Fatalf("toast = %q", m.toast.text)
	}
	if m.submitting {
		t.Fatal("busy flag should clear so the user can retry")
	}
}

func TestSubmitWhileBusyIsIgnored(t *testing.T) {
	m := testModel(t, true)
	m.view = viewNames
	m.modal = modalNameForm
	m.nameInput.SetValue("Amina")
	m.submitting = true

	_, cmd := keyPress(m, "enter")
	if cmd != nil {
		t.Fatal("second submit while busy must be a no-op")
	}
}

func TestMarkViewedOnlyFromPending(t *testing.T) {
	m := testModel(t, true)
	m.view = viewIdeas
	next, _ := m.Update(ideasLoadedMsg{ideas: []model.Idea{
		{ID: 1, Title: "t", Username: "amina", Status: model.IdeaViewed},
	}})
	m = next.(appModel)

	m, _ = keyPress(m, "v")
	if m.submitting {
		t.Fatal("viewed idea must not dispatch mark-viewed")
	}
	if !strings.Contains(m.toast.text, "Only pending ideas") {
		t.Fatalf("toast = %q", m.toast.text)
	}
}

func TestStaleDesireTabResponseIgnored(t *testing.T) {
	m := testModel(t, true)
	m.view = viewDesires
	m.desireTab = model.DesireLongTerm

	next, _ := m.Update(desiresLoadedMsg{
		category: model.DesireShortTerm,
		desires:  []model.Desire{{ID: 1, Description: "stale"}},
	})
	m = next.(appModel)
	if len(m.desires.Items()) != 0 {
		t.Fatal("response for the other tab must be dropped")
	}
}

func TestLogoutClearsLocalSession(t *testing.T) {
	t.Setenv("ROTA_CONFIG_DIR", t.TempDir())
	m := testModel(t, true)

	next, _ := m.Update(logoutDoneMsg{})
	m = next.(appModel)
	if m.view != viewLogin {
		t.Fatalf("view = %d, want login", m.view)
	}
	if m.cfg.LoggedIn() {
		t.Fatal("session should be cleared")
	}

	// Even a failed server-side logout drops the local session.
	m2 := testModel(t, true)
	next, _ = m2.Update(logoutDoneMsg{err: errors.New("boom")})
	m2 = next.(appModel)
	if m2.cfg.LoggedIn() {
		t.Fatal("failed logout must still clear the local session")
	}
}

func TestAnnouncementFormRequiresUserForSpecific(t *testing.T) {
	m := testModel(t, true)
	m.view = viewAnnouncements
	m.modal = modalAnnouncementForm
	m.annTitle.SetValue("Schedule")
	m.annContent.SetValue("New plan")
	m.annAudience = model.AudienceSpecific

	m, _ = keyPress(m, "ctrl+s")
	if m.submitting {
		t.Fatal("must not dispatch without a selected user")
	}
	if m.toast.text != "Please select a user" {
		t.Fatalf("toast = %q", m.toast.text)
	}
}

func TestIdeaFormValidation(t *testing.T) {
	m := testModel(t, true)
	m.view = viewIdeas
	m, _ = keyPress(m, "n")
	if m.modal != modalIdeaForm {
		t.Fatalf("modal = %d", m.modal)
	}

	m, _ = keyPress(m, "ctrl+s")
	if m.toast.text != "Please fill in all fields" {
		t.Fatalf("toast = %q", m.toast.text)
	}
	if m.submitting {
		t.Fatal("incomplete form must not dispatch")
	}

	m.ideaTitle.SetValue("Later start")
	m.ideaContent.SetValue("Move to 10am")
	m, cmd := keyPress(m, "ctrl+s")
	if cmd == nil || !m.submitting {
		t.Fatal("complete form should dispatch")
	}
}

func TestDesireFormValidation(t *testing.T) {
	m := testModel(t, true)
	m.view = viewDesires
	m, _ = keyPress(m, "n")
	if m.modal != modalDesireForm {
		t.Fatalf("modal = %d", m.modal)
	}

	m, _ = keyPress(m, "enter")
	if m.toast.text != "Please fill in all fields" {
		t.Fatalf("toast = %q", m.toast.text)
	}
	if m.submitting {
		t.Fatal("empty form must not dispatch")
	}

	m.desireInput.SetValue("Visit the elders")
	m, cmd := keyPress(m, "enter")
	if cmd == nil || !m.submitting {
		t.Fatal("filled form should dispatch")
	}
}

func TestStaleSessionReturnsToLogin(t *testing.T) {
	t.Setenv("ROTA_CONFIG_DIR", t.TempDir())
	m := testModel(t, true)
	if m.view != viewDashboard {
		t.Fatalf("view = %d, want dashboard", m.view)
	}

	next, cmd := m.Update(authCheckedMsg{err: errors.New("Not authenticated")})
	m = next.(appModel)
	if m.view != viewLogin {
		t.Fatalf("view = %d, want login", m.view)
	}
	if m.cfg.LoggedIn() {
		t.Fatal("dead session should be cleared")
	}
	if m.loginErr == "" {
		t.Fatal("login view should explain why the user landed there")
	}
	if cmd == nil {
		t.Fatal("login view should start with a blinking cursor")
	}
}

func TestAuthCheckSuppliesHeaderUsername(t *testing.T) {
	m := testModel(t, true)
	next, _ := m.Update(authCheckedMsg{username: "celestin"})
	m = next.(appModel)
	if m.cfg.Username != "celestin" {
		t.Fatalf("username = %q, want the server's answer", m.cfg.Username)
	}

	// A check that settles after logout must not disturb the login form.
	m.view = viewLogin
	m.loginErr = ""
	next, _ = m.Update(authCheckedMsg{err: errors.New("boom")})
	m = next.(appModel)
	if m.loginErr != "" {
		t.Fatalf("loginErr = %q, want untouched", m.loginErr)
	}
}

func TestDashboardLoadIncludesAuthCheck(t *testing.T) {
	m := testModel(t, true)
	if len(m.loadDashboard()) < 5 {
		t.Fatal("dashboard load should include the session check alongside the widgets")
	}
}

func TestToastExpiryInUpdateLoop(t *testing.T) {
	m := testModel(t, true)
	m.toast.show("saved", toastSuccess)
	seq := m.toast.seq

	next, _ := m.Update(toastExpiredMsg{seq: seq - 1})
	m = next.(appModel)
	if !m.toast.visible() {
		t.Fatal("stale expiry must not clear the toast")
	}

	next, _ = m.Update(toastExpiredMsg{seq: seq})
	m = next.(appModel)
	if m.toast.visible() {
		t.Fatal("expiry should clear the toast")
	}
}
