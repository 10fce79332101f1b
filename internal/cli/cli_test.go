package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// runCLI executes the root command with args against a fresh command tree.
func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// fakeService answers the handful of endpoints the tests touch with
// canned envelopes and records what it saw.
func fakeService(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/api/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "sess1"})
			_, _ = w.Write([]byte(`{"status":"success","message":"Login successful"}`))
		case r.URL.Path == "/api/auth/check":
			_, _ = w.Write([]byte(`{"status":"success","data":"amina"}`))
		case r.URL.Path == "/api/names" && r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`{"status":"success","data":[
				{"id":1,"name":"Amina","active":true},
				{"id":2,"name":"Benoit","active":false}
			]}`))
		case r.URL.Path == "/api/names" && r.Method == http.MethodPost:
			_, _ = w.Write([]byte(`{"status":"success","message":"Name added"}`))
		case strings.HasPrefix(r.URL.Path, "/api/names/") && r.Method == http.MethodDelete:
			_, _ = w.Write([]byte(`{"status":"success","message":"Name deleted"}`))
		case r.URL.Path == "/api/tasks/generate":
			_, _ = w.Write([]byte(`{"status":"success","message":"Tasks generated"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":"error","message":"not found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func login(t *testing.T, serverURL string) {
	t.Helper()
	out, stderr, err := runCLI(t, []string{"--server", serverURL, "login", "-u", "amina", "-p", "pw"}, "")
	if err != nil {
		t.Fatalf("login failed: %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(out, "Logged in as amina") {
		t.Fatalf("login output = %q", out)
	}
}

func TestLoginStoresSessionAndServer(t *testing.T) {
	t.Setenv("ROTA_CONFIG_DIR", t.TempDir())
	srv, _ := fakeService(t)
	login(t, srv.URL)

	// The stored session carries over: no --server needed after login and
	// the cookie goes out with the request.
	out, _, err := runCLI(t, []string{"names", "list"}, "")
	if err != nil {
		t.Fatalf("names list after login: %v", err)
	}
	var names []map[string]any
	if err := json.Unmarshal([]byte(out), &names); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, out)
	}
	if len(names) != 2 || names[0]["name"] != "Amina" {
		t.Fatalf("names = %v", names)
	}
}

func TestCommandsRequireLogin(t *testing.T) {
	t.Setenv("ROTA_CONFIG_DIR", t.TempDir())
	srv, paths := fakeService(t)

	_, _, err := runCLI(t, []string{"--server", srv.URL, "names", "list"}, "")
	if err == nil {
		t.Fatal("expected not-logged-in error")
	}
	if !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("err = %v", err)
	}
	if len(*paths) != 0 {
		t.Fatalf("request was sent without a session: %v", *paths)
	}
}

func TestTableFormat(t *testing.T) {
	t.Setenv("ROTA_CONFIG_DIR", t.TempDir())
	srv, _ := fakeService(t)
	login(t, srv.URL)

	out, _, err := runCLI(t, []string{"--format", "table", "names", "list"}, "")
	if err != nil {
		t.Fatalf("names list --format table: %v", err)
	}
	if !strings.Contains(out, "ID") || !strings.Contains(out, "STATUS") {
		t.Fatalf("missing headers:\n%s", out)
	}
	if !strings.Contains(out, "Amina") || !strings.Contains(out, "inactive") {
		t.Fatalf("missing rows:\n%s", out)
	}
}

func TestUnknownFormatRejected(t *testing.T) {
	t.Setenv("ROTA_CONFIG_DIR", t.TempDir())
	_, _, err := runCLI(t, []string{"--format", "yaml", "names", "list"}, "")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("err = %v", err)
	}
}

func TestDeleteDeclinedByPrompt(t *testing.T) {
	t.Setenv("ROTA_CONFIG_DIR", t.TempDir())
	srv, paths := fakeService(t)
	login(t, srv.URL)
	before := len(*paths)

	// Answering "n" must stop before any request goes out.
	_, _, err := runCLI(t, []string{"names", "delete", "1"}, "n\n")
	if err != nil {
		t.Fatalf("declined delete errored: %v", err)
	}
	if len(*paths) != before {
		t.Fatalf("request sent despite declined prompt: %v", (*paths)[before:])
	}

	out, _, err := runCLI(t, []string{"names", "delete", "1", "--yes"}, "")
	if err != nil {
		t.Fatalf("delete --yes: %v", err)
	}
	if !strings.Contains(out, "Deleted 1") {
		t.Fatalf("output = %q", out)
	}
}

func TestGenerateCountValidatedBeforeRequest(t *testing.T) {
	t.Setenv("ROTA_CONFIG_DIR", t.TempDir())
	srv, paths := fakeService(t)
	login(t, srv.URL)
	before := len(*paths)

	_, _, err := runCLI(t, []string{"tasks", "generate", "--count", "3", "--yes"}, "")
	if err == nil {
		t.Fatal("expected minimum-names error")
	}
	if !strings.Contains(err.Error(), "minimum 4 names") {
		t.Fatalf("err = %v", err)
	}
	if len(*paths) != before {
		t.Fatalf("undersized generate hit the server: %v", (*paths)[before:])
	}

	out, _, err := runCLI(t, []string{"tasks", "generate", "--count", "6", "--yes"}, "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "Tasks generated") {
		t.Fatalf("output = %q", out)
	}
}

func TestServerErrorMessageSurfaced(t *testing.T) {
	t.Setenv("ROTA_CONFIG_DIR", t.TempDir())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" {
			http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "sess1"})
			_, _ = w.Write([]byte(`{"status":"success"}`))
			return
		}
		if r.URL.Path == "/api/auth/check" {
			_, _ = w.Write([]byte(`{"status":"success","data":"amina"}`))
			return
		}
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"status":"error","message":"Name already exists"}`))
	}))
	defer srv.Close()

	login(t, srv.URL)
	_, _, err := runCLI(t, []string{"names", "add", "Amina"}, "")
	if err == nil || err.Error() != "Name already exists" {
		t.Fatalf("err = %v, want the service's own message", err)
	}
}

func TestDocsCommand(t *testing.T) {
	t.Setenv("ROTA_CONFIG_DIR", t.TempDir())

	out, _, err := runCLI(t, []string{"docs"}, "")
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	var listing map[string][]string
	if err := json.Unmarshal([]byte(out), &listing); err != nil {
		t.Fatalf("docs output: %v\n%s", err, out)
	}
	if len(listing["topics"]) == 0 {
		t.Fatal("expected at least one docs topic")
	}

	raw, _, err := runCLI(t, []string{"docs", "getting-started", "--raw"}, "")
	if err != nil {
		t.Fatalf("docs getting-started: %v", err)
	}
	if !strings.Contains(raw, "# Getting started") {
		t.Fatalf("raw docs output = %q", raw)
	}

	_, _, err = runCLI(t, []string{"docs", "no-such-topic"}, "")
	if err == nil || !strings.Contains(err.Error(), "unknown docs topic") {
		t.Fatalf("err = %v", err)
	}
}
