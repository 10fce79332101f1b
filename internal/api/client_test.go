package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDoDecodesSuccessEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/names" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","data":[{"id":1,"name":"Amina","active":true}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	names, err := c.Names(context.Background())
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if len(names) != 1 || names[0].Name != "Amina" || !names[0].Active {
		t.Fatalf("unexpected names: %+v", names)
	}
}

func TestDoReturnsServerMessageOnErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"Name already exists"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.CreateName(context.Background(), "Amina")
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.Message != "Name already exists" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestDoErrorEnvelopeWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.ClearTasks(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "HTTP 500") {
		t.Fatalf("error = %q, want HTTP status fallback", err.Error())
	}
}

func TestSuccessEnvelopeWithTrueFieldAloneIsRejected(t *testing.T) {
	// Some legacy endpoints used to send {"success":true} instead of the
	// envelope. Only status=="success" counts.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.ClearTasks(context.Background()); err == nil {
		t.Fatal("expected error for non-envelope response")
	}
}

func TestLoginCapturesSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "abc123"})
		_, _ = w.Write([]byte(`{"status":"success","message":"Login successful"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Login(context.Background(), "amina", "s3cret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if c.Session() != "JSESSIONID=abc123" {
		t.Fatalf("session = %q", c.Session())
	}
}

func TestSessionCookieSentOnRequests(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		_, _ = w.Write([]byte(`{"status":"success","data":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithSession("JSESSIONID=abc123"))
	if _, err := c.Names(context.Background()); err != nil {
		t.Fatalf("Names: %v", err)
	}
	if gotCookie != "JSESSIONID=abc123" {
		t.Fatalf("cookie header = %q", gotCookie)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","message":"Logged out"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithSession("JSESSIONID=abc123"))
	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if c.Session() != "" {
		t.Fatalf("session still set: %q", c.Session())
	}
}

func TestNoServerURL(t *testing.T) {
	c := New("")
	if _, err := c.Names(context.Background()); err == nil {
		t.Fatal("expected error without server URL")
	}
}

func TestTrailingSlashTrimmed(t *testing.T) {
	c := New("http://example.org/")
	if c.ServerURL() != "http://example.org" {
		t.Fatalf("serverURL = %q", c.ServerURL())
	}
}
