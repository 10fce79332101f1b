package tui

import (
	"strings"
	"testing"
)

func TestToastReplacement(t *testing.T) {
	var tst toast
	if tst.visible() {
		t.Fatal("zero toast should be invisible")
	}

	cmd := tst.show("Name added successfully", toastSuccess)
	if cmd == nil {
		t.Fatal("show must return a dismiss timer")
	}
	firstSeq := tst.seq

	tst.show("Name deleted successfully", toastSuccess)
	if tst.text != "Name deleted successfully" {
		t.Fatalf("text = %q, want replacement to win", tst.text)
	}

	// The dismiss timer of the replaced toast must not clear the new one.
	tst.expire(toastExpiredMsg{seq: firstSeq})
	if !tst.visible() {
		t.Fatal("stale expiry cleared the visible toast")
	}

	tst.expire(toastExpiredMsg{seq: tst.seq})
	if tst.visible() {
		t.Fatal("matching expiry should clear the toast")
	}
}

func TestToastViewLevels(t *testing.T) {
	var tst toast
	tst.show("boom", toastError)
	if out := tst.view(40); !strings.Contains(out, "boom") {
		t.Fatalf("view = %q", out)
	}
	if out := tst.view(40); !strings.Contains(out, "✗") {
		t.Fatalf("error toast missing marker: %q", out)
	}

	tst.show("saved", toastSuccess)
	if out := tst.view(40); !strings.Contains(out, "✓") {
		t.Fatalf("success toast missing marker: %q", out)
	}

	tst.expire(toastExpiredMsg{seq: tst.seq})
	if out := tst.view(40); out != "" {
		t.Fatalf("expired toast renders %q", out)
	}
}
