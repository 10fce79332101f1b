package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestNormalizePaneDimensions(t *testing.T) {
	out := normalizePane("a\nbb\nccc\ndddd", 3, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("height = %d, want 2", len(lines))
	}
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w != 3 {
			t.Fatalf("line %d width = %d, want 3 (%q)", i, w, ln)
		}
	}
}

func TestNormalizePanePadsShortInput(t *testing.T) {
	out := normalizePane("x", 4, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("height = %d, want 3", len(lines))
	}
	if lines[0] != "x   " {
		t.Fatalf("line 0 = %q", lines[0])
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("hello", 10); got != "hello" {
		t.Fatalf("no-op truncate = %q", got)
	}
	got := truncateLine("hello world", 6)
	if xansi.StringWidth(got) != 6 {
		t.Fatalf("width = %d (%q)", xansi.StringWidth(got), got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("missing ellipsis: %q", got)
	}
	if truncateLine("anything", 0) != "" {
		t.Fatal("zero width should produce empty string")
	}
}
