package format

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteJSONCompactAndPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, map[string]int{"n": 1}, false); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if got := buf.String(); got != "{\"n\":1}\n" {
		t.Fatalf("compact output = %q", got)
	}

	buf.Reset()
	if err := WriteJSON(&buf, map[string]int{"n": 1}, true); err != nil {
		t.Fatalf("WriteJSON pretty: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"n\": 1") {
		t.Fatalf("pretty output = %q", buf.String())
	}
}

func TestWriteTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf, []string{"ID", "NAME"}, [][]string{
		{"1", "Amina"},
		{"22", "Jean-Claude"},
	})
	if err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "NAME") {
		t.Fatalf("header = %q", lines[0])
	}
	if strings.Index(lines[1], "Amina") != strings.Index(lines[2], "Jean-Claude") {
		t.Fatalf("columns not aligned:\n%s", buf.String())
	}
}

func TestValidFormat(t *testing.T) {
	for _, ok := range []string{"", "json", "table"} {
		if !ValidFormat(ok) {
			t.Fatalf("ValidFormat(%q) = false", ok)
		}
	}
	for _, bad := range []string{"yaml", "csv", "JSON"} {
		if ValidFormat(bad) {
			t.Fatalf("ValidFormat(%q) = true", bad)
		}
	}
}
