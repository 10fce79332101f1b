// Package docs serves the help topics behind `rota docs`. The topics are
// markdown files compiled into the binary, so the help works offline and
// never drifts from the installed version.
package docs

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed content/*.md
var topicsFS embed.FS

// Topics lists the available topic names in alphabetical order.
func Topics() []string {
	entries, _ := fs.Glob(topicsFS, "content/*.md")
	topics := make([]string, 0, len(entries))
	for _, path := range entries {
		topics = append(topics, strings.TrimSuffix(strings.TrimPrefix(path, "content/"), ".md"))
	}
	sort.Strings(topics)
	return topics
}

// Get returns the markdown body for a topic. Lookups are case-insensitive
// and accept spaces in place of hyphens, so "Getting Started" finds
// getting-started.
func Get(topic string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(topic))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		return "", false
	}
	b, err := topicsFS.ReadFile("content/" + name + ".md")
	if err != nil {
		return "", false
	}
	return string(b), true
}
