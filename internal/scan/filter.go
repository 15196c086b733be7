package scan

import (
	"strings"

	"github.com/gobwas/glob"
)

// Filter narrows entries to those whose name matches query, preserving the
// original order. It works on the most recent scan result and never touches
// the filesystem. A plain query matches as a case-insensitive substring; a
// query containing glob metacharacters is compiled as a glob pattern against
// the lowercased name. An empty query returns entries unchanged.
func Filter(entries []Entry, query string) []Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}

	match := func(name string) bool {
		return strings.Contains(strings.ToLower(name), query)
	}
	if strings.ContainsAny(query, "*?[{") {
		if g, err := glob.Compile(query); err == nil {
			match = func(name string) bool {
				return g.Match(strings.ToLower(name))
			}
		}
	}

	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if match(e.Name) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
