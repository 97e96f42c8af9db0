package services

import (
	"sort"
	"strings"
)

// ParseTags turns comma separated tag text into a sorted set of names.
// Whitespace inside a name is collapsed to single spaces.
func ParseTags(text string) []string {
	seen := map[string]struct{}{}
	for _, part := range strings.Split(text, ",") {
		name := strings.Join(strings.Fields(part), " ")
		if name == "" {
			continue
		}
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func FormatTags(names []string) string {
	return strings.Join(names, ", ")
}
