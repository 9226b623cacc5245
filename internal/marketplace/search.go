package marketplace

import (
	"slices"
	"strings"
)

// Filter is the local substring search over a catalog. Matching is
// case-insensitive across name, description, category, tags, and
// author; an empty query returns everything. Results are ordered by
// match quality, ties by name.
func Filter(entries []Entry, query string) []Entry {
	query = strings.ToLower(query)

	var results []Entry
	for _, e := range entries {
		if query == "" || scoreMatch(e, query) > 0 {
			results = append(results, e)
		}
	}

	slices.SortFunc(results, func(a, b Entry) int {
		if d := scoreMatch(b, query) - scoreMatch(a, query); d != 0 {
			return d
		}
		return strings.Compare(a.Name, b.Name)
	})
	return results
}

// scoreMatch rates how well an entry matches the query:
//
//   - 100: exact name match
//   - 75: name prefix match
//   - 50: name contains query
//   - 30: category, a tag, or the author contains it
//   - 25: description contains it
//   - 0: no match
func scoreMatch(e Entry, query string) int {
	if query == "" {
		return 0
	}

	name := strings.ToLower(e.Name)
	switch {
	case name == query:
		return 100
	case strings.HasPrefix(name, query):
		return 75
	case strings.Contains(name, query):
		return 50
	}

	if strings.Contains(strings.ToLower(e.Category), query) ||
		strings.Contains(strings.ToLower(e.Author), query) {
		return 30
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return 30
		}
	}

	if strings.Contains(strings.ToLower(e.Description), query) {
		return 25
	}
	return 0
}
