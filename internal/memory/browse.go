package memory

import (
	"sort"
	"strings"
)

// PageSize is the fixed number of entries per page in the browser.
const PageSize = 50

// SortKey selects the browse ordering.
type SortKey string

const (
	// SortByKey orders entries lexicographically by key.
	SortByKey SortKey = "key"
	// SortByDate orders entries chronologically by timestamp.
	SortByDate SortKey = "date"
)

// KeyedEntry pairs a memory key with its entry for display.
type KeyedEntry struct {
	Key string `json:"key"`
	Entry
}

// Page is one page of browse results.
type Page struct {
	// Entries are the rows of this page, at most PageSize of them.
	Entries []KeyedEntry `json:"entries"`
	// Total is the number of entries after filtering.
	Total int `json:"total"`
	// Number is the 1-based page number actually returned.
	Number int `json:"page"`
	// Pages is the number of pages the filtered set spans (at least 1).
	Pages int `json:"pages"`
}

// Browse filters, sorts, and paginates a memory mapping. The query is a
// case-insensitive substring matched against key, value, and source. Sort
// is stable; ties keep key order so direction toggles are exact inverses.
// Page numbers are 1-based and clamped into range.
func Browse(entries map[string]Entry, query string, by SortKey, descending bool, page int) Page {
	rows := filter(entries, query)
	sortRows(rows, by, descending)
	return paginate(rows, page)
}

func filter(entries map[string]Entry, query string) []KeyedEntry {
	query = strings.ToLower(query)
	rows := make([]KeyedEntry, 0, len(entries))
	for key, e := range entries {
		if query != "" && !matches(key, e, query) {
			continue
		}
		rows = append(rows, KeyedEntry{Key: key, Entry: e})
	}
	return rows
}

func matches(key string, e Entry, query string) bool {
	return strings.Contains(strings.ToLower(key), query) ||
		strings.Contains(strings.ToLower(e.Value), query) ||
		strings.Contains(strings.ToLower(e.Source), query)
}

func sortRows(rows []KeyedEntry, by SortKey, descending bool) {
	// Key order first so timestamp ties resolve deterministically.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })

	if by == SortByDate {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Timestamp.Before(rows[j].Timestamp)
		})
	}

	if descending {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
}

func paginate(rows []KeyedEntry, page int) Page {
	total := len(rows)
	pages := (total + PageSize - 1) / PageSize
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Entries: rows[start:end],
		Total:   total,
		Number:  page,
		Pages:   pages,
	}
}
