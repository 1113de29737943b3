package valuefilter

import (
	"sort"
	"strings"
)

// ValueCount is one distinct value of a column and how often it
// occurs. A slice of these carries the source iteration order, which
// is also the tie-break for equal counts.
type ValueCount struct {
	Name  string
	Count int
}

// Row is a display row derived per render from counts, query and
// selection. Rows are never stored.
type Row struct {
	Name     string
	Count    int
	Selected bool
}

// ListCondition classifies why a row list may be empty.
type ListCondition int

const (
	ListPopulated ListCondition = iota
	// ListEmptyDomain: the raw mapping itself has no values.
	ListEmptyDomain
	// ListNoMatches: values exist but the active search excluded all
	// of them. Rendered with the same text as ListEmptyDomain.
	ListNoMatches
)

// BuildRows derives the ordered display rows: sort by count
// descending (ties keep input order, which is unspecified for
// map-derived input), then filter by case-insensitive substring
// match. The query is not trimmed; a whitespace query matches
// literally.
func BuildRows(counts []ValueCount, query string, sel *Selection) []Row {
	sorted := make([]ValueCount, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	needle := strings.ToLower(query)
	rows := make([]Row, 0, len(sorted))
	for _, vc := range sorted {
		if query != "" && !strings.Contains(strings.ToLower(vc.Name), needle) {
			continue
		}
		rows = append(rows, Row{
			Name:     vc.Name,
			Count:    vc.Count,
			Selected: sel.Has(vc.Name),
		})
	}
	return rows
}

// SearchAvailable reports whether the search box and bulk controls
// are shown at all. With zero or one distinct value there is nothing
// to narrow, so the affordance is hidden entirely.
func SearchAvailable(counts []ValueCount) bool {
	return len(counts) > 1
}

// Condition classifies the current list for the empty-state message.
func Condition(counts []ValueCount, query string, rows []Row) ListCondition {
	if len(rows) > 0 {
		return ListPopulated
	}
	if len(counts) == 0 {
		return ListEmptyDomain
	}
	if query != "" {
		return ListNoMatches
	}
	return ListEmptyDomain
}
