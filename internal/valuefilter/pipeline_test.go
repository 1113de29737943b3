package valuefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRowsSortsByCountDescending(t *testing.T) {
	counts := []ValueCount{
		{Name: "cat", Count: 5},
		{Name: "dog", Count: 12},
		{Name: "bird", Count: 1},
	}

	rows := BuildRows(counts, "", NewSelection("dog"))
	require.Len(t, rows, 3)
	assert.Equal(t, "dog", rows[0].Name)
	assert.Equal(t, 12, rows[0].Count)
	assert.True(t, rows[0].Selected)
	assert.Equal(t, "cat", rows[1].Name)
	assert.False(t, rows[1].Selected)
	assert.Equal(t, "bird", rows[2].Name)
}

func TestBuildRowsTiesKeepInputOrder(t *testing.T) {
	// Equal counts fall back to input order. For map-derived input
	// that order is incidental, so only the stable-sort behavior for
	// a given slice is asserted here, not a designed total order.
	counts := []ValueCount{
		{Name: "b", Count: 3},
		{Name: "a", Count: 3},
		{Name: "c", Count: 7},
	}
	rows := BuildRows(counts, "", nil)
	assert.Equal(t, []string{"c", "b", "a"}, rowNames(rows))
}

func TestBuildRowsSearch(t *testing.T) {
	counts := []ValueCount{
		{Name: "Apple Pie", Count: 4},
		{Name: "apple", Count: 9},
		{Name: "banana", Count: 2},
		{Name: "Pineapple", Count: 1},
	}

	t.Run("case_insensitive_substring", func(t *testing.T) {
		rows := BuildRows(counts, "APPLE", nil)
		assert.Equal(t, []string{"apple", "Apple Pie", "Pineapple"}, rowNames(rows))
	})

	t.Run("every_row_matches_and_count_bounded", func(t *testing.T) {
		rows := BuildRows(counts, "an", nil)
		assert.LessOrEqual(t, len(rows), len(counts))
		assert.Equal(t, []string{"banana"}, rowNames(rows))
	})

	t.Run("query_is_not_trimmed", func(t *testing.T) {
		// A whitespace query matches literally: only "Apple Pie"
		// contains a space.
		rows := BuildRows(counts, " ", nil)
		assert.Equal(t, []string{"Apple Pie"}, rowNames(rows))
	})

	t.Run("no_match", func(t *testing.T) {
		rows := BuildRows(counts, "zzz", nil)
		assert.Empty(t, rows)
	})

	t.Run("nil_counts", func(t *testing.T) {
		assert.Empty(t, BuildRows(nil, "", nil))
	})
}

func TestSearchAvailable(t *testing.T) {
	assert.False(t, SearchAvailable(nil))
	assert.False(t, SearchAvailable([]ValueCount{{Name: "x", Count: 3}}))
	assert.True(t, SearchAvailable([]ValueCount{
		{Name: "x", Count: 3},
		{Name: "y", Count: 1},
	}))
}

func TestCondition(t *testing.T) {
	one := []ValueCount{{Name: "x", Count: 3}}

	t.Run("populated", func(t *testing.T) {
		rows := BuildRows(one, "", nil)
		assert.Equal(t, ListPopulated, Condition(one, "", rows))
	})

	t.Run("empty_domain", func(t *testing.T) {
		assert.Equal(t, ListEmptyDomain, Condition(nil, "", nil))
	})

	t.Run("search_excludes_everything", func(t *testing.T) {
		rows := BuildRows(one, "y", nil)
		require.Empty(t, rows)
		assert.Equal(t, ListNoMatches, Condition(one, "y", rows))
		// The search affordance itself is hidden for a single-value
		// domain regardless of any attempted query.
		assert.False(t, SearchAvailable(one))
	})
}

func rowNames(rows []Row) []string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	return names
}
