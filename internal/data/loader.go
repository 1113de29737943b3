// Package data loads value counts for a single column of a delimited
// file. The loader is the only place that touches the filesystem for
// column data; the filter component itself never fetches anything.
package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"facet/internal/valuefilter"

	"github.com/gobwas/glob"
)

// Column is one loaded column: its source file, resolved header name
// and the distinct value counts in first-seen order.
type Column struct {
	Source string
	Name   string
	Counts []valuefilter.ValueCount
}

// Load reads path and counts the distinct values of the first column
// whose header matches columnPattern (a glob; a plain column name is
// a valid glob and matches exactly). An empty pattern selects the
// first column. TSV files are detected by extension.
func Load(path, columnPattern string) (*Column, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		r.Comma = '\t'
	}
	r.ReuseRecord = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	idx, name, err := matchColumn(header, columnPattern)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// First-seen order is preserved: it becomes the tie-break when
	// counts are equal.
	counts := make(map[string]int)
	var order []string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A malformed record mid-file must not yield partial
			// counts presented as complete.
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if idx >= len(record) {
			continue
		}
		v := record[idx]
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	col := &Column{Source: path, Name: name}
	for _, v := range order {
		col.Counts = append(col.Counts, valuefilter.ValueCount{Name: v, Count: counts[v]})
	}
	return col, nil
}

func matchColumn(header []string, pattern string) (int, string, error) {
	if len(header) == 0 {
		return 0, "", fmt.Errorf("no columns in header")
	}
	if pattern == "" {
		return 0, header[0], nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return 0, "", fmt.Errorf("bad column pattern %q: %w", pattern, err)
	}
	for i, name := range header {
		if g.Match(name) {
			return i, name, nil
		}
	}
	return 0, "", fmt.Errorf("no column matches %q (have: %s)", pattern, strings.Join(header, ", "))
}
