package messages

import "facet/internal/valuefilter"

type ErrorMsg struct {
	Err error
}

// ColumnLoadedMsg delivers freshly counted values for a column.
type ColumnLoadedMsg struct {
	Source string
	Column string
	Counts []valuefilter.ValueCount
}

// FileChangedMsg signals that the watched source file was modified
// and the counts should be reloaded.
type FileChangedMsg struct {
	Path string
}

// SelectionChangedMsg carries the freshly encoded selection after a
// toggle or bulk action. Each message reflects exactly one membership
// change relative to the previously emitted encoding, except for the
// bulk All/None actions which replace the whole set.
type SelectionChangedMsg struct {
	Encoded string
}

// SelectionSavedMsg reports the outcome of persisting a selection.
type SelectionSavedMsg struct {
	Encoded string
	Err     error
}
