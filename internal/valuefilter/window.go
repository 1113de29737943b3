package valuefilter

// Row geometry. Rows are one terminal line high and the list viewport
// is capped; beyond the cap the list scrolls.
const (
	RowHeight     = 1
	MaxListHeight = 12
)

// ListHeight returns the rendered height of the list in lines:
// rowHeight*rowCount up to the viewport cap.
func ListHeight(rowCount int) int {
	h := RowHeight * rowCount
	if h > MaxListHeight {
		return MaxListHeight
	}
	return h
}

// VisibleRange computes the inclusive index range of rows that
// intersect the viewport at the given scroll offset. It is pure and
// independent of any rendering technology so the windowing math can
// be tested on its own. An empty list yields (0, -1).
func VisibleRange(scrollOffset, rowHeight, viewportHeight, totalRows int) (first, last int) {
	if totalRows <= 0 || rowHeight <= 0 || viewportHeight <= 0 {
		return 0, -1
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	first = scrollOffset / rowHeight
	if first >= totalRows {
		first = totalRows - 1
	}
	// Last row whose top edge is above the viewport bottom.
	last = (scrollOffset + viewportHeight - 1) / rowHeight
	if last >= totalRows {
		last = totalRows - 1
	}
	return first, last
}

// FollowCursor adjusts a row-granular scroll offset so the cursor row
// stays inside a window of visibleRows rows.
func FollowCursor(cursor, scrollOffset, visibleRows int) int {
	if cursor < scrollOffset {
		return cursor
	}
	if visibleRows > 0 && cursor >= scrollOffset+visibleRows {
		return cursor - visibleRows + 1
	}
	return scrollOffset
}
