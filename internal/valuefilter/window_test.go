package valuefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListHeight(t *testing.T) {
	assert.Equal(t, 0, ListHeight(0))
	assert.Equal(t, 3*RowHeight, ListHeight(3))
	assert.Equal(t, MaxListHeight, ListHeight(10000))
}

func TestVisibleRange(t *testing.T) {
	t.Run("empty_list", func(t *testing.T) {
		first, last := VisibleRange(0, 1, 10, 0)
		assert.Equal(t, 0, first)
		assert.Equal(t, -1, last)
	})

	t.Run("list_fits_viewport", func(t *testing.T) {
		first, last := VisibleRange(0, 1, 10, 5)
		assert.Equal(t, 0, first)
		assert.Equal(t, 4, last)
	})

	t.Run("window_at_top", func(t *testing.T) {
		first, last := VisibleRange(0, 1, 12, 1000)
		assert.Equal(t, 0, first)
		assert.Equal(t, 11, last)
	})

	t.Run("window_scrolled", func(t *testing.T) {
		first, last := VisibleRange(100, 1, 12, 1000)
		assert.Equal(t, 100, first)
		assert.Equal(t, 111, last)
	})

	t.Run("window_clamped_at_bottom", func(t *testing.T) {
		first, last := VisibleRange(995, 1, 12, 1000)
		assert.Equal(t, 995, first)
		assert.Equal(t, 999, last)
	})

	t.Run("taller_rows", func(t *testing.T) {
		// Rows of height 2 in a 10-line viewport: offset 3 starts
		// inside row 1 and the viewport bottom reaches into row 6.
		first, last := VisibleRange(3, 2, 10, 100)
		assert.Equal(t, 1, first)
		assert.Equal(t, 6, last)
	})

	t.Run("negative_offset_clamps", func(t *testing.T) {
		first, last := VisibleRange(-5, 1, 10, 3)
		assert.Equal(t, 0, first)
		assert.Equal(t, 2, last)
	})

	t.Run("offset_past_end", func(t *testing.T) {
		first, last := VisibleRange(500, 1, 10, 20)
		assert.Equal(t, 19, first)
		assert.Equal(t, 19, last)
	})
}

func TestFollowCursor(t *testing.T) {
	// Cursor above the window pulls the offset up.
	assert.Equal(t, 2, FollowCursor(2, 5, 10))
	// Cursor below the window pushes the offset down.
	assert.Equal(t, 6, FollowCursor(15, 0, 10))
	// Cursor inside the window leaves the offset alone.
	assert.Equal(t, 5, FollowCursor(8, 5, 10))
}
