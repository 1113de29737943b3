package components

import (
	"fmt"
	"strings"

	"facet/internal/tui/messages"
	"facet/internal/tui/styles"
	"facet/internal/valuefilter"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// FilterKeyMap defines the keybindings of the value filter.
type FilterKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Toggle      key.Binding
	SelectAll   key.Binding
	SelectNone  key.Binding
	ClearSearch key.Binding
}

func DefaultFilterKeyMap() FilterKeyMap {
	return FilterKeyMap{
		Up:          key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Toggle:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle")),
		SelectAll:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "all")),
		SelectNone:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "none")),
		ClearSearch: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
	}
}

// ValueFilter narrows a column's distinct values: free-text search,
// per-value checkbox toggles, bulk All/None, and a windowed list so
// domains with thousands of values render a bounded number of rows.
// The current selection is held only as its encoded form; every
// membership change is re-encoded and emitted as a
// messages.SelectionChangedMsg.
type ValueFilter struct {
	keys    FilterKeyMap
	search  textinput.Model
	spinner spinner.Model

	counts     []valuefilter.ValueCount
	loading    bool
	encoded    string
	showCounts bool
	cache      valuefilter.DecodeCache

	cursor       int
	scrollOffset int
	listHeight   int
}

func NewValueFilter() *ValueFilter {
	ti := textinput.New()
	ti.Placeholder = "Search values..."
	ti.Prompt = "/ "
	ti.Width = 32
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Theme.Muted

	return &ValueFilter{
		keys:       DefaultFilterKeyMap(),
		search:     ti,
		spinner:    sp,
		showCounts: true,
		listHeight: valuefilter.MaxListHeight,
	}
}

func (f *ValueFilter) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, f.spinner.Tick)
}

// SetCounts replaces the value domain. The cursor and window are
// clamped against the new row list.
func (f *ValueFilter) SetCounts(counts []valuefilter.ValueCount) {
	f.counts = counts
	f.clamp()
}

func (f *ValueFilter) SetLoading(loading bool) {
	f.loading = loading
}

// SetValue replaces the externally held encoded selection. A
// malformed encoding is treated as empty; rendering must not break on
// a bad initial selection.
func (f *ValueFilter) SetValue(encoded string) {
	f.encoded = encoded
}

// SetShowCounts controls whether each row carries its occurrence
// count.
func (f *ValueFilter) SetShowCounts(show bool) {
	f.showCounts = show
}

// SetListHeight overrides the viewport cap in rows.
func (f *ValueFilter) SetListHeight(h int) {
	if h > 0 {
		f.listHeight = h
	}
}

func (f *ValueFilter) Value() string {
	return f.encoded
}

func (f *ValueFilter) Query() string {
	return f.search.Value()
}

// DecodeErr reports the decode error of the current encoded value, if
// any. The selection still renders as empty in that case.
func (f *ValueFilter) DecodeErr() error {
	_, err := f.cache.Decode(f.encoded)
	return err
}

// Rows returns the full derived row list, not just the visible
// window. Toggle logic and tests operate on this.
func (f *ValueFilter) Rows() []valuefilter.Row {
	sel, _ := f.cache.Decode(f.encoded)
	return valuefilter.BuildRows(f.counts, f.search.Value(), sel)
}

func (f *ValueFilter) searchShown() bool {
	return valuefilter.SearchAvailable(f.counts)
}

func (f *ValueFilter) searchActive() bool {
	return f.search.Value() != ""
}

func (f *ValueFilter) clamp() {
	rows := len(f.Rows())
	if f.cursor >= rows {
		f.cursor = rows - 1
	}
	if f.cursor < 0 {
		f.cursor = 0
	}
	f.scrollOffset = valuefilter.FollowCursor(f.cursor, f.scrollOffset, f.visibleRows())
}

func (f *ValueFilter) visibleRows() int {
	return f.listHeight / valuefilter.RowHeight
}

func (f *ValueFilter) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return f.handleKey(msg)
	case spinner.TickMsg:
		if f.loading {
			var cmd tea.Cmd
			f.spinner, cmd = f.spinner.Update(msg)
			return cmd
		}
		return nil
	}
	var cmd tea.Cmd
	f.search, cmd = f.search.Update(msg)
	return cmd
}

func (f *ValueFilter) handleKey(msg tea.KeyMsg) tea.Cmd {
	rows := f.Rows()

	switch {
	case key.Matches(msg, f.keys.Up):
		if f.cursor > 0 {
			f.cursor--
		}
		f.scrollOffset = valuefilter.FollowCursor(f.cursor, f.scrollOffset, f.visibleRows())
		return nil

	case key.Matches(msg, f.keys.Down):
		if f.cursor < len(rows)-1 {
			f.cursor++
		}
		f.scrollOffset = valuefilter.FollowCursor(f.cursor, f.scrollOffset, f.visibleRows())
		return nil

	case key.Matches(msg, f.keys.PageUp):
		f.cursor -= f.visibleRows()
		f.clamp()
		return nil

	case key.Matches(msg, f.keys.PageDown):
		f.cursor += f.visibleRows()
		f.clamp()
		return nil

	case key.Matches(msg, f.keys.Toggle):
		if f.cursor < len(rows) {
			row := rows[f.cursor]
			return f.toggle(row.Name, !row.Selected)
		}
		return nil

	case key.Matches(msg, f.keys.SelectAll):
		// Disabled during search so "all" cannot silently mean "all
		// matches". No-op, not hidden.
		if !f.searchShown() || f.searchActive() {
			return nil
		}
		sel := valuefilter.NewSelection()
		for _, vc := range f.counts {
			sel.Add(vc.Name)
		}
		return f.emit(sel)

	case key.Matches(msg, f.keys.SelectNone):
		if !f.searchShown() || f.searchActive() {
			return nil
		}
		return f.emit(valuefilter.NewSelection())

	case key.Matches(msg, f.keys.ClearSearch):
		if f.searchActive() {
			f.search.SetValue("")
			f.clamp()
		}
		return nil
	}

	// Everything else is typed into the search box, when it is shown
	// at all. Filtering recomputes synchronously on each keystroke.
	if !f.searchShown() {
		return nil
	}
	var cmd tea.Cmd
	f.search, cmd = f.search.Update(msg)
	f.clamp()
	return cmd
}

// toggle applies exactly one membership change and emits the new
// encoding.
func (f *ValueFilter) toggle(name string, selected bool) tea.Cmd {
	sel, _ := f.cache.Decode(f.encoded)
	next := sel.Clone()
	if selected {
		next.Add(name)
	} else {
		next.Remove(name)
	}
	return f.emit(next)
}

func (f *ValueFilter) emit(sel *valuefilter.Selection) tea.Cmd {
	encoded := valuefilter.EncodeSelection(sel)
	f.encoded = encoded
	f.clamp()
	return func() tea.Msg {
		return messages.SelectionChangedMsg{Encoded: encoded}
	}
}

func (f *ValueFilter) View() string {
	var b strings.Builder

	if f.loading {
		b.WriteString(styles.Theme.Muted.Render(f.spinner.View() + " loading values..."))
		b.WriteString("\n")
		return b.String()
	}

	rows := f.Rows()

	if f.searchShown() {
		b.WriteString(f.search.View())
		b.WriteString("\n")
	}

	switch valuefilter.Condition(f.counts, f.search.Value(), rows) {
	case valuefilter.ListEmptyDomain, valuefilter.ListNoMatches:
		b.WriteString(styles.Theme.Muted.Render("no values"))
		b.WriteString("\n")
	default:
		f.renderRows(&b, rows)
	}

	if f.searchShown() {
		b.WriteString(f.renderBulkHint())
		b.WriteString("\n")
	}

	return b.String()
}

// renderRows draws only the rows intersecting the visible window.
func (f *ValueFilter) renderRows(b *strings.Builder, rows []valuefilter.Row) {
	height := valuefilter.RowHeight * len(rows)
	if height > f.listHeight {
		height = f.listHeight
	}
	first, last := valuefilter.VisibleRange(
		f.scrollOffset*valuefilter.RowHeight, valuefilter.RowHeight, height, len(rows))

	for i := first; i <= last; i++ {
		row := rows[i]

		checkbox := "[ ]"
		nameStyle := styles.Theme.Muted
		if row.Selected {
			checkbox = "[x]"
			nameStyle = styles.Theme.Checked
		}

		cursor := "  "
		if i == f.cursor {
			cursor = styles.Theme.Cursor.Render("> ")
		}

		if f.showCounts {
			fmt.Fprintf(b, "%s%s %s %s\n",
				cursor,
				checkbox,
				nameStyle.Render(row.Name),
				styles.Theme.Count.Render(humanize.Comma(int64(row.Count))))
		} else {
			fmt.Fprintf(b, "%s%s %s\n", cursor, checkbox, nameStyle.Render(row.Name))
		}
	}

	if remaining := len(rows) - 1 - last; remaining > 0 {
		b.WriteString(styles.Theme.Muted.Render(
			fmt.Sprintf("  ... and %d more", remaining)))
		b.WriteString("\n")
	}
}

// renderBulkHint reports selection progress over the whole domain, not
// the filtered rows, so the numbers do not shrink while searching.
func (f *ValueFilter) renderBulkHint() string {
	style := styles.Theme.Status
	if f.searchActive() {
		style = styles.Theme.Disabled
	}
	sel, _ := f.cache.Decode(f.encoded)
	selected := 0
	for _, vc := range f.counts {
		if sel.Has(vc.Name) {
			selected++
		}
	}
	return style.Render(fmt.Sprintf(
		"ctrl+a all · ctrl+x none · enter toggle · %d/%d selected",
		selected, len(f.counts)))
}
