// Package tui is the interactive value filter application: it loads a
// column, feeds the filter component, persists emitted selections and
// reloads when the source file changes.
package tui

import (
	"fmt"
	"strings"

	"facet/internal/data"
	"facet/internal/log"
	"facet/internal/store"
	"facet/internal/tui/components"
	"facet/internal/tui/messages"
	"facet/internal/tui/styles"
	"facet/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// Options configures the application model.
type Options struct {
	Source        string
	ColumnPattern string
	// InitialSelection is the explicit encoded selection to start
	// from. When empty, the store is consulted once the column's real
	// name is known. Malformed input renders as empty.
	InitialSelection string
	ListHeight       int
	HideCounts       bool
	Watcher          *watch.Watcher // nil disables live reload
	Store            *store.Store   // nil disables persistence
}

type Model struct {
	opts   Options
	filter *components.ValueFilter
	status *components.StatusBar

	column      *data.Column
	lastEncoded string
	restored    bool
	quitting    bool
}

func New(opts Options) *Model {
	filter := components.NewValueFilter()
	filter.SetLoading(true)
	filter.SetValue(opts.InitialSelection)
	filter.SetShowCounts(!opts.HideCounts)
	if opts.ListHeight > 0 {
		filter.SetListHeight(opts.ListHeight)
	}

	return &Model{
		opts:        opts,
		filter:      filter,
		status:      components.NewStatusBar(),
		lastEncoded: opts.InitialSelection,
	}
}

// Selection returns the last emitted encoded selection, for printing
// after the program exits.
func (m *Model) Selection() string {
	return m.lastEncoded
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.filter.Init(), m.loadColumn()}
	if m.opts.Watcher != nil {
		cmds = append(cmds, waitForChange(m.opts.Watcher))
	}
	return tea.Batch(cmds...)
}

func (m *Model) loadColumn() tea.Cmd {
	source, pattern := m.opts.Source, m.opts.ColumnPattern
	return func() tea.Msg {
		col, err := data.Load(source, pattern)
		if err != nil {
			return messages.ErrorMsg{Err: err}
		}
		return messages.ColumnLoadedMsg{Source: col.Source, Column: col.Name, Counts: col.Counts}
	}
}

func waitForChange(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		change, ok := <-w.Changes()
		if !ok {
			return nil
		}
		return messages.FileChangedMsg{Path: change.Path}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			// Esc clears an active search inside the component;
			// with no search active it exits.
			if m.filter.Query() == "" {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, m.filter.Update(msg)

	case messages.ColumnLoadedMsg:
		m.column = &data.Column{Source: msg.Source, Name: msg.Column, Counts: msg.Counts}
		m.restoreSelection(msg.Source, msg.Column)
		m.filter.SetLoading(false)
		m.filter.SetCounts(msg.Counts)
		if err := m.filter.DecodeErr(); err != nil {
			log.LogWithFields(log.F("error", err)).Warn("ignoring malformed saved selection")
			m.status.SetText("saved selection was malformed, starting empty")
		} else {
			m.status.SetText(fmt.Sprintf("%s distinct values",
				humanize.Comma(int64(len(msg.Counts)))))
		}
		return m, nil

	case messages.FileChangedMsg:
		log.LogWithFields(log.F("file", msg.Path)).Debug("source changed, reloading")
		m.status.SetText("source changed, reloading...")
		cmds := []tea.Cmd{m.loadColumn()}
		if m.opts.Watcher != nil {
			cmds = append(cmds, waitForChange(m.opts.Watcher))
		}
		return m, tea.Batch(cmds...)

	case messages.SelectionChangedMsg:
		m.lastEncoded = msg.Encoded
		return m, m.persist(msg.Encoded)

	case messages.SelectionSavedMsg:
		if msg.Err != nil {
			log.LogWithFields(log.F("error", msg.Err)).Error("failed to persist selection")
			m.status.SetError("could not save selection")
		}
		return m, nil

	case messages.ErrorMsg:
		log.LogWithFields(log.F("error", msg.Err)).Error("load failed")
		m.filter.SetLoading(false)
		m.status.SetError(msg.Err.Error())
		return m, nil
	}

	return m, m.filter.Update(msg)
}

// restoreSelection loads the stored selection for the resolved column
// name. Stored selections are keyed by the real header name, which is
// only known after the first load; an explicit initial selection wins,
// and reloads never clobber in-session edits.
func (m *Model) restoreSelection(source, column string) {
	if m.restored {
		return
	}
	m.restored = true
	if m.opts.Store == nil || m.opts.InitialSelection != "" {
		return
	}
	encoded, ok, err := m.opts.Store.Get(source, column)
	if err != nil {
		log.LogWithFields(log.F("error", err)).Warn("could not read stored selection")
		return
	}
	if ok {
		m.filter.SetValue(encoded)
		m.lastEncoded = encoded
	}
}

// persist saves the encoded selection outside the render path.
func (m *Model) persist(encoded string) tea.Cmd {
	if m.opts.Store == nil || m.column == nil {
		return nil
	}
	st, source, column := m.opts.Store, m.column.Source, m.column.Name
	return func() tea.Msg {
		err := st.Put(source, column, encoded)
		return messages.SelectionSavedMsg{Encoded: encoded, Err: err}
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := m.opts.Source
	if m.column != nil {
		title = fmt.Sprintf("%s · %s", m.column.Source, m.column.Name)
	}
	b.WriteString(styles.Theme.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	if status := m.status.View(); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}
	return b.String()
}
