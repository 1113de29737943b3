package components

import (
	"facet/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type StatusBar struct {
	text  string
	err   bool
	style lipgloss.Style
}

func NewStatusBar() *StatusBar {
	return &StatusBar{style: styles.Theme.Status}
}

func (s *StatusBar) SetText(text string) {
	s.text = text
	s.err = false
}

func (s *StatusBar) SetError(text string) {
	s.text = text
	s.err = true
}

func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	return nil
}

func (s *StatusBar) View() string {
	if s.text == "" {
		return ""
	}
	if s.err {
		return styles.Theme.Error.Render(s.text)
	}
	return s.style.Render(s.text)
}
