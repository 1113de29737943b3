package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the core UI styles. Colors can be overridden from the
// config at startup via Apply.
var Theme = struct {
	Title    lipgloss.Style
	Checked  lipgloss.Style
	Cursor   lipgloss.Style
	Count    lipgloss.Style
	Muted    lipgloss.Style
	Disabled lipgloss.Style
	Error    lipgloss.Style
	Status   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")),
	Checked: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")).
		Bold(true),
	Cursor: lipgloss.NewStyle().
		Bold(true),
	Count: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")),
	Disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#444444")).
		Faint(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF5F5F")),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#959595")),
}

// Apply overrides theme colors with non-empty values.
func Apply(primary, checked, muted, errColor string) {
	if primary != "" {
		Theme.Title = Theme.Title.Foreground(lipgloss.Color(primary))
	}
	if checked != "" {
		Theme.Checked = Theme.Checked.Foreground(lipgloss.Color(checked))
	}
	if muted != "" {
		Theme.Muted = Theme.Muted.Foreground(lipgloss.Color(muted))
	}
	if errColor != "" {
		Theme.Error = Theme.Error.Foreground(lipgloss.Color(errColor))
	}
}
