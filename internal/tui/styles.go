package tui

import (
	"filey/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for the browse view, derived from the
// five color roles of the active theme.
type Styles struct {
	Title    lipgloss.Style
	Path     lipgloss.Style
	Entry    lipgloss.Style
	Folder   lipgloss.Style
	Selected lipgloss.Style
	SizeTag  lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
	Faded    lipgloss.Style
}

// NewStyles builds the style set from a theme.
func NewStyles(theme config.Theme) Styles {
	text := lipgloss.Color(theme.Text)
	selectedBg := lipgloss.Color(theme.SelectedBg)
	hoverBg := lipgloss.Color(theme.HoverBg)
	tooltipBg := lipgloss.Color(theme.TooltipBg)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),
		Path: lipgloss.NewStyle().
			Foreground(text).
			Bold(true),
		Entry: lipgloss.NewStyle().
			Foreground(text),
		Folder: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.SelectedBg)).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(selectedBg).
			Bold(true),
		SizeTag: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.HoverBg)),
		Status: lipgloss.NewStyle().
			Foreground(text).
			Background(tooltipBg).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.HoverBg)),
		Faded: lipgloss.NewStyle().
			Foreground(hoverBg).
			Faint(true),
	}
}
