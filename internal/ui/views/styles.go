package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Selected    lipgloss.Style
	Dim         lipgloss.Style
	Prompt      lipgloss.Style
	Placeholder lipgloss.Style
	Item        lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Cursor      lipgloss.Style
	NoResults   lipgloss.Style
	Scroll      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return NewStylesWithRenderer(lipgloss.DefaultRenderer())
}

// NewStylesWithRenderer creates the default styles bound to r, whose color
// profile decides which escape sequences are emitted
func NewStylesWithRenderer(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Selected:    r.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		Dim:         r.NewStyle().Faint(true),
		Prompt:      r.NewStyle().Foreground(lipgloss.Color("39")),
		Placeholder: r.NewStyle().Foreground(lipgloss.Color("241")),
		Item:        r.NewStyle().Foreground(lipgloss.Color("33")), // link blue
		Highlight:   r.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: r.NewStyle().Background(lipgloss.Color("238")),
		Cursor:      r.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		NoResults:   r.NewStyle().Foreground(lipgloss.Color("203")), // red
		Scroll:      r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:        r.NewStyle().Faint(true),
		Main:        r.NewStyle().Padding(1, 2),
	}
}
