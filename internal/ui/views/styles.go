package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the picker UI
type Styles struct {
	Title        lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	SectionTitle lipgloss.Style
	Cell         lipgloss.Style
	CellFocused  lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Preset       lipgloss.Style
	Help         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1),
		SectionTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			MarginTop(1),
		Cell: lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center),
		CellFocused: lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center).
			Reverse(true),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		Preset: lipgloss.NewStyle().Bold(true),
		Help:   lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
