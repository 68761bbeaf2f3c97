package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/teacherhub/internal/theme"
)

// Theme bundles the styles every renderer pulls from.
type Theme struct {
	Mode theme.Mode

	Title, Muted, Accent, Success, Error, Badge, Selected, Tab, ActiveTab lipgloss.Style
	Border                                                                lipgloss.Color
}

var current = build(theme.Light)

// SetTheme switches the palette used by Current.
func SetTheme(m theme.Mode) { current = build(m) }

// Current exposes what renderers need.
func Current() Theme { return current }

func build(m theme.Mode) Theme {
	switch m {
	case theme.Dark:
		return Theme{
			Mode:      theme.Dark,
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")),
			Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Badge:     lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("117")).Padding(0, 1),
			Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117")),
			Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
			ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("236")).Background(lipgloss.Color("117")).Padding(0, 1),
			Border:    lipgloss.Color("240"),
		}
	default: // light
		return Theme{
			Mode:      theme.Light,
			Title:     lipgloss.NewStyle().Bold(true),
			Muted:     lipgloss.NewStyle().Faint(true),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Badge:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("12")).Padding(0, 1),
			Selected:  lipgloss.NewStyle().Bold(true).Reverse(true),
			Tab:       lipgloss.NewStyle().Faint(true).Padding(0, 1),
			ActiveTab: lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
			Border:    lipgloss.Color("8"),
		}
	}
}
