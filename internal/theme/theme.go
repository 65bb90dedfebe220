package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	ToggleButton       *lipgloss.Style
	ToggleButtonActive *lipgloss.Style
	PanelBorder        *lipgloss.Style
	Item               *lipgloss.Style
	ItemOpen           *lipgloss.Style
	ItemHover          *lipgloss.Style
	Chevron            *lipgloss.Style
	Status             *lipgloss.Style
	Footer             *lipgloss.Style
	Error              *lipgloss.Style
}

var defaultStyles = Styles{
	ToggleButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
	),
	ToggleButtonActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	PanelBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemOpen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	ItemHover: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")),
	),
	Chevron: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns styles that render text unchanged, for tests and dumb
// terminals.
func Plain() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		ToggleButton:       ptr(plain),
		ToggleButtonActive: ptr(plain),
		PanelBorder:        ptr(plain),
		Item:               ptr(plain),
		ItemOpen:           ptr(plain),
		ItemHover:          ptr(plain),
		Chevron:            ptr(plain),
		Status:             ptr(plain),
		Footer:             ptr(plain),
		Error:              ptr(plain),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
