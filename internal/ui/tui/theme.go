package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Blurred lipgloss.Style
	Value   lipgloss.Style
	Card    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true),
		Label: lipgloss.NewStyle().Width(10),
		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true),
		Blurred: lipgloss.NewStyle().Faint(true),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Align(lipgloss.Center),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
