package history

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	portal    lipgloss.Style
	detail    lipgloss.Style
	key       lipgloss.Style
	credits   lipgloss.Style
	gain      lipgloss.Style
	loss      lipgloss.Style
	unchanged lipgloss.Style
	warning   lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		portal:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		key:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		credits:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		gain:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		loss:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		unchanged: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
	}
}
