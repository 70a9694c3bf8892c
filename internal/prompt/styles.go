package prompt

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	question lipgloss.Style
	cursor   lipgloss.Style
	muted    lipgloss.Style
	info     lipgloss.Style
	success  lipgloss.Style
	warn     lipgloss.Style
	err      lipgloss.Style
	note     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0B0B0B")).Background(lipgloss.Color("#7AA2F7")).Padding(0, 1),
		question: lipgloss.NewStyle().Bold(true),
		cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("#7AA2F7")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		info:     lipgloss.NewStyle().Foreground(lipgloss.Color("#7AA2F7")),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#9ECE6A")),
		warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("#E0AF68")),
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color("#F7768E")),
		note:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6B7280")).Padding(0, 1),
	}
}
