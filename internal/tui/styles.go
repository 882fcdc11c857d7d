package tui

import "github.com/charmbracelet/lipgloss"

// styles contains all lipgloss styles used by the TUI.
var styles = struct {
	// Layout styles
	Pane  lipgloss.Style
	Title lipgloss.Style

	// Scramble
	Scramble lipgloss.Style

	// Timer phase colors
	PhaseIdle    lipgloss.Style
	PhaseRunning lipgloss.Style
	PhasePaused  lipgloss.Style
	PhaseLabel   lipgloss.Style

	// Times and stats
	Time      lipgloss.Style
	DNF       lipgloss.Style
	Stat      lipgloss.Style
	Sparkline lipgloss.Style

	// Footer styles
	Footer lipgloss.Style
	Error  lipgloss.Style
}{
	Pane: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Scramble: lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")),

	PhaseIdle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("245")),

	PhaseRunning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82")),

	PhasePaused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214")),

	PhaseLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	Time: lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")),

	DNF: lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")),

	Stat: lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")),

	Sparkline: lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")),

	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")),
}
