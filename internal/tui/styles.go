package tui

import "github.com/charmbracelet/lipgloss"

var (
	// bandColors are the gauge colors, lowest band first.
	bandColors = [4]lipgloss.Color{
		"#89B4FA", // blue
		"#94E2D5", // teal
		"#F9E2AF", // yellow
		"#F38BA8", // red
	}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))

	tabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585B70"))

	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))

	netStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))

	sparkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585B70"))

	gaugeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#585B70")).
			Padding(0, 1)
)
