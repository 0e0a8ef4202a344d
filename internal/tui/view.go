package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// sparklineHeight is the height of the CPU history strip at the bottom.
const sparklineHeight = 3

// View renders the dashboard. Layout is recomputed from the current
// terminal dimensions on every frame; the hosting pane may be resized or
// floated at any time.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	topBar := lipgloss.PlaceHorizontal(m.width, lipgloss.Right,
		tabStyle.Render(m.tab.name()+" TAB"))

	bodyHeight := m.height - 1 - sparklineHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch m.tab {
	case tabClock:
		body = renderClock(time.Now(), clockColors[m.clockColor], m.width, bodyHeight)
	default:
		body = m.renderPerf(m.width, bodyHeight)
	}

	spark := renderSparkline(m.state.CPUHistory.Values(), m.width, sparklineHeight)

	return lipgloss.JoinVertical(lipgloss.Left, topBar, body, spark)
}

// renderPerf renders the gauge column centered in the given area.
func (m Model) renderPerf(width, height int) string {
	s := m.state

	// Center column takes 60% of the width, as long as it fits.
	col := width * 60 / 100
	if col < 30 {
		col = 30
	}
	if col > width {
		col = width
	}

	cpuTitle := fmt.Sprintf("CPU (%.2f %.2f %.2f)", s.Load1, s.Load5, s.Load15)
	cpu := renderGauge(cpuTitle,
		fmt.Sprintf("%.1f%%", s.CPUPercent), s.CPUPercent, col)

	memTitle := fmt.Sprintf("Memory (%.1f%%)", s.MemoryPercent)
	mem := renderGauge(memTitle, formatGB(s.MemoryUsed), s.MemoryPercent, col)

	swapTitle := fmt.Sprintf("Swap (%.1f%%)", s.SwapPercent)
	swap := renderGauge(swapTitle, formatGB(s.SwapUsed), s.SwapPercent, col)

	net := renderNetworkPanel(s.Net, m.aggregate, col)

	info := infoStyle.Render(fmt.Sprintf("OS: %s | Kernel: %s | Uptime: %d days",
		m.host.OS, m.host.Kernel, int(m.host.Uptime.Hours())/24))

	stack := lipgloss.JoinVertical(lipgloss.Center, cpu, mem, swap, net, info)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, stack)
}
