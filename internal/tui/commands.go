package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"panetop/internal/metrics"
)

// frameCmd creates a command that sends the next render frame tick.
func frameCmd() tea.Cmd {
	return tea.Tick(framePoll, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// sampleCmd creates a command that collects one metric snapshot.
func sampleCmd(provider metrics.Provider) tea.Cmd {
	return func() tea.Msg {
		snap, err := provider.Refresh()
		return sampleMsg{snap: snap, err: err}
	}
}

// hostInfoCmd creates a command that fetches static host information.
func hostInfoCmd(provider metrics.Provider) tea.Cmd {
	return func() tea.Msg {
		info, err := provider.Host()
		return hostInfoMsg{info: info, err: err}
	}
}
