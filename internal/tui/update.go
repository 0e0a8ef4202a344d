package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.SwitchTab):
			m.tab = m.tab.next()

		case key.Matches(msg, m.keys.PrevColor):
			if m.tab == tabClock {
				m.clockColor = (m.clockColor + len(clockColors) - 1) % len(clockColors)
			}

		case key.Matches(msg, m.keys.NextColor):
			if m.tab == tabClock {
				m.clockColor = (m.clockColor + 1) % len(clockColors)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		// Every frame: keep the timer running, and launch a sample only
		// when the refresh interval has elapsed and none is in flight.
		cmds := []tea.Cmd{frameCmd()}
		if !m.sampling && m.state.Due(time.Time(msg)) {
			m.sampling = true
			cmds = append(cmds, sampleCmd(m.provider))
		}
		return m, tea.Batch(cmds...)

	case sampleMsg:
		m.sampling = false
		if msg.err != nil {
			// A failed provider ends the session; the error is surfaced
			// by the caller after the terminal has been restored.
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.state.Apply(msg.snap)

	case hostInfoMsg:
		// Host info is decoration on the info line; a failure just
		// leaves it blank.
		if msg.err == nil {
			m.host = msg.info
		}
	}

	return m, nil
}
