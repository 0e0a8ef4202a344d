package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"panetop/internal/config"
	"panetop/internal/metrics"
	"panetop/internal/stats"
)

// framePoll bounds input latency and the render rate. Sampling is gated
// separately by the refresh interval, so a fast frame rate never means
// more provider calls.
const framePoll = 100 * time.Millisecond

// tab identifies the active view.
type tab int

const (
	tabPerf tab = iota
	tabClock
)

func (t tab) name() string {
	switch t {
	case tabClock:
		return "clock(2)"
	default:
		return "perf(1)"
	}
}

func (t tab) next() tab {
	switch t {
	case tabPerf:
		return tabClock
	default:
		return tabPerf
	}
}

// Model represents the monitor TUI state
type Model struct {
	provider  metrics.Provider
	state     *stats.State
	host      metrics.HostInfo
	aggregate bool
	keys      keyMap

	width  int
	height int

	tab        tab
	clockColor int

	// sampling guards against launching a second provider call while one
	// is still in flight.
	sampling bool
	quitting bool
	err      error
}

// Message types for the Bubble Tea update loop
type frameMsg time.Time

type sampleMsg struct {
	snap *metrics.Snapshot
	err  error
}

type hostInfoMsg struct {
	info metrics.HostInfo
	err  error
}

// NewModel creates the monitor model from a provider and configuration.
func NewModel(provider metrics.Provider, cfg *config.Config) Model {
	return Model{
		provider:   provider,
		state:      stats.NewState(cfg.Interval, cfg.History),
		aggregate:  cfg.Network.Aggregate,
		keys:       defaultKeyMap(),
		clockColor: len(clockColors) - 1,
		// The initial sample is launched by Init.
		sampling: true,
	}
}

// Init starts the frame timer, the first sample, and the host info lookup.
func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), sampleCmd(m.provider), hostInfoCmd(m.provider))
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}
