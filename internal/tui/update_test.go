package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panetop/internal/config"
	"panetop/internal/errors"
	"panetop/internal/metrics"
)

// fakeProvider returns canned snapshots and counts calls so tests can
// assert how often sampling actually happens.
type fakeProvider struct {
	snaps    []*metrics.Snapshot
	err      error
	hostInfo metrics.HostInfo
	hostErr  error
	calls    int
}

func (f *fakeProvider) Refresh() (*metrics.Snapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.snaps) == 0 {
		return &metrics.Snapshot{Timestamp: time.Now()}, nil
	}
	snap := f.snaps[0]
	if len(f.snaps) > 1 {
		f.snaps = f.snaps[1:]
	}
	return snap, nil
}

func (f *fakeProvider) Host() (metrics.HostInfo, error) {
	return f.hostInfo, f.hostErr
}

func testModel(p metrics.Provider) Model {
	cfg := config.Default()
	cfg.Interval = 2 * time.Second
	return NewModel(p, cfg)
}

func updated(t *testing.T, m tea.Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, k := range []string{"q", "Q", "esc", "ctrl+c"} {
		m := testModel(&fakeProvider{})

		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}

		m, cmd := updated(t, m, msg)
		assert.True(t, m.quitting, "key %q", k)
		require.NotNil(t, cmd, "key %q", k)
		assert.Equal(t, tea.Quit(), cmd(), "key %q", k)
	}
}

func TestUpdate_TabSwitchesView(t *testing.T) {
	m := testModel(&fakeProvider{})
	assert.Equal(t, tabPerf, m.tab)

	m, _ = updated(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabClock, m.tab)

	m, _ = updated(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabPerf, m.tab)
}

func TestUpdate_ArrowsCycleClockColorOnlyOnClockTab(t *testing.T) {
	m := testModel(&fakeProvider{})
	start := m.clockColor

	m, _ = updated(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, start, m.clockColor, "arrows are inert on the perf tab")

	m, _ = updated(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = updated(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, (start+1)%len(clockColors), m.clockColor)

	m, _ = updated(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = updated(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, (start+len(clockColors)-1)%len(clockColors), m.clockColor)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := testModel(&fakeProvider{})
	m, _ = updated(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestUpdate_FrameSamplesOnlyWhenDue(t *testing.T) {
	m := testModel(&fakeProvider{})
	t0 := time.Now()

	// The initial sample (marked in flight by NewModel) lands.
	m, _ = updated(t, m, sampleMsg{snap: &metrics.Snapshot{Timestamp: t0}})
	assert.False(t, m.sampling)

	// A frame inside the interval keeps the timer going but does not
	// sample.
	m, cmd := updated(t, m, frameMsg(t0.Add(500*time.Millisecond)))
	require.NotNil(t, cmd)
	assert.False(t, m.sampling)

	// A frame past the interval launches a sample.
	m, cmd = updated(t, m, frameMsg(t0.Add(2*time.Second)))
	require.NotNil(t, cmd)
	assert.True(t, m.sampling)
}

func TestUpdate_FrameSkipsWhenSampleInFlight(t *testing.T) {
	m := testModel(&fakeProvider{})
	// NewModel starts with the initial sample in flight; even a long
	// overdue frame must not launch another.
	m, _ = updated(t, m, frameMsg(time.Now().Add(time.Hour)))
	assert.True(t, m.sampling)
}

func TestUpdate_SampleAppliesSnapshot(t *testing.T) {
	m := testModel(&fakeProvider{})
	m, _ = updated(t, m, sampleMsg{snap: &metrics.Snapshot{
		CPUPercent:  33,
		MemoryUsed:  2 << 30,
		MemoryTotal: 8 << 30,
		Timestamp:   time.Now(),
	}})

	assert.False(t, m.sampling)
	assert.InDelta(t, 33.0, m.state.CPUPercent, 1e-9)
	assert.InDelta(t, 25.0, m.state.MemoryPercent, 1e-9)
	assert.Equal(t, 1, m.state.CPUHistory.Len())
}

func TestUpdate_SampleErrorEndsSession(t *testing.T) {
	m := testModel(&fakeProvider{})
	provErr := errors.New(errors.ErrProvider, "cpu sampling failed", "")

	m, cmd := updated(t, m, sampleMsg{err: provErr})
	assert.True(t, m.quitting)
	assert.Equal(t, provErr, m.Err())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_HostInfo(t *testing.T) {
	m := testModel(&fakeProvider{})
	info := metrics.HostInfo{OS: "linux", Kernel: "6.8.0", Uptime: 72 * time.Hour}

	m, _ = updated(t, m, hostInfoMsg{info: info})
	assert.Equal(t, info, m.host)
}

func TestUpdate_HostInfoErrorLeavesBlank(t *testing.T) {
	m := testModel(&fakeProvider{})
	m, _ = updated(t, m, hostInfoMsg{err: assert.AnError})
	assert.Empty(t, m.host.OS)
}

func TestSampleCmd_CallsProvider(t *testing.T) {
	p := &fakeProvider{snaps: []*metrics.Snapshot{{CPUPercent: 50, Timestamp: time.Now()}}}

	msg := sampleCmd(p)()
	sample, ok := msg.(sampleMsg)
	require.True(t, ok)
	assert.NoError(t, sample.err)
	assert.InDelta(t, 50.0, sample.snap.CPUPercent, 1e-9)
	assert.Equal(t, 1, p.calls)
}

func TestHostInfoCmd(t *testing.T) {
	p := &fakeProvider{hostInfo: metrics.HostInfo{OS: "linux"}}

	msg := hostInfoCmd(p)()
	host, ok := msg.(hostInfoMsg)
	require.True(t, ok)
	assert.Equal(t, "linux", host.info.OS)
}

func TestInit_StartsSampleAndFrame(t *testing.T) {
	m := testModel(&fakeProvider{})
	assert.NotNil(t, m.Init())
	assert.True(t, m.sampling, "the initial sample counts as in flight")
}
