package stats

import (
	"time"

	"panetop/internal/metrics"
)

// Due reports whether enough wall-clock time has elapsed since the last
// sample for a new one. Pure decision function: the caller updates last
// only when a refresh is actually performed, so the sampling rate stays
// decoupled from the render/poll rate.
func Due(now, last time.Time, interval time.Duration) bool {
	return now.Sub(last) >= interval
}

// State aggregates the current metric values and their bounded history.
// A single instance is owned by the running session and mutated only by
// Apply between render frames; it is never shared across goroutines.
type State struct {
	CPUPercent    float64
	MemoryPercent float64
	MemoryUsed    uint64
	MemoryTotal   uint64
	SwapPercent   float64
	SwapUsed      uint64
	SwapTotal     uint64
	Load1         float64
	Load5         float64
	Load15        float64
	Net           Rates

	CPUHistory *Ring
	RxHistory  *Ring
	TxHistory  *Ring

	Interval   time.Duration
	LastUpdate time.Time

	tracker RateTracker
}

// NewState creates the monitor state with the given refresh interval and
// per-metric history capacity.
func NewState(interval time.Duration, history int) *State {
	return &State{
		Interval:   interval,
		CPUHistory: NewRing(history),
		RxHistory:  NewRing(history),
		TxHistory:  NewRing(history),
	}
}

// Due reports whether a new sample should be taken at time now.
func (s *State) Due(now time.Time) bool {
	return Due(now, s.LastUpdate, s.Interval)
}

// Apply ingests a snapshot: recomputes the derived percentages, updates
// throughput rates, and appends to the history series. LastUpdate advances
// to the snapshot's timestamp, so the next sample is scheduled relative to
// when this one was actually taken.
func (s *State) Apply(snap *metrics.Snapshot) {
	if snap == nil {
		return
	}

	s.CPUPercent = snap.CPUPercent
	s.Load1 = snap.Load1
	s.Load5 = snap.Load5
	s.Load15 = snap.Load15

	// Percentages are always derived from their inputs, never stored
	// independently of them.
	s.MemoryUsed = snap.MemoryUsed
	s.MemoryTotal = snap.MemoryTotal
	s.MemoryPercent = percent(snap.MemoryUsed, snap.MemoryTotal)
	s.SwapUsed = snap.SwapUsed
	s.SwapTotal = snap.SwapTotal
	s.SwapPercent = percent(snap.SwapUsed, snap.SwapTotal)

	s.Net = s.tracker.Update(snap)

	s.CPUHistory.Push(s.CPUPercent)
	s.RxHistory.Push(s.Net.RxPerSec)
	s.TxHistory.Push(s.Net.TxPerSec)

	s.LastUpdate = snap.Timestamp
}

// percent computes used/total*100, returning 0 for a zero total (e.g. no
// swap configured).
func percent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}
