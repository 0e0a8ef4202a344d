package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"panetop/internal/metrics"
)

func snapshotAt(ts time.Time, rx, tx uint64) *metrics.Snapshot {
	return &metrics.Snapshot{
		Interfaces: []metrics.InterfaceCounters{
			{Name: "eth0", RxBytes: rx, TxBytes: tx},
		},
		Timestamp: ts,
	}
}

func TestRateTracker_FirstSampleReportsZero(t *testing.T) {
	var tr RateTracker
	rates := tr.Update(snapshotAt(time.Now(), 1000, 500))

	assert.Zero(t, rates.RxPerSec)
	assert.Zero(t, rates.TxPerSec)
	assert.Len(t, rates.PerInterface, 1, "interfaces are listed before the second sample")
	assert.Zero(t, rates.PerInterface[0].RxPerSec)
}

func TestRateTracker_ComputesRateFromDelta(t *testing.T) {
	t0 := time.Now()
	var tr RateTracker
	tr.Update(snapshotAt(t0, 1000, 2000))
	rates := tr.Update(snapshotAt(t0.Add(2*time.Second), 3000, 2500))

	assert.InDelta(t, 1000.0, rates.RxPerSec, 1e-9)
	assert.InDelta(t, 250.0, rates.TxPerSec, 1e-9)
}

func TestRateTracker_IntervalOverrun(t *testing.T) {
	// Sample B lands 2.1s after A even though the interval was 2s; the
	// rate uses the actual elapsed time.
	t0 := time.Now()
	var tr RateTracker
	tr.Update(snapshotAt(t0, 1000, 0))
	rates := tr.Update(snapshotAt(t0.Add(2100*time.Millisecond), 3000, 0))

	assert.InDelta(t, 2000.0/2.1, rates.RxPerSec, 0.01)
}

func TestRateTracker_CounterResetClampsToZero(t *testing.T) {
	t0 := time.Now()
	var tr RateTracker
	tr.Update(snapshotAt(t0, 5000, 5000))
	rates := tr.Update(snapshotAt(t0.Add(time.Second), 100, 9000))

	assert.Zero(t, rates.RxPerSec, "decreased counter must not yield a negative rate")
	assert.InDelta(t, 4000.0, rates.TxPerSec, 1e-9)
}

func TestRateTracker_ClockAnomalyRetainsPreviousRate(t *testing.T) {
	t0 := time.Now()
	var tr RateTracker
	tr.Update(snapshotAt(t0, 1000, 0))
	tr.Update(snapshotAt(t0.Add(time.Second), 2000, 0))

	// Zero elapsed: no division, previous rate kept.
	rates := tr.Update(snapshotAt(t0.Add(time.Second), 99999, 0))
	assert.InDelta(t, 1000.0, rates.RxPerSec, 1e-9)

	// Negative elapsed behaves the same.
	rates = tr.Update(snapshotAt(t0, 99999, 0))
	assert.InDelta(t, 1000.0, rates.RxPerSec, 1e-9)

	// The anomalous snapshot was not adopted: the next good sample
	// computes its delta from the last accepted one.
	rates = tr.Update(snapshotAt(t0.Add(2*time.Second), 3000, 0))
	assert.InDelta(t, 1000.0, rates.RxPerSec, 1e-9)
}

func TestRateTracker_NewInterfaceStartsAtZero(t *testing.T) {
	t0 := time.Now()
	var tr RateTracker
	tr.Update(&metrics.Snapshot{
		Interfaces: []metrics.InterfaceCounters{{Name: "eth0", RxBytes: 1000}},
		Timestamp:  t0,
	})
	rates := tr.Update(&metrics.Snapshot{
		Interfaces: []metrics.InterfaceCounters{
			{Name: "eth0", RxBytes: 2000},
			{Name: "wlan0", RxBytes: 500},
		},
		Timestamp: t0.Add(time.Second),
	})

	assert.Len(t, rates.PerInterface, 2)
	for _, r := range rates.PerInterface {
		if r.Name == "wlan0" {
			assert.Zero(t, r.RxPerSec, "an interface without a previous reading has no delta yet")
		}
	}
	assert.InDelta(t, 1000.0, rates.RxPerSec, 1e-9, "aggregate counts only interfaces with deltas")
}

func TestRateTracker_AggregatesAcrossInterfaces(t *testing.T) {
	t0 := time.Now()
	var tr RateTracker
	tr.Update(&metrics.Snapshot{
		Interfaces: []metrics.InterfaceCounters{
			{Name: "eth0", RxBytes: 0, TxBytes: 0},
			{Name: "wlan0", RxBytes: 0, TxBytes: 0},
		},
		Timestamp: t0,
	})
	rates := tr.Update(&metrics.Snapshot{
		Interfaces: []metrics.InterfaceCounters{
			{Name: "eth0", RxBytes: 1000, TxBytes: 100},
			{Name: "wlan0", RxBytes: 500, TxBytes: 200},
		},
		Timestamp: t0.Add(time.Second),
	})

	assert.InDelta(t, 1500.0, rates.RxPerSec, 1e-9)
	assert.InDelta(t, 300.0, rates.TxPerSec, 1e-9)
}

func TestRateTracker_NilSnapshotIgnored(t *testing.T) {
	var tr RateTracker
	rates := tr.Update(nil)
	assert.Zero(t, rates.RxPerSec)
}
